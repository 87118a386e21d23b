package builder

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/travelkit/travelkit/internal/catalog"
	"github.com/travelkit/travelkit/internal/record"
)

const testModes = `
drive:  {label: Mietwagen, carbonPerKm: 0.192}
bus:    {label: Fernbus, carbonPerKm: 0.05}
flight: {label: Flug, carbonPerKm: 0.285}
walk:   {label: Zu Fuß, carbonPerKm: 0.0}
`

const testStops = `
scl-airport:
  id: scl-airport
  name: Santiago International Airport (SCL)
  type: airport
  coordinates: {lat: -33.45, lng: -70.67}
  tips: [Online-Check-in spart Wartezeit.]
ipc-airport:
  id: ipc-airport
  name: Mataveri International Airport (IPC)
  type: airport
  coordinates: {lat: -27.1648, lng: -109.4216}
terminal-alameda:
  id: terminal-alameda
  name: Terminal Alameda
  type: bus
  coordinates: {lat: -33.4576, lng: -70.6621}
valparaiso-center:
  id: valparaiso-center
  name: Valparaíso – Cerro Alegre
  type: poi
  coordinates: {lat: -33.0458, lng: -71.6197}
`

const testSegmentDefaults = `
bus:
  operator: Fernbus
  frequency: stündlich
  seatInfo: Semi-Cama
flight:
  operator: Inlandsflug
  frequency: täglich
  seatInfo: Fensterplätze für Landschaftsblick empfohlen
walk:
  operator: Zu Fuß
  bookingUrl: null
`

const testSegmentSpecifics = `
- from: terminal-alameda
  to: valparaiso-center
  mode: bus
  fields:
    operator: TurBus
    notes: Einchecken auf Bahnsteig 22
`

const testFlights = `
flight-scl-ipc:
  aircraft: Boeing 787-9
  baggage: {carryOn: 8 kg}
flight-with-seat:
  seatInfo: Gang
`

const testLodging = `
Hotel Casa Higueras:
  amenities: [Infinity-Pool, Spa]
  contact: {email: reservas@casahigueras.cl}
`

const testFood = `
Mercado Central:
  mustTry: [Caldillo de Congrio]
`

const testActivities = `
Rapa Nui Sunrise:
  difficulty: leicht
`

// testCatalog builds a small catalog with the given route definitions, each
// passed as YAML.
func testCatalog(t *testing.T, routes ...string) *catalog.Catalog {
	t.Helper()
	fsys := fstest.MapFS{
		"site.yaml":                 {Data: []byte("meta: {title: Test}\ntagLibrary: []\ngallery: []\nevents: []\ntemplates: {}\n")},
		"transport_modes.yaml":      {Data: []byte(testModes)},
		"stops.yaml":                {Data: []byte(testStops)},
		"stop_enrichments.yaml":     {Data: []byte("scl-airport: {timezone: America/Santiago}\n")},
		"flight_enrichments.yaml":   {Data: []byte(testFlights)},
		"segment_defaults.yaml":     {Data: []byte(testSegmentDefaults)},
		"segment_specifics.yaml":    {Data: []byte(testSegmentSpecifics)},
		"lodging_enrichments.yaml":  {Data: []byte(testLodging)},
		"food_enrichments.yaml":     {Data: []byte(testFood)},
		"activity_enrichments.yaml": {Data: []byte(testActivities)},
	}
	for i, r := range routes {
		fsys["routes/r"+string(rune('a'+i))+".yaml"] = &fstest.MapFile{Data: []byte(r)}
	}
	cat, err := catalog.Load(fsys)
	require.NoError(t, err)
	return cat
}

// route decodes a YAML route definition.
func route(t *testing.T, src string) record.Record {
	t.Helper()
	var r record.Record
	require.NoError(t, yaml.Unmarshal([]byte(src), &r))
	return r
}
