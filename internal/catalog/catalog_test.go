package catalog

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// minimalFS returns a small but complete catalog; tests override single files.
func minimalFS() fstest.MapFS {
	return fstest.MapFS{
		"site.yaml": {Data: []byte(`
meta:
  title: Test
  defaultDurationDays: 7
tagLibrary:
  - {id: nature, label: Natur}
gallery: []
events: []
templates: {}
`)},
		"transport_modes.yaml": {Data: []byte(`
bus: {label: Fernbus, color: "#ffd35b", dashArray: "8 6", icon: B, description: Bus, averageSpeedKmh: 60, carbonPerKm: 0.05}
flight: {label: Flug, color: "#c792ea", dashArray: null, icon: F, description: Flug, averageSpeedKmh: 740, carbonPerKm: 0.285}
`)},
		"stops.yaml": {Data: []byte(`
scl-airport:
  id: scl-airport
  name: Santiago International Airport (SCL)
  type: airport
  coordinates: {lat: -33.3929, lng: -70.7858}
  contact: {phone: "+56 2 2690 1707"}
ipc-airport:
  id: ipc-airport
  name: Mataveri
  type: airport
  coordinates: {lat: -27.1648, lng: -109.4216}
`)},
		"stop_enrichments.yaml": {Data: []byte(`
scl-airport:
  rating: 4.3
  contact: {email: info@nuevopudahuel.cl}
`)},
		"flight_enrichments.yaml":   {Data: []byte(`flight-scl-ipc: {aircraft: Boeing 787-9}`)},
		"segment_defaults.yaml":     {Data: []byte(`flight: {operator: Inlandsflug, seatInfo: Fensterplatz}`)},
		"segment_specifics.yaml":    {Data: []byte(`[{from: scl-airport, to: ipc-airport, mode: flight, fields: {operator: LATAM}}]`)},
		"lodging_enrichments.yaml":  {Data: []byte(`{}`)},
		"food_enrichments.yaml":     {Data: []byte(`{}`)},
		"activity_enrichments.yaml": {Data: []byte(`{}`)},
		"routes/var1.yaml": {Data: []byte(`
id: var1
name: Test
meta: {durationDays: 2, costEstimate: 100}
stops: [scl-airport, ipc-airport]
segments:
  - {from: scl-airport, to: ipc-airport, mode: flight, distanceKm: 3750}
flights:
  - {id: flight-scl-ipc, fromStopId: scl-airport, toStopId: ipc-airport}
`)},
	}
}

func TestDefault_LoadsEmbeddedCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	routes := c.Routes()
	require.Len(t, routes, 7)
	assert.Equal(t, "var1", routes[0]["id"])
	assert.Equal(t, "var7", routes[6]["id"])

	for _, key := range []string{"drive", "bus", "flight", "walk", "ferry"} {
		mode, ok := c.Mode(key)
		require.True(t, ok, key)
		assert.GreaterOrEqual(t, mode.CarbonPerKm, 0.0)
	}
	assert.Equal(t, 0.285, c.CarbonFactor(FlightMode))

	stop, ok := c.Stop("scl-airport")
	require.True(t, ok)
	assert.Equal(t, "America/Santiago", stop["timezone"], "stop enrichment merged at load")

	key := SegmentKey{From: "scl-airport", To: "terminal-alameda", Mode: "bus"}.String()
	specific, ok := c.SegmentSpecifics.Lookup(key)
	require.True(t, ok)
	assert.Equal(t, "Centropuerto Express", specific["operator"])

	seat, ok := c.FlightSeatInfo()
	assert.True(t, ok)
	assert.NotEmpty(t, seat)
}

func TestLoad_MergesStopEnrichment(t *testing.T) {
	c, err := Load(minimalFS())
	require.NoError(t, err)

	stop, ok := c.Stop("scl-airport")
	require.True(t, ok)
	assert.Equal(t, 4.3, stop["rating"])
	assert.Equal(t, map[string]any{
		"phone": "+56 2 2690 1707",
		"email": "info@nuevopudahuel.cl",
	}, stop["contact"])
}

func TestCatalog_StopReturnsCopy(t *testing.T) {
	c, err := Load(minimalFS())
	require.NoError(t, err)

	stop, _ := c.Stop("scl-airport")
	stop["name"] = "changed"
	stop["coordinates"].(map[string]any)["lat"] = 0.0

	again, _ := c.Stop("scl-airport")
	assert.Equal(t, "Santiago International Airport (SCL)", again["name"])

	coords, ok := c.StopCoordinates("scl-airport")
	require.True(t, ok)
	assert.Equal(t, -33.3929, coords.Lat)
}

func TestCatalog_RoutesReturnCopies(t *testing.T) {
	c, err := Load(minimalFS())
	require.NoError(t, err)

	routes := c.Routes()
	routes[0]["id"] = "changed"
	assert.Equal(t, "var1", c.Routes()[0]["id"])
}

func TestCatalog_TransportModeDashArray(t *testing.T) {
	c, err := Load(minimalFS())
	require.NoError(t, err)

	flight, _ := c.Mode("flight")
	assert.Nil(t, flight.DashArray)
	bus, _ := c.Mode("bus")
	require.NotNil(t, bus.DashArray)
	assert.Equal(t, "8 6", *bus.DashArray)
}

func TestLoad_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{
			name:    "unknown route stop",
			file:    "routes/var1.yaml",
			content: "id: var1\nstops: [nowhere]\n",
			wantErr: `route "var1": unknown stop nowhere`,
		},
		{
			name:    "unknown segment endpoint",
			file:    "routes/var1.yaml",
			content: "id: var1\nsegments: [{from: scl-airport, to: nowhere, mode: bus}]\n",
			wantErr: `route "var1" segment 1: unknown to stop "nowhere"`,
		},
		{
			name:    "unknown segment mode",
			file:    "routes/var1.yaml",
			content: "id: var1\nsegments: [{from: scl-airport, to: ipc-airport, mode: teleport}]\n",
			wantErr: `unknown mode "teleport"`,
		},
		{
			name:    "unknown flight endpoint",
			file:    "routes/var1.yaml",
			content: "id: var1\nflights: [{id: f, fromStopId: nowhere, toStopId: ipc-airport}]\n",
			wantErr: `route "var1" flight 1: unknown fromStopId "nowhere"`,
		},
		{
			name:    "negative carbon factor",
			file:    "transport_modes.yaml",
			content: "bus: {label: Bus, carbonPerKm: -1}\nflight: {label: Flug, carbonPerKm: 0.285}\n",
			wantErr: `transport mode "bus": negative carbonPerKm -1`,
		},
		{
			name:    "enrichment for unknown stop",
			file:    "stop_enrichments.yaml",
			content: "scl-airport: {rating: 4.3}\nunknown-stop: {rating: 1}\n",
			wantErr: `stop enrichment "unknown-stop": unknown stop`,
		},
		{
			name:    "stop id mismatch",
			file:    "stops.yaml",
			content: "scl-airport: {id: scl}\nipc-airport: {id: ipc-airport}\n",
			wantErr: `stop "scl-airport": id field is "scl"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := minimalFS()
			fsys[tt.file] = &fstest.MapFile{Data: []byte(tt.content)}

			_, err := Load(fsys)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad_DuplicateRouteID(t *testing.T) {
	fsys := minimalFS()
	fsys["routes/var2.yaml"] = fsys["routes/var1.yaml"]

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `route "var1": duplicate id`)
}

func TestLoad_NoRoutesDirectory(t *testing.T) {
	fsys := minimalFS()
	delete(fsys, "routes/var1.yaml")

	c, err := Load(fsys)
	require.NoError(t, err)
	assert.Empty(t, c.Routes())
	_, ok := c.Stop("scl-airport")
	assert.True(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	fsys := minimalFS()
	delete(fsys, "stops.yaml")

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading stops.yaml")
}

func TestLoad_MalformedYAML(t *testing.T) {
	fsys := minimalFS()
	fsys["stops.yaml"] = &fstest.MapFile{Data: []byte("scl-airport: [unclosed")}

	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing stops.yaml")
}
