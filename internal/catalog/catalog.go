package catalog

import (
	"fmt"
	"sort"

	"github.com/travelkit/travelkit/internal/geo"
	"github.com/travelkit/travelkit/internal/record"
)

// FlightMode is the transport mode key whose carbon factor and defaults apply
// to flights.
const FlightMode = "flight"

// TransportMode describes one way of getting from stop to stop.
type TransportMode struct {
	Label           string  `yaml:"label" json:"label"`
	Color           string  `yaml:"color" json:"color"`
	DashArray       *string `yaml:"dashArray" json:"dashArray"`
	Icon            string  `yaml:"icon" json:"icon"`
	Description     string  `yaml:"description" json:"description"`
	AverageSpeedKmh float64 `yaml:"averageSpeedKmh" json:"averageSpeedKmh"`
	CarbonPerKm     float64 `yaml:"carbonPerKm" json:"carbonPerKm"`
}

// SegmentKey identifies a directed leg with a given mode.
type SegmentKey struct {
	From string
	To   string
	Mode string
}

// String returns the table key used for segment-specific overrides.
func (k SegmentKey) String() string {
	return k.From + "|" + k.To + "|" + k.Mode
}

// Site holds the top-level blocks that are passed through to the output
// document untouched.
type Site struct {
	Meta       record.Record `yaml:"meta"`
	TagLibrary []any         `yaml:"tagLibrary"`
	Gallery    []any         `yaml:"gallery"`
	Events     []any         `yaml:"events"`
	Templates  record.Record `yaml:"templates"`
}

// Catalog is the immutable set of reference tables a build runs against.
type Catalog struct {
	site   Site
	modes  map[string]TransportMode
	stops  map[string]record.Record
	routes []record.Record

	// stop enrichment ids without a stop
	orphanEnrichments []string

	SegmentDefaults  *record.Table // keyed by mode
	SegmentSpecifics *record.Table // keyed by SegmentKey.String()
	Flights          *record.Table // keyed by flight id
	Lodging          *record.Table // keyed by lodging name
	Food             *record.Table // keyed by food item name
	Activities       *record.Table // keyed by activity title
}

// Site returns a copy of the pass-through site blocks.
func (c *Catalog) Site() Site {
	return Site{
		Meta:       record.Clone(c.site.Meta),
		TagLibrary: cloneList(c.site.TagLibrary),
		Gallery:    cloneList(c.site.Gallery),
		Events:     cloneList(c.site.Events),
		Templates:  record.Clone(c.site.Templates),
	}
}

// Modes returns a copy of the transport mode table.
func (c *Catalog) Modes() map[string]TransportMode {
	out := make(map[string]TransportMode, len(c.modes))
	for k, v := range c.modes {
		out[k] = v
	}
	return out
}

// Mode returns the transport mode stored under key.
func (c *Catalog) Mode(key string) (TransportMode, bool) {
	m, ok := c.modes[key]
	return m, ok
}

// CarbonFactor returns kg CO2 per km for mode, 0 for unknown modes.
func (c *Catalog) CarbonFactor(mode string) float64 {
	return c.modes[mode].CarbonPerKm
}

// Stop returns a deep copy of the enriched catalog stop with the given id.
func (c *Catalog) Stop(id string) (record.Record, bool) {
	s, ok := c.stops[id]
	if !ok {
		return nil, false
	}
	return record.Clone(s), true
}

// StopCoordinates returns the coordinates of a catalog stop. The second result
// is false for unknown stops and stops without a complete lat/lng pair.
func (c *Catalog) StopCoordinates(id string) (geo.Coordinates, bool) {
	s, ok := c.stops[id]
	if !ok {
		return geo.Coordinates{}, false
	}
	return Coordinates(s)
}

// Coordinates reads the coordinates object of a stop record.
func Coordinates(stop record.Record) (geo.Coordinates, bool) {
	coords, ok := record.Map(stop, "coordinates")
	if !ok {
		return geo.Coordinates{}, false
	}
	lat, okLat := record.Float(coords, "lat")
	lng, okLng := record.Float(coords, "lng")
	if !okLat || !okLng {
		return geo.Coordinates{}, false
	}
	return geo.Coordinates{Lat: lat, Lng: lng}, true
}

// StopIDs returns all stop ids in sorted order.
func (c *Catalog) StopIDs() []string {
	ids := make([]string, 0, len(c.stops))
	for id := range c.stops {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Routes returns deep copies of the route definitions in catalog order.
func (c *Catalog) Routes() []record.Record {
	out := make([]record.Record, len(c.routes))
	for i, r := range c.routes {
		out[i] = record.Clone(r)
	}
	return out
}

// FlightSeatInfo returns the default seat recommendation of the flight mode.
func (c *Catalog) FlightSeatInfo() (any, bool) {
	defaults, ok := c.SegmentDefaults.Lookup(FlightMode)
	if !ok {
		return nil, false
	}
	seat := defaults["seatInfo"]
	return seat, record.Truthy(seat)
}

func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(%d stops, %d modes, %d routes)", len(c.stops), len(c.modes), len(c.routes))
}

func cloneList(l []any) []any {
	if l == nil {
		return nil
	}
	return record.CloneValue(l).([]any)
}
