package builder

import (
	"github.com/travelkit/travelkit/internal/catalog"
	"github.com/travelkit/travelkit/internal/geo"
	"github.com/travelkit/travelkit/internal/record"
)

// Route is a route definition being processed. The entity lists are pulled out
// of the definition so stages can work on them directly; Record puts them
// back together for output.
type Route struct {
	ID         string
	Definition record.Record
	Stops      []record.Record
	Segments   []record.Record
	Flights    []record.Record
	Lodging    []record.Record
	Food       []record.Record
	Activities []record.Record
	Metrics    Metrics
	Bounds     *geo.Box

	// totals carried between stages
	segmentDistances map[[2]string]float64
	totalCarbon      float64
}

// entity list keys of a route definition
const (
	keyStops      = "stops"
	keySegments   = "segments"
	keyFlights    = "flights"
	keyLodging    = "lodging"
	keyFood       = "food"
	keyActivities = "activities"
)

// NewRoute materializes a route definition. Stop ids are replaced with copies
// of the catalog stops; unknown ids are skipped (the catalog validation
// rejects them before a build starts).
func NewRoute(cat *catalog.Catalog, def record.Record) *Route {
	r := &Route{
		ID:               record.String(def, "id"),
		Definition:       def,
		Segments:         record.Records(def, keySegments),
		Flights:          record.Records(def, keyFlights),
		Lodging:          record.Records(def, keyLodging),
		Food:             record.Records(def, keyFood),
		Activities:       record.Records(def, keyActivities),
		segmentDistances: make(map[[2]string]float64),
	}
	for _, item := range record.List(def, keyStops) {
		switch v := item.(type) {
		case string:
			if stop, ok := cat.Stop(v); ok {
				r.Stops = append(r.Stops, stop)
			}
		case map[string]any:
			r.Stops = append(r.Stops, v)
		}
	}
	return r
}

// Meta returns the route's meta object, or nil.
func (r *Route) Meta() record.Record {
	m, _ := record.Map(r.Definition, "meta")
	return m
}

// Record returns the fully processed route as a JSON object.
func (r *Route) Record() record.Record {
	out := make(record.Record, len(r.Definition)+2)
	for k, v := range r.Definition {
		out[k] = v
	}
	out[keyStops] = toList(r.Stops)
	out[keySegments] = toList(r.Segments)
	out[keyFlights] = toList(r.Flights)
	out[keyLodging] = toList(r.Lodging)
	out[keyFood] = toList(r.Food)
	out[keyActivities] = toList(r.Activities)
	out["metrics"] = r.Metrics
	if r.Bounds != nil {
		out["bounds"] = *r.Bounds
	}
	return out
}

func toList(items []record.Record) []any {
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
