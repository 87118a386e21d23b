package builder

import (
	"time"

	"github.com/travelkit/travelkit/internal/catalog"
	"github.com/travelkit/travelkit/internal/logger"
	"github.com/travelkit/travelkit/internal/record"
)

// Document is the travel-routes JSON document consumed by the front-end.
type Document struct {
	Meta           record.Record                    `json:"meta"`
	TransportModes map[string]catalog.TransportMode `json:"transportModes"`
	TagLibrary     []any                            `json:"tagLibrary"`
	Gallery        []any                            `json:"gallery"`
	Events         []any                            `json:"events"`
	Templates      record.Record                    `json:"templates"`
	Routes         []record.Record                  `json:"routes"`
}

// Builder runs route processing against one catalog.
type Builder struct {
	cat *catalog.Catalog
}

// New creates a Builder for cat.
func New(cat *catalog.Catalog) *Builder {
	return &Builder{cat: cat}
}

// BuildRoute materializes one route definition and runs every stage on it.
func (b *Builder) BuildRoute(def record.Record) *Route {
	r := NewRoute(b.cat, def)
	for _, s := range b.stages() {
		s.apply(r)
	}
	return r
}

// Build processes all catalog routes and assembles the output document.
func (b *Builder) Build() *Document {
	site := b.cat.Site()
	doc := &Document{
		Meta:           site.Meta,
		TransportModes: b.cat.Modes(),
		TagLibrary:     site.TagLibrary,
		Gallery:        site.Gallery,
		Events:         site.Events,
		Templates:      site.Templates,
	}

	defs := b.cat.Routes()
	doc.Routes = make([]record.Record, 0, len(defs))
	for _, def := range defs {
		start := time.Now()
		r := b.BuildRoute(def)
		logger.RecordTiming("build.route", time.Since(start))
		logger.IncrCounter("build.routes")

		logger.Info("Route built", logger.Fields{
			"route":          r.ID,
			"segments":       r.Metrics.SegmentCount,
			"distance_km":    r.Metrics.TotalDistanceKm,
			"carbon_kg":      r.Metrics.EstimatedCarbonKg,
			"lodging_nights": r.Metrics.TotalNights,
		})
		doc.Routes = append(doc.Routes, r.Record())
	}
	logger.SetGauge("build.route_count", float64(len(doc.Routes)))

	return doc
}
