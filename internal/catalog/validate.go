package catalog

import (
	"errors"
	"fmt"

	"github.com/travelkit/travelkit/internal/record"
)

// Validate checks the referential invariants of the catalog and returns every
// violation joined into one error. Violations are authoring mistakes in the
// static tables, so the build is expected to abort on them.
func (c *Catalog) Validate() error {
	var errs []error

	for key, mode := range c.modes {
		if mode.CarbonPerKm < 0 {
			errs = append(errs, fmt.Errorf("transport mode %q: negative carbonPerKm %v", key, mode.CarbonPerKm))
		}
	}

	for key, stop := range c.stops {
		if id := record.String(stop, "id"); id != key {
			errs = append(errs, fmt.Errorf("stop %q: id field is %q", key, id))
		}
	}

	for _, id := range c.orphanEnrichments {
		errs = append(errs, fmt.Errorf("stop enrichment %q: unknown stop", id))
	}

	seenRoutes := make(map[string]bool, len(c.routes))
	for i, r := range c.routes {
		id := record.String(r, "id")
		if id == "" {
			errs = append(errs, fmt.Errorf("route #%d: missing id", i+1))
			continue
		}
		if seenRoutes[id] {
			errs = append(errs, fmt.Errorf("route %q: duplicate id", id))
		}
		seenRoutes[id] = true
		errs = append(errs, c.validateRoute(id, r)...)
	}

	return errors.Join(errs...)
}

func (c *Catalog) validateRoute(id string, r record.Record) []error {
	var errs []error

	for _, sid := range record.List(r, "stops") {
		s, _ := sid.(string)
		if _, ok := c.stops[s]; !ok {
			errs = append(errs, fmt.Errorf("route %q: unknown stop %v", id, sid))
		}
	}

	for i, seg := range record.Records(r, "segments") {
		for _, field := range []string{"from", "to"} {
			if sid := record.String(seg, field); !c.hasStop(sid) {
				errs = append(errs, fmt.Errorf("route %q segment %d: unknown %s stop %q", id, i+1, field, sid))
			}
		}
		if mode := record.String(seg, "mode"); !c.hasMode(mode) {
			errs = append(errs, fmt.Errorf("route %q segment %d: unknown mode %q", id, i+1, mode))
		}
	}

	for i, f := range record.Records(r, "flights") {
		for _, field := range []string{"fromStopId", "toStopId"} {
			if sid := record.String(f, field); !c.hasStop(sid) {
				errs = append(errs, fmt.Errorf("route %q flight %d: unknown %s %q", id, i+1, field, sid))
			}
		}
	}

	return errs
}

func (c *Catalog) hasStop(id string) bool {
	_, ok := c.stops[id]
	return ok
}

func (c *Catalog) hasMode(key string) bool {
	_, ok := c.modes[key]
	return ok
}
