// Package catalog loads the static reference tables of the travel-routes site.
//
// The tables (stops, transport modes, enrichment tables, route definitions and
// the site-level blocks) are YAML files embedded into the binary. They are
// decoded once and exposed read-only: every accessor that hands out an entity
// returns a private deep copy, so per-route changes can never leak back into
// the catalog or into sibling routes.
package catalog
