// Package record provides the open JSON-object values the route builder works on.
//
// Catalog entities (stops, segments, flights, stays, food items, activities) are
// kept as plain maps because enrichment tables add arbitrary nested fields to
// them. The package offers deep copy, deep merge, read-only keyed tables and
// typed accessors for the handful of fields the builder needs to read.
package record
