// Package builder turns the static catalog into the travel-routes JSON document.
//
// Each route definition is materialized (stops become private copies of the
// catalog stops) and then runs through a fixed sequence of stages: segments,
// flights, lodging, food, activities, counts and bounds. Every stage enriches
// its entities from the catalog tables and contributes to the route's derived
// Metrics. Stages only depend on each other through the route state, so each
// one can be exercised on its own in tests.
package builder
