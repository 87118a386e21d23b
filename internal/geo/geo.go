// Package geo holds the coordinate math used by the route builder.
package geo

import (
	"math"

	"github.com/twpayne/go-geom"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// Coordinates is a WGS84 position as stored in the stop catalog.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lng float64 `json:"lng" yaml:"lng"`
}

// HaversineKm returns the great-circle distance between a and b in kilometers.
func HaversineKm(a, b Coordinates) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := lat2 - lat1
	dLng := radians(b.Lng) - radians(a.Lng)

	sinLat, sinLng := math.Sin(dLat/2), math.Sin(dLng/2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng
	// Rounding can push sqrt(h) slightly above 1 for near-antipodal points.
	c := 2 * math.Asin(math.Min(1, math.Sqrt(h)))
	return EarthRadiusKm * c
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Box is a bounding box in [lng, lat] order, the order map libraries expect.
type Box [2][2]float64

// BoundingBox returns the smallest box containing all points. The second
// result is false when points is empty.
func BoundingBox(points []Coordinates) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	bounds := geom.NewBounds(geom.XY)
	for _, p := range points {
		bounds.Extend(geom.NewPointFlat(geom.XY, []float64{p.Lng, p.Lat}))
	}
	if bounds.IsEmpty() {
		return Box{}, false
	}
	return Box{
		{bounds.Min(0), bounds.Min(1)},
		{bounds.Max(0), bounds.Max(1)},
	}, true
}
