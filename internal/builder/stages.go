package builder

import (
	"fmt"
	"math"

	"github.com/travelkit/travelkit/internal/catalog"
	"github.com/travelkit/travelkit/internal/geo"
	"github.com/travelkit/travelkit/internal/record"
)

// stage is one ordered step of route processing.
type stage struct {
	name  string
	apply func(*Route)
}

// stages returns the processing steps in the order they must run. Flights
// depend on the segment distances recorded by the segment stage; everything
// else is independent.
func (b *Builder) stages() []stage {
	return []stage{
		{"segments", b.processSegments},
		{"flights", b.processFlights},
		{"lodging", b.processLodging},
		{"food", b.processFood},
		{"activities", b.processActivities},
		{"counts", b.processCounts},
		{"bounds", b.processBounds},
	}
}

// processSegments assigns segment ids, merges mode defaults and pair-specific
// overrides, and computes per-segment carbon plus the distance and carbon
// totals of the route.
func (b *Builder) processSegments(r *Route) {
	var totalDistance, totalCarbon float64

	for i, seg := range r.Segments {
		seg["id"] = fmt.Sprintf("%s-seg-%02d", r.ID, i+1)
		b.cat.SegmentDefaults.Enrich(seg, record.String(seg, "mode"))

		key := catalog.SegmentKey{
			From: record.String(seg, "from"),
			To:   record.String(seg, "to"),
			Mode: record.String(seg, "mode"),
		}
		b.cat.SegmentSpecifics.Enrich(seg, key.String())

		distance := numberOrZero(seg, "distanceKm")
		// Last write wins when a route repeats a directed pair.
		r.segmentDistances[[2]string{key.From, key.To}] = distance
		totalDistance += distance

		if distance == 0 {
			continue
		}
		carbon := round(distance*b.cat.CarbonFactor(key.Mode), 2)
		if carbon != 0 {
			seg["carbonKg"] = carbon
			totalCarbon += carbon
		}
	}

	r.totalCarbon = totalCarbon
	r.Metrics.TotalDistanceKm = round(totalDistance, 1)
	r.Metrics.EstimatedCarbonKg = round(totalCarbon, 1)
}

// processFlights merges flight enrichments, backfills the seat recommendation
// and computes flight carbon from the resolved distance.
func (b *Builder) processFlights(r *Route) {
	factor := b.cat.CarbonFactor(catalog.FlightMode)
	var flightCarbon float64

	for _, f := range r.Flights {
		b.cat.Flights.Enrich(f, record.String(f, "id"))
		if !record.Has(f, "seatInfo") {
			if seat, ok := b.cat.FlightSeatInfo(); ok {
				f["seatInfo"] = seat
			}
		}

		distance, ok := b.flightDistance(r, f)
		if !ok {
			continue
		}
		f["distanceKm"] = round(distance, 1)
		carbon := round(distance*factor, 2)
		f["carbonKg"] = carbon
		flightCarbon += carbon
	}

	if flightCarbon != 0 {
		r.Metrics.FlightCarbonKg = ptr(round(flightCarbon, 1))
		r.Metrics.GroundTransportCarbonKg = ptr(round(math.Max(r.totalCarbon-flightCarbon, 0), 1))
	}
}

// flightDistance resolves a flight's distance: the flight's own distanceKm,
// then the distance of a segment with the same endpoints, then the great-circle
// distance between the catalog stops.
func (b *Builder) flightDistance(r *Route, f record.Record) (float64, bool) {
	if d := numberOrZero(f, "distanceKm"); d != 0 {
		return d, true
	}

	from, to := record.String(f, "fromStopId"), record.String(f, "toStopId")
	if d := r.segmentDistances[[2]string{from, to}]; d != 0 {
		return d, true
	}

	a, okA := b.cat.StopCoordinates(from)
	c, okC := b.cat.StopCoordinates(to)
	if !okA || !okC {
		return 0, false
	}
	if d := geo.HaversineKm(a, c); d != 0 {
		return d, true
	}
	return 0, false
}

// processLodging merges lodging enrichments and derives nights, total nights
// and the average nightly rate weighted by nights.
func (b *Builder) processLodging(r *Route) {
	totalNights := 0
	var totalCost float64

	for _, stay := range r.Lodging {
		b.cat.Lodging.Enrich(stay, record.String(stay, "name"))

		nights := NightsBetween(record.String(stay, "checkIn"), record.String(stay, "checkOut"))
		if nights == 0 {
			continue
		}
		stay["nights"] = nights
		totalNights += nights
		totalCost += numberOrZero(stay, "pricePerNight") * float64(nights)
	}

	if totalNights > 0 {
		r.Metrics.TotalNights = ptr(totalNights)
		r.Metrics.AvgNightlyRate = ptr(round(totalCost/float64(totalNights), 2))
	}
}

func (b *Builder) processFood(r *Route) {
	for _, item := range r.Food {
		b.cat.Food.Enrich(item, record.String(item, "name"))
	}
}

func (b *Builder) processActivities(r *Route) {
	for _, activity := range r.Activities {
		b.cat.Activities.Enrich(activity, record.String(activity, "title"))
	}
}

// processCounts records the entity counts and the daily budget. The budget is
// only set when the route declares a non-zero duration.
func (b *Builder) processCounts(r *Route) {
	m := &r.Metrics
	m.SegmentCount = len(r.Segments)
	m.FlightCount = 0
	for _, seg := range r.Segments {
		if record.String(seg, "mode") == catalog.FlightMode {
			m.FlightCount++
		}
	}
	m.StopCount = len(r.Stops)
	m.LodgingCount = len(r.Lodging)
	m.FoodCount = len(r.Food)
	m.ActivityCount = len(r.Activities)

	meta := r.Meta()
	days, ok := record.Float(meta, "durationDays")
	if !ok || days == 0 {
		m.AverageDailyBudget = nil
		return
	}
	cost, _ := record.Float(meta, "costEstimate")
	m.AverageDailyBudget = ptr(round(cost/days, 2))
}

// processBounds stores the bounding box of the route's stops.
func (b *Builder) processBounds(r *Route) {
	points := make([]geo.Coordinates, 0, len(r.Stops))
	for _, stop := range r.Stops {
		if c, ok := catalog.Coordinates(stop); ok {
			points = append(points, c)
		}
	}
	if box, ok := geo.BoundingBox(points); ok {
		r.Bounds = &box
	}
}

// numberOrZero reads a numeric field, treating missing, null and
// non-numeric values as 0.
func numberOrZero(r record.Record, key string) float64 {
	if !record.Truthy(r[key]) {
		return 0
	}
	v, _ := record.Float(r, key)
	return v
}
