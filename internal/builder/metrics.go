package builder

// Metrics are derived per route on every build. Optional figures are pointers
// so that they are omitted when not applicable but still emitted when zero.
type Metrics struct {
	TotalDistanceKm         float64  `json:"totalDistanceKm"`
	EstimatedCarbonKg       float64  `json:"estimatedCarbonKg"`
	SegmentCount            int      `json:"segmentCount"`
	FlightCount             int      `json:"flightCount"`
	StopCount               int      `json:"stopCount"`
	FlightCarbonKg          *float64 `json:"flightCarbonKg,omitempty"`
	GroundTransportCarbonKg *float64 `json:"groundTransportCarbonKg,omitempty"`
	TotalNights             *int     `json:"totalNights,omitempty"`
	AvgNightlyRate          *float64 `json:"avgNightlyRate,omitempty"`
	LodgingCount            int      `json:"lodgingCount"`
	FoodCount               int      `json:"foodCount"`
	ActivityCount           int      `json:"activityCount"`
	AverageDailyBudget      *float64 `json:"averageDailyBudget,omitempty"`
}

func ptr[T any](v T) *T {
	return &v
}
