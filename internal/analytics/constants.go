package analytics

// Confidence distribution thresholds
const (
	HighConfidenceFloor   = 80
	MediumConfidenceFloor = 60
)

// Trailing window for the weekly view
const WeeklyWindowDays = 7
