package domain

// ConfidenceDistribution counts predictions by confidence band
type ConfidenceDistribution struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// OverallStats summarizes settled-prediction performance
type OverallStats struct {
	TotalPredictions       int                    `json:"total_predictions"`
	CorrectPredictions     int                    `json:"correct_predictions"`
	Accuracy               float64                `json:"accuracy"`
	ROI                    float64                `json:"roi"`
	ConfidenceDistribution ConfidenceDistribution `json:"confidence_distribution"`
	TotalStake             float64                `json:"total_stake"`
	TotalReturn            float64                `json:"total_return"`
}

// DailyPerformance is one day of the trailing-week view
type DailyPerformance struct {
	Date     string  `json:"date"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// LeaguePerformance aggregates settled predictions for one league
type LeaguePerformance struct {
	League   string  `json:"league"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}

// ConfidenceBucket reports accuracy within one confidence range
type ConfidenceBucket struct {
	Range    string  `json:"range"`
	Total    int     `json:"total"`
	Correct  int     `json:"correct"`
	Accuracy float64 `json:"accuracy"`
}
