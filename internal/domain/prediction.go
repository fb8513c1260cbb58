package domain

import "time"

// PredictionType identifies the market a prediction is made on
type PredictionType string

const (
	PredictionTypeMatchResult    PredictionType = "match_result"
	PredictionTypeOverUnder      PredictionType = "over_under"
	PredictionTypeBothTeamsScore PredictionType = "both_teams_score"
)

// PredictionStatus is the settlement state of a prediction
type PredictionStatus string

const (
	PredictionStatusPending PredictionStatus = "pending"
	PredictionStatusWon     PredictionStatus = "won"
	PredictionStatusLost    PredictionStatus = "lost"
)

// Match-result labels
const (
	ResultHome = "Home"
	ResultDraw = "Draw"
	ResultAway = "Away"
)

// Prediction is a single categorical forecast about a match outcome
type Prediction struct {
	ID              string           `json:"id"`
	MatchID         string           `json:"match_id"`
	Type            PredictionType   `json:"prediction_type"`
	Predicted       string           `json:"prediction"`
	Confidence      int              `json:"confidence"`
	AIModel         string           `json:"ai_model"`
	Reasoning       string           `json:"reasoning"`
	Odds            float64          `json:"odds"`
	PotentialReturn float64          `json:"potential_return"`
	Status          PredictionStatus `json:"status"`
	ActualResult    string           `json:"actual_result,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

// MatchPredictions pairs a match with its generated predictions
type MatchPredictions struct {
	Match       Match        `json:"match"`
	Predictions []Prediction `json:"predictions"`
}

// EnrichedPrediction is a prediction joined with its match document
type EnrichedPrediction struct {
	Prediction
	Match *Match `json:"match,omitempty"`
}

// Settlement is the graded outcome for one prediction
type Settlement struct {
	PredictionID string           `json:"prediction_id"`
	Status       PredictionStatus `json:"status"`
	ActualResult string           `json:"actual_result"`
}
