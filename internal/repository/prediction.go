package repository

import (
	"context"

	"github.com/betpulse/betpulse/internal/domain"
)

// Prediction defines the interface for prediction persistence
type Prediction interface {
	CreatePrediction(ctx context.Context, p *domain.Prediction) error
	GetPredictionsForMatch(ctx context.Context, matchID string) ([]domain.Prediction, error)

	// GetTopPredictions returns predictions with confidence >= minConfidence,
	// highest confidence first.
	GetTopPredictions(ctx context.Context, minConfidence, limit int) ([]domain.Prediction, error)
	GetAllPredictions(ctx context.Context) ([]domain.Prediction, error)

	// SettlePrediction patches status and actual result on a single row.
	// Rows already settled are left untouched.
	SettlePrediction(ctx context.Context, predictionID string, status domain.PredictionStatus, actualResult string) error
}
