package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betpulse/betpulse/internal/domain"
)

// PredictionRepository implements the prediction repository for PostgreSQL
type PredictionRepository struct {
	db *pgxpool.Pool
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *pgxpool.Pool) *PredictionRepository {
	return &PredictionRepository{db: db}
}

const predictionColumns = `prediction_id, match_id, prediction_type, prediction,
	confidence, ai_model, reasoning, odds, potential_return, status,
	COALESCE(actual_result, ''), created_at`

func collectPredictions(rows pgx.Rows) ([]domain.Prediction, error) {
	defer rows.Close()
	var preds []domain.Prediction
	for rows.Next() {
		var p domain.Prediction
		err := rows.Scan(
			&p.ID, &p.MatchID, &p.Type, &p.Predicted, &p.Confidence,
			&p.AIModel, &p.Reasoning, &p.Odds, &p.PotentialReturn,
			&p.Status, &p.ActualResult, &p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan prediction: %w", err)
		}
		preds = append(preds, p)
	}
	return preds, rows.Err()
}

// CreatePrediction inserts a pending prediction and fills in the generated ID
func (r *PredictionRepository) CreatePrediction(ctx context.Context, p *domain.Prediction) error {
	query := `
		INSERT INTO predictions (match_id, prediction_type, prediction, confidence,
			ai_model, reasoning, odds, potential_return, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING prediction_id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		p.MatchID, p.Type, p.Predicted, p.Confidence, p.AIModel,
		p.Reasoning, p.Odds, p.PotentialReturn, domain.PredictionStatusPending,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert prediction: %w", err)
	}
	p.Status = domain.PredictionStatusPending
	return nil
}

// GetPredictionsForMatch lists every prediction made for a match
func (r *PredictionRepository) GetPredictionsForMatch(ctx context.Context, matchID string) ([]domain.Prediction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM predictions
		WHERE match_id = $1
		ORDER BY created_at ASC
	`, predictionColumns)
	rows, err := r.db.Query(ctx, query, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions for match: %w", err)
	}
	return collectPredictions(rows)
}

// GetTopPredictions lists high-confidence predictions, highest first
func (r *PredictionRepository) GetTopPredictions(ctx context.Context, minConfidence, limit int) ([]domain.Prediction, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM predictions
		WHERE confidence >= $1
		ORDER BY confidence DESC, created_at DESC
		LIMIT $2
	`, predictionColumns)
	rows, err := r.db.Query(ctx, query, minConfidence, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top predictions: %w", err)
	}
	return collectPredictions(rows)
}

// GetAllPredictions lists every prediction (analytics scan)
func (r *PredictionRepository) GetAllPredictions(ctx context.Context) ([]domain.Prediction, error) {
	query := fmt.Sprintf("SELECT %s FROM predictions", predictionColumns)
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query predictions: %w", err)
	}
	return collectPredictions(rows)
}

// SettlePrediction grades a single pending prediction.
// Settled rows are never re-patched, so a duplicate settlement pass
// is a no-op at the row level.
func (r *PredictionRepository) SettlePrediction(ctx context.Context, predictionID string, status domain.PredictionStatus, actualResult string) error {
	query := `
		UPDATE predictions
		SET status = $2, actual_result = $3
		WHERE prediction_id = $1 AND status = 'pending'
	`
	_, err := r.db.Exec(ctx, query, predictionID, status, actualResult)
	if err != nil {
		return fmt.Errorf("failed to settle prediction: %w", err)
	}
	return nil
}
