package prediction

import (
	"context"
	"errors"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/llm"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/metrics"
	"github.com/betpulse/betpulse/internal/repository"
)

// Service defines the interface for prediction operations
type Service interface {
	// Generate produces and persists exactly three predictions for a match.
	// It only fails when the match does not exist; model failures degrade
	// to the odds-implied fallback.
	Generate(ctx context.Context, matchID string) ([]domain.Prediction, error)

	GetForMatch(ctx context.Context, matchID string) ([]domain.Prediction, error)
	GetTodays(ctx context.Context) ([]domain.MatchPredictions, error)
	GetTop(ctx context.Context, limit int) ([]domain.EnrichedPrediction, error)

	// SettleMatch grades every pending prediction for a finished match.
	SettleMatch(ctx context.Context, matchID string) error
}

// service implements the Service interface
type service struct {
	matches     repository.Match
	predictions repository.Prediction
	llm         llm.Client
}

// NewService creates a new prediction service
func NewService(matches repository.Match, predictions repository.Prediction, llmClient llm.Client) Service {
	return &service{
		matches:     matches,
		predictions: predictions,
		llm:         llmClient,
	}
}

// Generate builds predictions for the match, via the model when it
// cooperates and the deterministic fallback when it does not. Repeat
// invocations append a fresh batch; earlier batches are kept.
func (s *service) Generate(ctx context.Context, matchID string) ([]domain.Prediction, error) {
	log := logger.FromContext(ctx)

	match, err := s.matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}

	candidates, model := s.generate(ctx, match)
	if model == FallbackModelName {
		log.Info(LogMsgLLMFellBack, "match_id", matchID)
	}

	created := make([]domain.Prediction, 0, len(candidates))
	for _, c := range candidates {
		odds := impliedOdds(c, match)
		p := domain.Prediction{
			MatchID:         matchID,
			Type:            c.Type,
			Predicted:       c.Prediction,
			Confidence:      c.Confidence,
			AIModel:         model,
			Reasoning:       c.Reasoning,
			Odds:            odds,
			PotentialReturn: odds * domain.NotionalStake,
		}
		if err := s.predictions.CreatePrediction(ctx, &p); err != nil {
			log.Error(LogMsgPredictionPersistFailed, "error", err, "match_id", matchID, "type", c.Type)
			return nil, err
		}
		created = append(created, p)
	}

	metrics.RecordPredictionsGenerated(model, len(created))
	log.Info(LogMsgPredictionsCreated, "match_id", matchID, "count", len(created), "model", model)
	return created, nil
}

// GetForMatch lists every prediction made for a match
func (s *service) GetForMatch(ctx context.Context, matchID string) ([]domain.Prediction, error) {
	if _, err := s.matches.GetMatchByID(ctx, matchID); err != nil {
		return nil, err
	}
	return s.predictions.GetPredictionsForMatch(ctx, matchID)
}

// GetTodays groups today's fixtures with their predictions
func (s *service) GetTodays(ctx context.Context) ([]domain.MatchPredictions, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	matches, err := s.matches.GetMatchesInWindow(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	result := make([]domain.MatchPredictions, 0, len(matches))
	for _, m := range matches {
		preds, err := s.predictions.GetPredictionsForMatch(ctx, m.ID)
		if err != nil {
			return nil, err
		}
		result = append(result, domain.MatchPredictions{Match: m, Predictions: preds})
	}
	return result, nil
}

// GetTop lists the highest-confidence predictions joined with their matches
func (s *service) GetTop(ctx context.Context, limit int) ([]domain.EnrichedPrediction, error) {
	if limit <= 0 {
		limit = domain.DefaultTopPredictions
	}

	preds, err := s.predictions.GetTopPredictions(ctx, TopPredictionMinConfidence, limit)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.EnrichedPrediction, 0, len(preds))
	for _, p := range preds {
		match, err := s.matches.GetMatchByID(ctx, p.MatchID)
		if err != nil {
			if errors.Is(err, domain.ErrMatchNotFound) {
				enriched = append(enriched, domain.EnrichedPrediction{Prediction: p})
				continue
			}
			return nil, err
		}
		enriched = append(enriched, domain.EnrichedPrediction{Prediction: p, Match: match})
	}
	return enriched, nil
}
