package prediction

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/metrics"
)

// SettleMatch grades every pending prediction against the final score.
// Settled rows are skipped, so re-running a settlement pass is a no-op.
func (s *service) SettleMatch(ctx context.Context, matchID string) error {
	log := logger.FromContext(ctx)

	match, err := s.matches.GetMatchByID(ctx, matchID)
	if err != nil {
		return err
	}
	if match.Status != domain.MatchStatusFinished {
		return domain.ErrMatchNotFinished
	}
	if match.HomeScore == nil || match.AwayScore == nil {
		return domain.ErrScoresRequired
	}

	predictions, err := s.predictions.GetPredictionsForMatch(ctx, matchID)
	if err != nil {
		return err
	}

	log.Info(LogMsgSettlementStarted, "match_id", matchID, "predictions", len(predictions))

	settled := 0
	for _, p := range predictions {
		if p.Status != domain.PredictionStatusPending {
			continue
		}

		outcome, ok := grade(p, match)
		if !ok {
			log.Warn(LogMsgUngradableLabel, "prediction_id", p.ID, "type", p.Type, "label", p.Predicted)
			continue
		}

		if err := s.predictions.SettlePrediction(ctx, p.ID, outcome.Status, outcome.ActualResult); err != nil {
			return fmt.Errorf("failed to settle prediction %s: %w", p.ID, err)
		}
		settled++
		metrics.RecordSettlement(string(outcome.Status))
	}

	log.Info(LogMsgSettlementDone, "match_id", matchID, "settled", settled)
	return nil
}

// grade computes the settlement for one prediction. A false return means
// the label could not be interpreted and the row stays pending.
func grade(p domain.Prediction, match *domain.Match) (domain.Settlement, bool) {
	var actual string

	switch p.Type {
	case domain.PredictionTypeMatchResult:
		actual = actualResult(*match.HomeScore, *match.AwayScore)

	case domain.PredictionTypeOverUnder:
		line, ok := parseLine(p.Predicted)
		if !ok {
			return domain.Settlement{}, false
		}
		total, _ := match.TotalGoals()
		if float64(total) > line {
			actual = fmt.Sprintf("%s %g", LinePrefixOver, line)
		} else {
			// Lines are half-goal so exact pushes cannot occur; a whole
			// number line landing exactly grades as Under.
			actual = fmt.Sprintf("%s %g", LinePrefixUnder, line)
		}

	case domain.PredictionTypeBothTeamsScore:
		if *match.HomeScore > 0 && *match.AwayScore > 0 {
			actual = BTTSYes
		} else {
			actual = BTTSNo
		}

	default:
		return domain.Settlement{}, false
	}

	status := domain.PredictionStatusLost
	if strings.EqualFold(p.Predicted, actual) {
		status = domain.PredictionStatusWon
	}
	return domain.Settlement{
		PredictionID: p.ID,
		Status:       status,
		ActualResult: actual,
	}, true
}

// actualResult maps a final score to its match-result label
func actualResult(home, away int) string {
	switch {
	case home > away:
		return domain.ResultHome
	case home < away:
		return domain.ResultAway
	default:
		return domain.ResultDraw
	}
}

// parseLine extracts the goal line from a label like "Over 2.5"
func parseLine(label string) (float64, bool) {
	fields := strings.Fields(label)
	if len(fields) != 2 {
		return 0, false
	}
	if !strings.EqualFold(fields[0], LinePrefixOver) && !strings.EqualFold(fields[0], LinePrefixUnder) {
		return 0, false
	}
	line, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, false
	}
	return line, true
}
