package analytics

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/repository"
)

// Service defines the interface for analytics queries. All operations
// are read-only full scans recomputed on every call; there are no
// persisted rollups to invalidate.
type Service interface {
	GetOverallStats(ctx context.Context) (*domain.OverallStats, error)
	GetWeeklyPerformance(ctx context.Context) ([]domain.DailyPerformance, error)
	GetLeaguePerformance(ctx context.Context) ([]domain.LeaguePerformance, error)
	GetConfidenceAnalysis(ctx context.Context) ([]domain.ConfidenceBucket, error)
}

// service implements the Service interface
type service struct {
	predictions repository.Prediction
	matches     repository.Match
}

// NewService creates a new analytics service
func NewService(predictions repository.Prediction, matches repository.Match) Service {
	return &service{
		predictions: predictions,
		matches:     matches,
	}
}

// round2 rounds to two decimal places, matching the display contract
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// GetOverallStats computes accuracy and a notional-stake ROI across all
// settled predictions. Accuracy and ROI are 0, not NaN, on empty input.
func (s *service) GetOverallStats(ctx context.Context) (*domain.OverallStats, error) {
	predictions, err := s.predictions.GetAllPredictions(ctx)
	if err != nil {
		return nil, err
	}

	stats := &domain.OverallStats{}
	var totalStake, totalReturn float64

	for _, p := range predictions {
		switch {
		case p.Confidence >= HighConfidenceFloor:
			stats.ConfidenceDistribution.High++
		case p.Confidence >= MediumConfidenceFloor:
			stats.ConfidenceDistribution.Medium++
		default:
			stats.ConfidenceDistribution.Low++
		}

		if p.Status == domain.PredictionStatusPending {
			continue
		}
		stats.TotalPredictions++
		totalStake += domain.NotionalStake
		if p.Status == domain.PredictionStatusWon {
			stats.CorrectPredictions++
			totalReturn += p.PotentialReturn
		}
	}

	if stats.TotalPredictions > 0 {
		stats.Accuracy = round2(float64(stats.CorrectPredictions) / float64(stats.TotalPredictions) * 100)
	}
	if totalStake > 0 {
		stats.ROI = round2((totalReturn - totalStake) / totalStake * 100)
	}
	stats.TotalStake = totalStake
	stats.TotalReturn = round2(totalReturn)
	return stats, nil
}

// GetWeeklyPerformance buckets predictions by creation day over the
// trailing seven calendar days, today included
func (s *service) GetWeeklyPerformance(ctx context.Context) ([]domain.DailyPerformance, error) {
	predictions, err := s.predictions.GetAllPredictions(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	weekly := make([]domain.DailyPerformance, 0, WeeklyWindowDays)
	for i := WeeklyWindowDays - 1; i >= 0; i-- {
		dayStart := today.AddDate(0, 0, -i)
		dayEnd := dayStart.AddDate(0, 0, 1)

		day := domain.DailyPerformance{Date: dayStart.Format("2006-01-02")}
		finished, correct := 0, 0
		for _, p := range predictions {
			if p.CreatedAt.Before(dayStart) || !p.CreatedAt.Before(dayEnd) {
				continue
			}
			day.Total++
			if p.Status == domain.PredictionStatusPending {
				continue
			}
			finished++
			if p.Status == domain.PredictionStatusWon {
				correct++
			}
		}
		day.Correct = correct
		if finished > 0 {
			day.Accuracy = round2(float64(correct) / float64(finished) * 100)
		}
		weekly = append(weekly, day)
	}
	return weekly, nil
}

// GetLeaguePerformance joins predictions to their match's league in
// memory and reports per-league accuracy, best first
func (s *service) GetLeaguePerformance(ctx context.Context) ([]domain.LeaguePerformance, error) {
	predictions, err := s.predictions.GetAllPredictions(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.GetAllMatches(ctx)
	if err != nil {
		return nil, err
	}

	leagueByMatch := make(map[string]string, len(matches))
	for _, m := range matches {
		leagueByMatch[m.ID] = m.League
	}

	byLeague := make(map[string]*domain.LeaguePerformance)
	for _, p := range predictions {
		league, ok := leagueByMatch[p.MatchID]
		if !ok {
			continue
		}
		stats, ok := byLeague[league]
		if !ok {
			stats = &domain.LeaguePerformance{League: league}
			byLeague[league] = stats
		}
		if p.Status == domain.PredictionStatusPending {
			continue
		}
		stats.Total++
		if p.Status == domain.PredictionStatusWon {
			stats.Correct++
		}
	}

	result := make([]domain.LeaguePerformance, 0, len(byLeague))
	for _, stats := range byLeague {
		if stats.Total > 0 {
			stats.Accuracy = round2(float64(stats.Correct) / float64(stats.Total) * 100)
		}
		result = append(result, *stats)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Accuracy > result[j].Accuracy })
	return result, nil
}

// GetConfidenceAnalysis reports settled accuracy across five fixed
// confidence ranges
func (s *service) GetConfidenceAnalysis(ctx context.Context) ([]domain.ConfidenceBucket, error) {
	predictions, err := s.predictions.GetAllPredictions(ctx)
	if err != nil {
		return nil, err
	}

	ranges := []struct {
		min, max int
		label    string
	}{
		{90, 100, "90-100%"},
		{80, 89, "80-89%"},
		{70, 79, "70-79%"},
		{60, 69, "60-69%"},
		{0, 59, "0-59%"},
	}

	buckets := make([]domain.ConfidenceBucket, 0, len(ranges))
	for _, r := range ranges {
		bucket := domain.ConfidenceBucket{Range: r.label}
		for _, p := range predictions {
			if p.Status == domain.PredictionStatusPending {
				continue
			}
			if p.Confidence < r.min || p.Confidence > r.max {
				continue
			}
			bucket.Total++
			if p.Status == domain.PredictionStatusWon {
				bucket.Correct++
			}
		}
		if bucket.Total > 0 {
			bucket.Accuracy = round2(float64(bucket.Correct) / float64(bucket.Total) * 100)
		}
		buckets = append(buckets, bucket)
	}
	return buckets, nil
}
