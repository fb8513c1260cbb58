package match

import (
	"context"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/repository"
)

// SettlementScheduler defers prediction grading for a finished match.
// Settlement runs after the result-recording call returns, so callers
// must not assume predictions are graded immediately.
type SettlementScheduler interface {
	ScheduleSettlement(matchID string)
}

// Broadcaster pushes match changes to connected clients
type Broadcaster interface {
	BroadcastMatchUpdate(match *domain.Match)
}

// Service defines the interface for match operations
type Service interface {
	Create(ctx context.Context, match *domain.Match) error
	Get(ctx context.Context, matchID string, guest bool) (*domain.Match, error)
	ListUpcoming(ctx context.Context, league string, limit int) ([]domain.Match, error)
	ListToday(ctx context.Context) ([]domain.Match, error)
	ListLive(ctx context.Context, guest bool) ([]domain.Match, error)
	Update(ctx context.Context, matchID string, patch domain.MatchPatch) error
	UpdateLiveData(ctx context.Context, matchID string, update domain.LiveUpdate) error
	RecordResult(ctx context.Context, matchID string, homeScore, awayScore int) error
	Delete(ctx context.Context, matchID string) error
}

// service implements the Service interface
type service struct {
	repo        repository.Match
	settlements SettlementScheduler
	broadcaster Broadcaster
}

// NewService creates a new match service
func NewService(repo repository.Match, settlements SettlementScheduler, broadcaster Broadcaster) Service {
	return &service{
		repo:        repo,
		settlements: settlements,
		broadcaster: broadcaster,
	}
}

// Create stores a new fixture with status upcoming
func (s *service) Create(ctx context.Context, match *domain.Match) error {
	log := logger.FromContext(ctx)

	match.Status = domain.MatchStatusUpcoming
	if err := s.repo.CreateMatch(ctx, match); err != nil {
		return err
	}

	log.Info(LogMsgMatchCreated, "match_id", match.ID, "home", match.HomeTeam, "away", match.AwayTeam)
	return nil
}

// Get fetches a fixture, redacting live data for guest callers
func (s *service) Get(ctx context.Context, matchID string, guest bool) (*domain.Match, error) {
	match, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if guest && match.Status == domain.MatchStatusLive {
		match.RedactLiveData()
	}
	return match, nil
}

// ListUpcoming lists upcoming fixtures ascending by kickoff
func (s *service) ListUpcoming(ctx context.Context, league string, limit int) ([]domain.Match, error) {
	if limit <= 0 {
		limit = domain.DefaultMatchListLimit
	}
	return s.repo.GetUpcomingMatches(ctx, time.Now(), league, limit)
}

// ListToday lists fixtures kicking off today
func (s *service) ListToday(ctx context.Context) ([]domain.Match, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return s.repo.GetMatchesInWindow(ctx, dayStart, dayStart.AddDate(0, 0, 1))
}

// ListLive lists in-play fixtures, redacted for guest callers
func (s *service) ListLive(ctx context.Context, guest bool) ([]domain.Match, error) {
	matches, err := s.repo.GetMatchesByStatus(ctx, domain.MatchStatusLive)
	if err != nil {
		return nil, err
	}
	if guest {
		for i := range matches {
			matches[i].RedactLiveData()
		}
	}
	return matches, nil
}

// Update applies a partial patch to a fixture
func (s *service) Update(ctx context.Context, matchID string, patch domain.MatchPatch) error {
	log := logger.FromContext(ctx)

	if err := s.repo.UpdateMatch(ctx, matchID, patch); err != nil {
		return err
	}

	log.Info(LogMsgMatchUpdated, "match_id", matchID)
	s.broadcast(ctx, matchID)
	return nil
}

// UpdateLiveData moves a fixture to live and applies in-play data
func (s *service) UpdateLiveData(ctx context.Context, matchID string, update domain.LiveUpdate) error {
	log := logger.FromContext(ctx)

	status := domain.MatchStatusLive
	patch := domain.MatchPatch{
		Status:    &status,
		HomeScore: &update.HomeScore,
		AwayScore: &update.AwayScore,
		Minute:    update.Minute,
		HalfTime:  update.HalfTime,
		ExtraTime: update.ExtraTime,
		Penalties: update.Penalties,
	}
	if err := s.repo.UpdateMatch(ctx, matchID, patch); err != nil {
		return err
	}

	log.Info(LogMsgLiveDataUpdated, "match_id", matchID,
		"home_score", update.HomeScore, "away_score", update.AwayScore)
	s.broadcast(ctx, matchID)
	return nil
}

// RecordResult finalizes a fixture and schedules the settlement pass
func (s *service) RecordResult(ctx context.Context, matchID string, homeScore, awayScore int) error {
	log := logger.FromContext(ctx)

	status := domain.MatchStatusFinished
	patch := domain.MatchPatch{
		Status:    &status,
		HomeScore: &homeScore,
		AwayScore: &awayScore,
	}
	if err := s.repo.UpdateMatch(ctx, matchID, patch); err != nil {
		return err
	}

	log.Info(LogMsgResultRecorded, "match_id", matchID,
		"home_score", homeScore, "away_score", awayScore)

	s.settlements.ScheduleSettlement(matchID)
	log.Debug(LogMsgSettlementEnqueued, "match_id", matchID)

	s.broadcast(ctx, matchID)
	return nil
}

// Delete removes a fixture; its predictions go with it
func (s *service) Delete(ctx context.Context, matchID string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteMatch(ctx, matchID); err != nil {
		return err
	}

	log.Info(LogMsgMatchDeleted, "match_id", matchID)
	return nil
}

func (s *service) broadcast(ctx context.Context, matchID string) {
	if s.broadcaster == nil {
		return
	}
	match, err := s.repo.GetMatchByID(ctx, matchID)
	if err != nil {
		return
	}
	s.broadcaster.BroadcastMatchUpdate(match)
}
