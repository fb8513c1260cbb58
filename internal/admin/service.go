package admin

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/match"
	"github.com/betpulse/betpulse/internal/metrics"
	"github.com/betpulse/betpulse/internal/repository"
	"github.com/betpulse/betpulse/internal/sportsfeed"
)

// ImportResult reports the outcome of a fixture import run.
// Success is false only for soft failures such as a missing feed key;
// hard failures surface as errors.
type ImportResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Imported int    `json:"imported"`
	Total    int    `json:"total"`
}

// PollResult reports the outcome of a live-update poll
type PollResult struct {
	Polled   int `json:"polled"`
	Updated  int `json:"updated"`
	Finished int `json:"finished"`
}

// Service defines the interface for admin operations
type Service interface {
	ImportFixtures(ctx context.Context, date time.Time, leagueID string) (*ImportResult, error)
	PollLiveUpdates(ctx context.Context) (*PollResult, error)
	ListUsers(ctx context.Context) ([]domain.UserWithRole, error)
	PromoteUser(ctx context.Context, userID string) error
}

// service implements the Service interface
type service struct {
	feed      sportsfeed.Client
	matches   match.Service
	matchRepo repository.Match
	users     repository.User
}

// NewService creates a new admin service
func NewService(feed sportsfeed.Client, matches match.Service, matchRepo repository.Match, users repository.User) Service {
	return &service{
		feed:      feed,
		matches:   matches,
		matchRepo: matchRepo,
		users:     users,
	}
}

// ImportFixtures pulls fixtures for a calendar day from the feed and
// creates the ones not already present. Fixtures carry no odds on this
// endpoint, so imports start with default prices.
func (s *service) ImportFixtures(ctx context.Context, date time.Time, leagueID string) (*ImportResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgImportStarted, "date", date.Format(sportsfeed.DateLayout), "league", leagueID)

	fixtures, err := s.feed.FixturesByDate(ctx, date, leagueID)
	if err != nil {
		if errors.Is(err, domain.ErrFeedKeyMissing) {
			return &ImportResult{Success: false, Message: MsgFeedUnavailable}, nil
		}
		return nil, fmt.Errorf("failed to fetch fixtures: %w", err)
	}

	result := &ImportResult{Success: true, Total: len(fixtures)}
	for _, fixture := range fixtures {
		if result.Imported >= MaxImportPerRun {
			break
		}

		_, err := s.matchRepo.GetMatchByExternalID(ctx, fixture.ExternalID)
		if err == nil {
			log.Debug(LogMsgFixtureSkipped, "external_id", fixture.ExternalID)
			continue
		}
		if !errors.Is(err, domain.ErrMatchNotFound) {
			return nil, err
		}

		m := &domain.Match{
			HomeTeam:     fixture.HomeTeam,
			AwayTeam:     fixture.AwayTeam,
			League:       fixture.League,
			KickoffAt:    fixture.KickoffAt,
			Odds:         domain.Odds{Home: DefaultHomeOdds, Draw: DefaultDrawOdds, Away: DefaultAwayOdds},
			ExternalID:   fixture.ExternalID,
			Venue:        fixture.Venue,
			HomeTeamLogo: fixture.HomeLogo,
			AwayTeamLogo: fixture.AwayLogo,
		}
		if err := s.matches.Create(ctx, m); err != nil {
			return nil, err
		}
		result.Imported++
	}

	metrics.MatchesImported.Add(float64(result.Imported))
	result.Message = fmt.Sprintf("%s: %d of %d", MsgImportComplete, result.Imported, result.Total)
	log.Info(LogMsgImportFinished, "imported", result.Imported, "total", result.Total)
	return result, nil
}

// PollLiveUpdates refreshes in-play data for matches linked to the
// feed. Finished fixtures are finalized through the result path so
// settlement runs; everything else gets a live-data patch. Matches
// without an external ID are skipped, and per-match feed failures are
// logged but do not abort the poll.
func (s *service) PollLiveUpdates(ctx context.Context) (*PollResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgLivePollStarted)

	candidates, err := s.pollCandidates(ctx)
	if err != nil {
		return nil, err
	}

	result := &PollResult{}
	for _, m := range candidates {
		if m.ExternalID == "" {
			continue
		}
		result.Polled++

		fixture, err := s.feed.FixtureByID(ctx, m.ExternalID)
		if err != nil {
			if errors.Is(err, domain.ErrFeedKeyMissing) {
				return result, nil
			}
			log.Warn(LogMsgLivePollFailed, "match_id", m.ID, "error", err)
			continue
		}

		if err := s.applyFixture(ctx, &m, fixture); err != nil {
			log.Warn(LogMsgLivePollFailed, "match_id", m.ID, "error", err)
			continue
		}
		if fixture.Finished() {
			result.Finished++
		} else {
			result.Updated++
		}
	}

	log.Info(LogMsgLivePollFinished, "polled", result.Polled,
		"updated", result.Updated, "finished", result.Finished)
	return result, nil
}

// pollCandidates gathers live matches plus upcoming ones past kickoff
func (s *service) pollCandidates(ctx context.Context) ([]domain.Match, error) {
	live, err := s.matchRepo.GetMatchesByStatus(ctx, domain.MatchStatusLive)
	if err != nil {
		return nil, err
	}

	upcoming, err := s.matchRepo.GetMatchesByStatus(ctx, domain.MatchStatusUpcoming)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	candidates := live
	for _, m := range upcoming {
		if m.KickoffAt.Before(now) {
			candidates = append(candidates, m)
		}
	}
	return candidates, nil
}

func (s *service) applyFixture(ctx context.Context, m *domain.Match, fixture *sportsfeed.Fixture) error {
	homeGoals, awayGoals := 0, 0
	if fixture.HomeGoals != nil {
		homeGoals = *fixture.HomeGoals
	}
	if fixture.AwayGoals != nil {
		awayGoals = *fixture.AwayGoals
	}

	if fixture.Finished() {
		return s.matches.RecordResult(ctx, m.ID, homeGoals, awayGoals)
	}

	halfTime := fixture.Status == sportsfeed.StatusHalfTime
	return s.matches.UpdateLiveData(ctx, m.ID, domain.LiveUpdate{
		HomeScore: homeGoals,
		AwayScore: awayGoals,
		Minute:    fixture.Elapsed,
		HalfTime:  &halfTime,
	})
}

// ListUsers returns every account with its resolved role
func (s *service) ListUsers(ctx context.Context) ([]domain.UserWithRole, error) {
	return s.users.GetAllUsersWithRoles(ctx)
}

// PromoteUser grants the admin role to an existing user
func (s *service) PromoteUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if _, err := s.users.GetUserByID(ctx, userID); err != nil {
		return err
	}
	if err := s.users.GrantRole(ctx, userID, domain.RoleAdmin); err != nil {
		return err
	}

	log.Info(LogMsgUserPromoted, "user_id", userID)
	return nil
}
