package repository

import (
	"context"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
)

// Match defines the interface for fixture persistence
type Match interface {
	CreateMatch(ctx context.Context, match *domain.Match) error
	GetMatchByID(ctx context.Context, matchID string) (*domain.Match, error)
	GetMatchByExternalID(ctx context.Context, externalID string) (*domain.Match, error)
	UpdateMatch(ctx context.Context, matchID string, patch domain.MatchPatch) error
	DeleteMatch(ctx context.Context, matchID string) error

	// GetUpcomingMatches returns upcoming fixtures with kickoff >= after,
	// sorted ascending by kickoff time. League filter is optional.
	GetUpcomingMatches(ctx context.Context, after time.Time, league string, limit int) ([]domain.Match, error)
	GetMatchesInWindow(ctx context.Context, from, to time.Time) ([]domain.Match, error)
	GetMatchesByStatus(ctx context.Context, status domain.MatchStatus) ([]domain.Match, error)
	GetAllMatches(ctx context.Context) ([]domain.Match, error)
}
