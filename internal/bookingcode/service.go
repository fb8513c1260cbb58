package bookingcode

import (
	"context"
	"errors"
	"time"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/metrics"
	"github.com/betpulse/betpulse/internal/repository"
)

// Service defines the interface for booking code operations
type Service interface {
	Create(ctx context.Context, identity auth.Identity, code *domain.BookingCode) error
	GetActive(ctx context.Context, limit int) ([]domain.EnrichedBookingCode, error)
	Get(ctx context.Context, codeID string) (*domain.EnrichedBookingCode, error)
	GetMine(ctx context.Context, identity auth.Identity, limit int) ([]domain.BookingCode, error)
	ListByStatus(ctx context.Context, status domain.BookingCodeStatus) ([]domain.BookingCode, error)
	UpdateStatus(ctx context.Context, identity auth.Identity, codeID string, status domain.BookingCodeStatus) error
}

// service implements the Service interface
type service struct {
	codes   repository.BookingCode
	matches repository.Match
	users   repository.User
}

// NewService creates a new booking code service
func NewService(codes repository.BookingCode, matches repository.Match, users repository.User) Service {
	return &service{
		codes:   codes,
		matches: matches,
		users:   users,
	}
}

// Create stores a new shared slip. The potential win is frozen at
// creation from the submitted stake and odds. Codes and match
// references are accepted as-is; no bookmaker-side verification runs.
func (s *service) Create(ctx context.Context, identity auth.Identity, code *domain.BookingCode) error {
	log := logger.FromContext(ctx)

	if identity.UserID == "" || identity.IsAnonymous {
		return domain.ErrGuestForbidden
	}

	code.CreatedBy = identity.UserID
	code.Status = domain.BookingCodeStatusActive
	code.PotentialWin = code.Stake * code.Odds
	if err := s.codes.CreateBookingCode(ctx, code); err != nil {
		return err
	}

	metrics.BookingCodesCreated.Inc()
	log.Info(LogMsgCodeCreated, "code_id", code.ID, "platform", code.Platform, "user_id", identity.UserID)
	return nil
}

// GetActive lists unexpired active slips, newest first
func (s *service) GetActive(ctx context.Context, limit int) ([]domain.EnrichedBookingCode, error) {
	if limit <= 0 {
		limit = domain.DefaultBookingCodeLimit
	}
	codes, err := s.codes.GetActiveBookingCodes(ctx, time.Now(), limit)
	if err != nil {
		return nil, err
	}

	enriched := make([]domain.EnrichedBookingCode, 0, len(codes))
	for i := range codes {
		e, err := s.enrich(ctx, &codes[i])
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, *e)
	}
	return enriched, nil
}

// Get fetches a single slip with its resolved matches
func (s *service) Get(ctx context.Context, codeID string) (*domain.EnrichedBookingCode, error) {
	code, err := s.codes.GetBookingCodeByID(ctx, codeID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, code)
}

// GetMine lists the caller's own slips regardless of status or expiry
func (s *service) GetMine(ctx context.Context, identity auth.Identity, limit int) ([]domain.BookingCode, error) {
	if identity.UserID == "" || identity.IsAnonymous {
		return nil, domain.ErrGuestForbidden
	}
	if limit <= 0 {
		limit = DefaultMineLimit
	}
	return s.codes.GetBookingCodesByCreator(ctx, identity.UserID, limit)
}

// ListByStatus lists slips in one lifecycle state, without the expiry filter
func (s *service) ListByStatus(ctx context.Context, status domain.BookingCodeStatus) ([]domain.BookingCode, error) {
	return s.codes.GetBookingCodesByStatus(ctx, status)
}

// UpdateStatus flips a slip's lifecycle state. Only the creator or an
// admin may do this.
func (s *service) UpdateStatus(ctx context.Context, identity auth.Identity, codeID string, status domain.BookingCodeStatus) error {
	log := logger.FromContext(ctx)

	switch status {
	case domain.BookingCodeStatusActive, domain.BookingCodeStatusWon,
		domain.BookingCodeStatusLost, domain.BookingCodeStatusExpired:
	default:
		return domain.ErrInvalidStatusChange
	}

	code, err := s.codes.GetBookingCodeByID(ctx, codeID)
	if err != nil {
		return err
	}

	if code.CreatedBy != identity.UserID {
		role, err := s.users.GetUserRole(ctx, identity.UserID)
		if err != nil {
			return err
		}
		if role != domain.RoleAdmin {
			return domain.ErrNotCodeOwner
		}
	}

	if err := s.codes.UpdateBookingCodeStatus(ctx, codeID, status); err != nil {
		return err
	}

	log.Info(LogMsgCodeStatusUpdated, "code_id", codeID, "status", status, "user_id", identity.UserID)
	return nil
}

// enrich resolves match references, silently dropping ones that no
// longer exist.
func (s *service) enrich(ctx context.Context, code *domain.BookingCode) (*domain.EnrichedBookingCode, error) {
	details := make([]domain.Match, 0, len(code.MatchIDs))
	for _, matchID := range code.MatchIDs {
		match, err := s.matches.GetMatchByID(ctx, matchID)
		if err != nil {
			if errors.Is(err, domain.ErrMatchNotFound) {
				continue
			}
			return nil, err
		}
		details = append(details, *match)
	}
	return &domain.EnrichedBookingCode{BookingCode: *code, MatchDetails: details}, nil
}
