package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betpulse/betpulse/internal/domain"
)

// BookingCodeRepository implements the booking code repository for PostgreSQL
type BookingCodeRepository struct {
	db *pgxpool.Pool
}

// NewBookingCodeRepository creates a new BookingCodeRepository
func NewBookingCodeRepository(db *pgxpool.Pool) *BookingCodeRepository {
	return &BookingCodeRepository{db: db}
}

const bookingCodeColumns = `code_id, code, platform, match_ids, description,
	odds, stake, potential_win, expires_at, status, created_by, created_at`

func collectBookingCodes(rows pgx.Rows) ([]domain.BookingCode, error) {
	defer rows.Close()
	var codes []domain.BookingCode
	for rows.Next() {
		var c domain.BookingCode
		err := rows.Scan(
			&c.ID, &c.Code, &c.Platform, &c.MatchIDs, &c.Description,
			&c.Odds, &c.Stake, &c.PotentialWin, &c.ExpiresAt, &c.Status,
			&c.CreatedBy, &c.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking code: %w", err)
		}
		codes = append(codes, c)
	}
	return codes, rows.Err()
}

// CreateBookingCode inserts a shared code and fills in the generated ID
func (r *BookingCodeRepository) CreateBookingCode(ctx context.Context, code *domain.BookingCode) error {
	query := `
		INSERT INTO booking_codes (code, platform, match_ids, description, odds,
			stake, potential_win, expires_at, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING code_id, created_at
	`
	// A nil slice would encode as SQL NULL; the column is NOT NULL
	matchIDs := code.MatchIDs
	if matchIDs == nil {
		matchIDs = []string{}
	}
	err := r.db.QueryRow(ctx, query,
		code.Code, code.Platform, matchIDs, code.Description, code.Odds,
		code.Stake, code.PotentialWin, code.ExpiresAt, domain.BookingCodeStatusActive,
		code.CreatedBy,
	).Scan(&code.ID, &code.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert booking code: %w", err)
	}
	code.Status = domain.BookingCodeStatusActive
	return nil
}

// GetBookingCodeByID fetches a single shared code
func (r *BookingCodeRepository) GetBookingCodeByID(ctx context.Context, codeID string) (*domain.BookingCode, error) {
	query := fmt.Sprintf("SELECT %s FROM booking_codes WHERE code_id = $1", bookingCodeColumns)
	var c domain.BookingCode
	err := r.db.QueryRow(ctx, query, codeID).Scan(
		&c.ID, &c.Code, &c.Platform, &c.MatchIDs, &c.Description,
		&c.Odds, &c.Stake, &c.PotentialWin, &c.ExpiresAt, &c.Status,
		&c.CreatedBy, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingCodeNotFound
		}
		return nil, fmt.Errorf("failed to get booking code: %w", err)
	}
	return &c, nil
}

// GetActiveBookingCodes lists unexpired active codes, newest first
func (r *BookingCodeRepository) GetActiveBookingCodes(ctx context.Context, now time.Time, limit int) ([]domain.BookingCode, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM booking_codes
		WHERE status = 'active' AND expires_at > $1
		ORDER BY created_at DESC
		LIMIT $2
	`, bookingCodeColumns)
	rows, err := r.db.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query active booking codes: %w", err)
	}
	return collectBookingCodes(rows)
}

// GetBookingCodesByCreator lists a user's shared codes, newest first
func (r *BookingCodeRepository) GetBookingCodesByCreator(ctx context.Context, userID string, limit int) ([]domain.BookingCode, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM booking_codes
		WHERE created_by = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, bookingCodeColumns)
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking codes by creator: %w", err)
	}
	return collectBookingCodes(rows)
}

// GetBookingCodesByStatus lists codes in a given lifecycle state
func (r *BookingCodeRepository) GetBookingCodesByStatus(ctx context.Context, status domain.BookingCodeStatus) ([]domain.BookingCode, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM booking_codes
		WHERE status = $1
		ORDER BY created_at DESC
	`, bookingCodeColumns)
	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		return nil, fmt.Errorf("failed to query booking codes by status: %w", err)
	}
	return collectBookingCodes(rows)
}

// UpdateBookingCodeStatus moves a code to a new lifecycle state
func (r *BookingCodeRepository) UpdateBookingCodeStatus(ctx context.Context, codeID string, status domain.BookingCodeStatus) error {
	tag, err := r.db.Exec(ctx,
		"UPDATE booking_codes SET status = $2 WHERE code_id = $1", codeID, status)
	if err != nil {
		return fmt.Errorf("failed to update booking code status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBookingCodeNotFound
	}
	return nil
}
