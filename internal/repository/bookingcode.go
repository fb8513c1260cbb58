package repository

import (
	"context"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
)

// BookingCode defines the interface for booking code persistence
type BookingCode interface {
	CreateBookingCode(ctx context.Context, code *domain.BookingCode) error
	GetBookingCodeByID(ctx context.Context, codeID string) (*domain.BookingCode, error)

	// GetActiveBookingCodes returns codes with status=active and
	// expires_at > now, newest first.
	GetActiveBookingCodes(ctx context.Context, now time.Time, limit int) ([]domain.BookingCode, error)
	GetBookingCodesByCreator(ctx context.Context, userID string, limit int) ([]domain.BookingCode, error)
	GetBookingCodesByStatus(ctx context.Context, status domain.BookingCodeStatus) ([]domain.BookingCode, error)
	UpdateBookingCodeStatus(ctx context.Context, codeID string, status domain.BookingCodeStatus) error
}
