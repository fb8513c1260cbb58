package repository

import (
	"context"
	"time"

	"github.com/betpulse/betpulse/internal/domain"
)

// Chat defines the interface for message and presence persistence
type Chat interface {
	CreateMessage(ctx context.Context, msg *domain.Message) error
	GetMessageByID(ctx context.Context, messageID string) (*domain.Message, error)

	// GetMessages returns the newest messages for a room, most recent first.
	GetMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error)
	DeleteMessage(ctx context.Context, messageID string) error

	UpsertPresence(ctx context.Context, rec *domain.PresenceRecord) error

	// GetActivePresence returns presence rows for a room with
	// last_seen > since, capped at limit.
	GetActivePresence(ctx context.Context, roomID string, since time.Time, limit int) ([]domain.PresenceRecord, error)

	// DeleteStalePresence removes up to limit rows with last_seen < before
	// and reports how many were deleted. Callers loop until it returns zero.
	DeleteStalePresence(ctx context.Context, before time.Time, limit int) (int, error)
}
