package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/betpulse/betpulse/internal/domain"
)

// ChatRepository implements the chat repository for PostgreSQL
type ChatRepository struct {
	db *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository
func NewChatRepository(db *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{db: db}
}

func scanMessage(row pgx.Row) (*domain.Message, error) {
	var msg domain.Message
	var reactions []byte
	err := row.Scan(&msg.ID, &msg.RoomID, &msg.UserID, &msg.UserName,
		&msg.Content, &reactions, &msg.CreatedAt)
	if err != nil {
		return nil, err
	}
	if len(reactions) > 0 {
		if err := json.Unmarshal(reactions, &msg.Reactions); err != nil {
			return nil, fmt.Errorf("failed to decode reactions: %w", err)
		}
	}
	return &msg, nil
}

// CreateMessage inserts a chat message and fills in the generated ID
func (r *ChatRepository) CreateMessage(ctx context.Context, msg *domain.Message) error {
	reactions, err := json.Marshal(msg.Reactions)
	if err != nil {
		return fmt.Errorf("failed to encode reactions: %w", err)
	}
	query := `
		INSERT INTO messages (room_id, user_id, user_name, content, reactions)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING message_id, created_at
	`
	err = r.db.QueryRow(ctx, query,
		msg.RoomID, msg.UserID, msg.UserName, msg.Content, reactions,
	).Scan(&msg.ID, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// GetMessageByID fetches a single chat message
func (r *ChatRepository) GetMessageByID(ctx context.Context, messageID string) (*domain.Message, error) {
	query := `
		SELECT message_id, room_id, user_id, user_name, content, reactions, created_at
		FROM messages WHERE message_id = $1
	`
	msg, err := scanMessage(r.db.QueryRow(ctx, query, messageID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// GetMessages returns the newest messages for a room, most recent first
func (r *ChatRepository) GetMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error) {
	query := `
		SELECT message_id, room_id, user_id, user_name, content, reactions, created_at
		FROM messages
		WHERE room_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, roomID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		msg, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, *msg)
	}
	return messages, rows.Err()
}

// DeleteMessage removes a chat message
func (r *ChatRepository) DeleteMessage(ctx context.Context, messageID string) error {
	tag, err := r.db.Exec(ctx, "DELETE FROM messages WHERE message_id = $1", messageID)
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrMessageNotFound
	}
	return nil
}

// UpsertPresence records a heartbeat, replacing any prior row for the
// same user and room
func (r *ChatRepository) UpsertPresence(ctx context.Context, rec *domain.PresenceRecord) error {
	query := `
		INSERT INTO chat_presence (user_id, user_name, room_id, last_seen)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, room_id)
		DO UPDATE SET user_name = EXCLUDED.user_name, last_seen = EXCLUDED.last_seen
	`
	_, err := r.db.Exec(ctx, query, rec.UserID, rec.UserName, rec.RoomID, rec.LastSeen)
	if err != nil {
		return fmt.Errorf("failed to upsert presence: %w", err)
	}
	return nil
}

// GetActivePresence lists presence rows seen after the cutoff, capped at limit
func (r *ChatRepository) GetActivePresence(ctx context.Context, roomID string, since time.Time, limit int) ([]domain.PresenceRecord, error) {
	query := `
		SELECT user_id, user_name, room_id, last_seen
		FROM chat_presence
		WHERE room_id = $1 AND last_seen > $2
		ORDER BY last_seen DESC
		LIMIT $3
	`
	rows, err := r.db.Query(ctx, query, roomID, since, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query presence: %w", err)
	}
	defer rows.Close()

	var records []domain.PresenceRecord
	for rows.Next() {
		var rec domain.PresenceRecord
		if err := rows.Scan(&rec.UserID, &rec.UserName, &rec.RoomID, &rec.LastSeen); err != nil {
			return nil, fmt.Errorf("failed to scan presence: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// DeleteStalePresence removes up to limit rows last seen before the cutoff
// and reports how many were deleted
func (r *ChatRepository) DeleteStalePresence(ctx context.Context, before time.Time, limit int) (int, error) {
	query := `
		DELETE FROM chat_presence
		WHERE (user_id, room_id) IN (
			SELECT user_id, room_id FROM chat_presence
			WHERE last_seen < $1
			ORDER BY last_seen ASC
			LIMIT $2
		)
	`
	tag, err := r.db.Exec(ctx, query, before, limit)
	if err != nil {
		return 0, fmt.Errorf("failed to delete stale presence: %w", err)
	}
	return int(tag.RowsAffected()), nil
}
