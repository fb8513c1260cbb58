package chat

import (
	"context"
	"time"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/domain"
	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/metrics"
	"github.com/betpulse/betpulse/internal/repository"
)

// Broadcaster pushes new messages to connected clients
type Broadcaster interface {
	BroadcastMessage(msg *domain.Message)
}

// Service defines the interface for chat operations
type Service interface {
	Send(ctx context.Context, identity auth.Identity, roomID, content string) (*domain.Message, error)
	GetMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error)
	Delete(ctx context.Context, identity auth.Identity, messageID string) error
	Heartbeat(ctx context.Context, identity auth.Identity, roomID string) error
	OnlineUsers(ctx context.Context, roomID string) ([]domain.PresenceRecord, error)
	CleanupPresence(ctx context.Context) (int, error)
}

// service implements the Service interface
type service struct {
	repo        repository.Chat
	users       repository.User
	broadcaster Broadcaster
}

// NewService creates a new chat service
func NewService(repo repository.Chat, users repository.User, broadcaster Broadcaster) Service {
	return &service{
		repo:        repo,
		users:       users,
		broadcaster: broadcaster,
	}
}

// Send stores a message under the caller's current display name and
// fans it out to connected clients. Guests cannot post.
func (s *service) Send(ctx context.Context, identity auth.Identity, roomID, content string) (*domain.Message, error) {
	log := logger.FromContext(ctx)

	if identity.UserID == "" || identity.IsAnonymous {
		return nil, domain.ErrGuestForbidden
	}
	if roomID == "" {
		roomID = DefaultRoom
	}

	msg := &domain.Message{
		RoomID:   roomID,
		UserID:   identity.UserID,
		UserName: identity.DisplayName(),
		Content:  content,
	}
	if err := s.repo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}

	metrics.MessagesSent.Inc()
	log.Info(LogMsgMessageSent, "message_id", msg.ID, "room_id", roomID, "user_id", identity.UserID)

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMessage(msg)
	}
	return msg, nil
}

// GetMessages returns the newest messages for a room in chronological
// order. The repository hands back newest-first; reversing keeps the
// limit anchored to the most recent messages.
func (s *service) GetMessages(ctx context.Context, roomID string, limit int) ([]domain.Message, error) {
	if roomID == "" {
		roomID = DefaultRoom
	}
	if limit <= 0 {
		limit = domain.DefaultMessageLimit
	}
	messages, err := s.repo.GetMessages(ctx, roomID, limit)
	if err != nil {
		return nil, err
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

// Delete removes a message. Only the author or an admin may do this.
func (s *service) Delete(ctx context.Context, identity auth.Identity, messageID string) error {
	log := logger.FromContext(ctx)

	msg, err := s.repo.GetMessageByID(ctx, messageID)
	if err != nil {
		return err
	}

	if msg.UserID != identity.UserID {
		role, err := s.users.GetUserRole(ctx, identity.UserID)
		if err != nil {
			return err
		}
		if role != domain.RoleAdmin {
			return domain.ErrNotMessageOwner
		}
	}

	if err := s.repo.DeleteMessage(ctx, messageID); err != nil {
		return err
	}

	log.Info(LogMsgMessageDeleted, "message_id", messageID, "user_id", identity.UserID)
	return nil
}

// Heartbeat records that the caller is present in a room. One row per
// (user, room) pair; repeats only bump last_seen.
func (s *service) Heartbeat(ctx context.Context, identity auth.Identity, roomID string) error {
	if identity.UserID == "" || identity.IsAnonymous {
		return domain.ErrGuestForbidden
	}
	if roomID == "" {
		roomID = DefaultRoom
	}
	return s.repo.UpsertPresence(ctx, &domain.PresenceRecord{
		UserID:   identity.UserID,
		UserName: identity.DisplayName(),
		RoomID:   roomID,
		LastSeen: time.Now(),
	})
}

// OnlineUsers lists users seen in a room within the online window
func (s *service) OnlineUsers(ctx context.Context, roomID string) ([]domain.PresenceRecord, error) {
	if roomID == "" {
		roomID = DefaultRoom
	}
	since := time.Now().Add(-domain.PresenceOnlineWindow)
	records, err := s.repo.GetActivePresence(ctx, roomID, since, domain.MaxOnlineUsers)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	online := records[:0]
	for _, rec := range records {
		if seen[rec.UserID] {
			continue
		}
		seen[rec.UserID] = true
		online = append(online, rec)
	}
	return online, nil
}

// CleanupPresence removes presence rows older than the retention
// window in capped batches, looping until none remain. Returns the
// total number of rows deleted.
func (s *service) CleanupPresence(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	before := time.Now().Add(-domain.PresenceRetention)
	total := 0
	for {
		deleted, err := s.repo.DeleteStalePresence(ctx, before, domain.PresenceCleanupBatch)
		if err != nil {
			return total, err
		}
		if deleted == 0 {
			break
		}
		total += deleted
	}

	if total > 0 {
		metrics.PresenceRowsDeleted.Add(float64(total))
		log.Info(LogMsgPresenceCleanup, "deleted", total)
	}
	return total, nil
}
