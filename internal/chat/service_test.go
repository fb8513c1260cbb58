package chat

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/domain"
)

type fakeChatRepo struct {
	messages []domain.Message
	presence map[string]domain.PresenceRecord // keyed by userID|roomID
	seq      int
}

func newFakeChatRepo() *fakeChatRepo {
	return &fakeChatRepo{presence: make(map[string]domain.PresenceRecord)}
}

func (r *fakeChatRepo) CreateMessage(_ context.Context, msg *domain.Message) error {
	r.seq++
	msg.ID = fmt.Sprintf("msg-%d", r.seq)
	msg.CreatedAt = time.Now()
	r.messages = append(r.messages, *msg)
	return nil
}

func (r *fakeChatRepo) GetMessageByID(_ context.Context, messageID string) (*domain.Message, error) {
	for _, m := range r.messages {
		if m.ID == messageID {
			copied := m
			return &copied, nil
		}
	}
	return nil, domain.ErrMessageNotFound
}

func (r *fakeChatRepo) GetMessages(_ context.Context, roomID string, limit int) ([]domain.Message, error) {
	var out []domain.Message
	for _, m := range r.messages {
		if m.RoomID == roomID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeChatRepo) DeleteMessage(_ context.Context, messageID string) error {
	for i, m := range r.messages {
		if m.ID == messageID {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return domain.ErrMessageNotFound
}

func (r *fakeChatRepo) UpsertPresence(_ context.Context, rec *domain.PresenceRecord) error {
	r.presence[rec.UserID+"|"+rec.RoomID] = *rec
	return nil
}

func (r *fakeChatRepo) GetActivePresence(_ context.Context, roomID string, since time.Time, limit int) ([]domain.PresenceRecord, error) {
	var out []domain.PresenceRecord
	for _, rec := range r.presence {
		if rec.RoomID == roomID && rec.LastSeen.After(since) && len(out) < limit {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *fakeChatRepo) DeleteStalePresence(_ context.Context, before time.Time, limit int) (int, error) {
	deleted := 0
	for key, rec := range r.presence {
		if deleted == limit {
			break
		}
		if rec.LastSeen.Before(before) {
			delete(r.presence, key)
			deleted++
		}
	}
	return deleted, nil
}

type fakeUserRepo struct {
	roles map[string]domain.Role
}

func (r *fakeUserRepo) GetUserByID(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *fakeUserRepo) UpsertUser(_ context.Context, _ *domain.User) error { return nil }

func (r *fakeUserRepo) GetUserRole(_ context.Context, userID string) (domain.Role, error) {
	if role, ok := r.roles[userID]; ok {
		return role, nil
	}
	return domain.RoleUser, nil
}

func (r *fakeUserRepo) GrantRole(_ context.Context, _ string, _ domain.Role) error { return nil }

func (r *fakeUserRepo) GetAllUsersWithRoles(_ context.Context) ([]domain.UserWithRole, error) {
	return nil, nil
}

type fakeBroadcaster struct {
	messages []*domain.Message
}

func (b *fakeBroadcaster) BroadcastMessage(msg *domain.Message) {
	b.messages = append(b.messages, msg)
}

func member(id, name string) auth.Identity {
	return auth.Identity{UserID: id, Name: name}
}

func TestSend_StoresSnapshotNameAndBroadcasts(t *testing.T) {
	repo := newFakeChatRepo()
	broadcaster := &fakeBroadcaster{}
	svc := NewService(repo, &fakeUserRepo{}, broadcaster)

	msg, err := svc.Send(context.Background(), member("u1", "Ada"), "", "hello")
	require.NoError(t, err)

	assert.Equal(t, DefaultRoom, msg.RoomID)
	assert.Equal(t, "Ada", msg.UserName)
	assert.Equal(t, "hello", msg.Content)
	require.Len(t, broadcaster.messages, 1)
	assert.Equal(t, msg.ID, broadcaster.messages[0].ID)
}

func TestSend_FallsBackToEmailThenAnonymous(t *testing.T) {
	svc := NewService(newFakeChatRepo(), &fakeUserRepo{}, nil)

	msg, err := svc.Send(context.Background(), auth.Identity{UserID: "u1", Email: "ada@example.com"}, "general", "hi")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", msg.UserName)

	msg, err = svc.Send(context.Background(), auth.Identity{UserID: "u2"}, "general", "hi")
	require.NoError(t, err)
	assert.Equal(t, domain.AnonymousDisplayName, msg.UserName)
}

func TestSend_RejectsGuests(t *testing.T) {
	svc := NewService(newFakeChatRepo(), &fakeUserRepo{}, nil)

	_, err := svc.Send(context.Background(), auth.Identity{UserID: "g1", IsAnonymous: true}, "general", "hi")
	assert.ErrorIs(t, err, domain.ErrGuestForbidden)

	_, err = svc.Send(context.Background(), auth.Identity{}, "general", "hi")
	assert.ErrorIs(t, err, domain.ErrGuestForbidden)
}

func TestGetMessages_ChronologicalOrder(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	for i := 1; i <= 3; i++ {
		_, err := svc.Send(context.Background(), member("u1", "Ada"), "general", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		// Distinct timestamps so ordering is deterministic.
		repo.messages[len(repo.messages)-1].CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
	}

	messages, err := svc.GetMessages(context.Background(), "general", 0)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "message 1", messages[0].Content)
	assert.Equal(t, "message 3", messages[2].Content)
}

func TestGetMessages_LimitKeepsNewest(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	for i := 1; i <= 5; i++ {
		_, err := svc.Send(context.Background(), member("u1", "Ada"), "general", fmt.Sprintf("message %d", i))
		require.NoError(t, err)
		repo.messages[len(repo.messages)-1].CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
	}

	messages, err := svc.GetMessages(context.Background(), "general", 2)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "message 4", messages[0].Content)
	assert.Equal(t, "message 5", messages[1].Content)
}

func TestDelete_AuthorCanDelete(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	msg, err := svc.Send(context.Background(), member("u1", "Ada"), "general", "oops")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), member("u1", "Ada"), msg.ID))
	assert.Empty(t, repo.messages)
}

func TestDelete_AdminCanDeleteOthersMessage(t *testing.T) {
	repo := newFakeChatRepo()
	users := &fakeUserRepo{roles: map[string]domain.Role{"boss": domain.RoleAdmin}}
	svc := NewService(repo, users, nil)

	msg, err := svc.Send(context.Background(), member("u1", "Ada"), "general", "spam")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), member("boss", "Boss"), msg.ID))
	assert.Empty(t, repo.messages)
}

func TestDelete_NonOwnerForbidden(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	msg, err := svc.Send(context.Background(), member("u1", "Ada"), "general", "mine")
	require.NoError(t, err)

	err = svc.Delete(context.Background(), member("u2", "Eve"), msg.ID)
	assert.ErrorIs(t, err, domain.ErrNotMessageOwner)
	assert.Len(t, repo.messages, 1)
}

func TestHeartbeat_UpsertsSingleRowPerUserRoom(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	require.NoError(t, svc.Heartbeat(context.Background(), member("u1", "Ada"), "general"))
	require.NoError(t, svc.Heartbeat(context.Background(), member("u1", "Ada"), "general"))

	assert.Len(t, repo.presence, 1)
}

func TestHeartbeat_RejectsGuests(t *testing.T) {
	svc := NewService(newFakeChatRepo(), &fakeUserRepo{}, nil)

	err := svc.Heartbeat(context.Background(), auth.Identity{IsAnonymous: true, UserID: "g1"}, "general")
	assert.ErrorIs(t, err, domain.ErrGuestForbidden)
}

func TestOnlineUsers_ExcludesStaleRows(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	require.NoError(t, svc.Heartbeat(context.Background(), member("u1", "Ada"), "general"))
	repo.presence["u2|general"] = domain.PresenceRecord{
		UserID:   "u2",
		UserName: "Eve",
		RoomID:   "general",
		LastSeen: time.Now().Add(-10 * time.Minute),
	}

	online, err := svc.OnlineUsers(context.Background(), "general")
	require.NoError(t, err)
	require.Len(t, online, 1)
	assert.Equal(t, "u1", online[0].UserID)
}

// duplicatePresenceRepo returns raw presence rows with repeated user IDs,
// as a room can hold when heartbeats raced across rooms or retries
type duplicatePresenceRepo struct {
	*fakeChatRepo
	records []domain.PresenceRecord
}

func (r *duplicatePresenceRepo) GetActivePresence(_ context.Context, _ string, _ time.Time, _ int) ([]domain.PresenceRecord, error) {
	return append([]domain.PresenceRecord(nil), r.records...), nil
}

func TestOnlineUsers_DedupesByUserID(t *testing.T) {
	now := time.Now()
	repo := &duplicatePresenceRepo{
		fakeChatRepo: newFakeChatRepo(),
		records: []domain.PresenceRecord{
			{UserID: "u1", UserName: "Ada", RoomID: "general", LastSeen: now},
			{UserID: "u1", UserName: "Ada", RoomID: "general", LastSeen: now.Add(-time.Minute)},
			{UserID: "u2", UserName: "Eve", RoomID: "general", LastSeen: now},
		},
	}
	svc := NewService(repo, &fakeUserRepo{}, nil)

	online, err := svc.OnlineUsers(context.Background(), "general")
	require.NoError(t, err)
	require.Len(t, online, 2)

	seen := make(map[string]bool)
	for _, rec := range online {
		assert.False(t, seen[rec.UserID], "duplicate user %s returned", rec.UserID)
		seen[rec.UserID] = true
	}
}

func TestCleanupPresence_LoopsUntilDone(t *testing.T) {
	repo := newFakeChatRepo()
	svc := NewService(repo, &fakeUserRepo{}, nil)

	stale := time.Now().Add(-2 * time.Hour)
	for i := 0; i < domain.PresenceCleanupBatch+5; i++ {
		userID := fmt.Sprintf("u%d", i)
		repo.presence[userID+"|general"] = domain.PresenceRecord{
			UserID:   userID,
			RoomID:   "general",
			LastSeen: stale,
		}
	}
	require.NoError(t, svc.Heartbeat(context.Background(), member("fresh", "Ada"), "general"))

	deleted, err := svc.CleanupPresence(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.PresenceCleanupBatch+5, deleted)
	assert.Len(t, repo.presence, 1) // the fresh row survives
}
