package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/betpulse/betpulse/internal/database"
	"github.com/betpulse/betpulse/internal/domain"
)

func setupTestDB(t *testing.T) (context.Context, *MatchRepository, *PredictionRepository, *BookingCodeRepository, *ChatRepository, *UserRepository) {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	var pgContainer *postgres.PostgresContainer
	var err error

	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Skipf("Skipping integration test due to panic (likely Docker issue): %v", r)
			}
		}()
		pgContainer, err = postgres.Run(ctx,
			"postgres:15-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("testuser"),
			postgres.WithPassword("testpass"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(5*time.Second)),
		)
	}()

	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}
	if pgContainer == nil {
		t.Skip("no container available")
	}
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Fatalf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	pool, err := database.NewPool(connStr, database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime, database.DefaultMaxConnLifetime)
	if err != nil {
		t.Fatalf("failed to connect to database: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := applyMigrations(ctx, pool, "../../../migrations"); err != nil {
		t.Fatalf("failed to apply migrations: %v", err)
	}

	return ctx, NewMatchRepository(pool), NewPredictionRepository(pool),
		NewBookingCodeRepository(pool), NewChatRepository(pool), NewUserRepository(pool)
}

func TestRepositories_Integration(t *testing.T) {
	ctx, matches, predictions, codes, chat, users := setupTestDB(t)

	kickoff := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	match := &domain.Match{
		HomeTeam:  "Arsenal",
		AwayTeam:  "Chelsea",
		League:    "Premier League",
		KickoffAt: kickoff,
		Status:    domain.MatchStatusUpcoming,
		Odds:      domain.Odds{Home: 2.1, Draw: 3.4, Away: 3.2},
	}

	t.Run("MatchLifecycle", func(t *testing.T) {
		if err := matches.CreateMatch(ctx, match); err != nil {
			t.Fatalf("CreateMatch failed: %v", err)
		}
		if match.ID == "" {
			t.Error("expected match ID to be set")
		}

		got, err := matches.GetMatchByID(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetMatchByID failed: %v", err)
		}
		if got.HomeTeam != "Arsenal" || got.Odds.Draw != 3.4 {
			t.Errorf("unexpected match row: %+v", got)
		}

		upcoming, err := matches.GetUpcomingMatches(ctx, time.Now(), "", 20)
		if err != nil {
			t.Fatalf("GetUpcomingMatches failed: %v", err)
		}
		if len(upcoming) != 1 {
			t.Fatalf("expected 1 upcoming match, got %d", len(upcoming))
		}

		filtered, err := matches.GetUpcomingMatches(ctx, time.Now(), "La Liga", 20)
		if err != nil {
			t.Fatalf("GetUpcomingMatches with league filter failed: %v", err)
		}
		if len(filtered) != 0 {
			t.Errorf("expected no La Liga matches, got %d", len(filtered))
		}

		home, away := 2, 1
		status := domain.MatchStatusFinished
		err = matches.UpdateMatch(ctx, match.ID, domain.MatchPatch{
			Status:    &status,
			HomeScore: &home,
			AwayScore: &away,
		})
		if err != nil {
			t.Fatalf("UpdateMatch failed: %v", err)
		}

		got, err = matches.GetMatchByID(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetMatchByID after update failed: %v", err)
		}
		if got.Status != domain.MatchStatusFinished || got.HomeScore == nil || *got.HomeScore != 2 {
			t.Errorf("update not applied: %+v", got)
		}
		if got.LastUpdated == nil {
			t.Error("expected last_updated to be stamped")
		}
	})

	t.Run("MatchNotFound", func(t *testing.T) {
		_, err := matches.GetMatchByID(ctx, "00000000-0000-0000-0000-000000000000")
		if err != domain.ErrMatchNotFound {
			t.Errorf("expected ErrMatchNotFound, got %v", err)
		}
	})

	t.Run("PredictionSettlement", func(t *testing.T) {
		pred := &domain.Prediction{
			MatchID:         match.ID,
			Type:            domain.PredictionTypeMatchResult,
			Predicted:       domain.ResultHome,
			Confidence:      72,
			AIModel:         "statistical-fallback",
			Reasoning:       "Odds favour the home side",
			Odds:            2.1,
			PotentialReturn: 21.0,
		}
		if err := predictions.CreatePrediction(ctx, pred); err != nil {
			t.Fatalf("CreatePrediction failed: %v", err)
		}
		if pred.Status != domain.PredictionStatusPending {
			t.Errorf("expected pending status, got %s", pred.Status)
		}

		err := predictions.SettlePrediction(ctx, pred.ID, domain.PredictionStatusWon, "Home")
		if err != nil {
			t.Fatalf("SettlePrediction failed: %v", err)
		}

		rows, err := predictions.GetPredictionsForMatch(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetPredictionsForMatch failed: %v", err)
		}
		if len(rows) != 1 || rows[0].Status != domain.PredictionStatusWon || rows[0].ActualResult != "Home" {
			t.Errorf("settlement not applied: %+v", rows)
		}

		// Second settlement pass must not re-patch the settled row
		err = predictions.SettlePrediction(ctx, pred.ID, domain.PredictionStatusLost, "Away")
		if err != nil {
			t.Fatalf("repeat SettlePrediction failed: %v", err)
		}
		rows, _ = predictions.GetPredictionsForMatch(ctx, match.ID)
		if rows[0].Status != domain.PredictionStatusWon {
			t.Errorf("settled row was re-patched: %+v", rows[0])
		}
	})

	t.Run("TopPredictionsOrdering", func(t *testing.T) {
		for _, conf := range []int{65, 91, 80} {
			p := &domain.Prediction{
				MatchID:    match.ID,
				Type:       domain.PredictionTypeOverUnder,
				Predicted:  "Over 2.5",
				Confidence: conf,
				AIModel:    "statistical-fallback",
				Odds:       1.8,
			}
			if err := predictions.CreatePrediction(ctx, p); err != nil {
				t.Fatalf("CreatePrediction failed: %v", err)
			}
		}

		top, err := predictions.GetTopPredictions(ctx, 70, 10)
		if err != nil {
			t.Fatalf("GetTopPredictions failed: %v", err)
		}
		for i := 1; i < len(top); i++ {
			if top[i].Confidence > top[i-1].Confidence {
				t.Errorf("expected descending confidence order: %+v", top)
			}
		}
		for _, p := range top {
			if p.Confidence < 70 {
				t.Errorf("prediction below threshold returned: %+v", p)
			}
		}
	})

	t.Run("UserRolesAndDefaults", func(t *testing.T) {
		user := &domain.User{ID: "usr_abc123", Name: "Sam Carter", Email: "sam@example.com"}
		if err := users.UpsertUser(ctx, user); err != nil {
			t.Fatalf("UpsertUser failed: %v", err)
		}

		role, err := users.GetUserRole(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserRole failed: %v", err)
		}
		if role != domain.RoleUser {
			t.Errorf("expected default role user, got %s", role)
		}

		if err := users.GrantRole(ctx, user.ID, domain.RoleAdmin); err != nil {
			t.Fatalf("GrantRole failed: %v", err)
		}
		role, _ = users.GetUserRole(ctx, user.ID)
		if role != domain.RoleAdmin {
			t.Errorf("expected admin role, got %s", role)
		}

		all, err := users.GetAllUsersWithRoles(ctx)
		if err != nil {
			t.Fatalf("GetAllUsersWithRoles failed: %v", err)
		}
		if len(all) != 1 || all[0].Role != domain.RoleAdmin {
			t.Errorf("unexpected user list: %+v", all)
		}
	})

	t.Run("BookingCodeLifecycle", func(t *testing.T) {
		code := &domain.BookingCode{
			Code:         "BP-7K2M9",
			Platform:     "Bet9ja",
			MatchIDs:     []string{match.ID},
			Description:  "Weekend accumulator",
			Odds:         4.5,
			Stake:        10,
			PotentialWin: 45,
			ExpiresAt:    time.Now().Add(48 * time.Hour),
			CreatedBy:    "usr_abc123",
		}
		if err := codes.CreateBookingCode(ctx, code); err != nil {
			t.Fatalf("CreateBookingCode failed: %v", err)
		}

		active, err := codes.GetActiveBookingCodes(ctx, time.Now(), 10)
		if err != nil {
			t.Fatalf("GetActiveBookingCodes failed: %v", err)
		}
		if len(active) != 1 || active[0].Code != "BP-7K2M9" {
			t.Fatalf("unexpected active codes: %+v", active)
		}
		if len(active[0].MatchIDs) != 1 || active[0].MatchIDs[0] != match.ID {
			t.Errorf("match ids not round-tripped: %+v", active[0].MatchIDs)
		}

		if err := codes.UpdateBookingCodeStatus(ctx, code.ID, domain.BookingCodeStatusWon); err != nil {
			t.Fatalf("UpdateBookingCodeStatus failed: %v", err)
		}
		active, _ = codes.GetActiveBookingCodes(ctx, time.Now(), 10)
		if len(active) != 0 {
			t.Errorf("settled code still listed as active: %+v", active)
		}
	})

	t.Run("BookingCodeMinimalFields", func(t *testing.T) {
		// Description and match list omitted; both columns carry defaults
		code := &domain.BookingCode{
			Code:         "BP-MIN01",
			Platform:     "SportyBet",
			Odds:         2.0,
			Stake:        5,
			PotentialWin: 10,
			ExpiresAt:    time.Now().Add(24 * time.Hour),
			CreatedBy:    "usr_abc123",
		}
		if err := codes.CreateBookingCode(ctx, code); err != nil {
			t.Fatalf("CreateBookingCode with minimal fields failed: %v", err)
		}

		got, err := codes.GetBookingCodeByID(ctx, code.ID)
		if err != nil {
			t.Fatalf("GetBookingCodeByID failed: %v", err)
		}
		if got.Description != "" {
			t.Errorf("expected empty description, got %q", got.Description)
		}
		if len(got.MatchIDs) != 0 {
			t.Errorf("expected empty match id list, got %+v", got.MatchIDs)
		}
	})

	t.Run("ChatMessagesAndPresence", func(t *testing.T) {
		msg := &domain.Message{
			RoomID:   "general",
			UserID:   "usr_abc123",
			UserName: "Sam Carter",
			Content:  "Arsenal to win today",
		}
		if err := chat.CreateMessage(ctx, msg); err != nil {
			t.Fatalf("CreateMessage failed: %v", err)
		}

		msgs, err := chat.GetMessages(ctx, "general", 50)
		if err != nil {
			t.Fatalf("GetMessages failed: %v", err)
		}
		if len(msgs) != 1 || msgs[0].Content != "Arsenal to win today" {
			t.Fatalf("unexpected messages: %+v", msgs)
		}

		if err := chat.DeleteMessage(ctx, msg.ID); err != nil {
			t.Fatalf("DeleteMessage failed: %v", err)
		}
		if err := chat.DeleteMessage(ctx, msg.ID); err != domain.ErrMessageNotFound {
			t.Errorf("expected ErrMessageNotFound on double delete, got %v", err)
		}

		now := time.Now().UTC()
		rec := &domain.PresenceRecord{UserID: "usr_abc123", UserName: "Sam Carter", RoomID: "general", LastSeen: now}
		if err := chat.UpsertPresence(ctx, rec); err != nil {
			t.Fatalf("UpsertPresence failed: %v", err)
		}
		// Heartbeat again; must replace, not duplicate
		rec.LastSeen = now.Add(time.Minute)
		if err := chat.UpsertPresence(ctx, rec); err != nil {
			t.Fatalf("repeat UpsertPresence failed: %v", err)
		}

		online, err := chat.GetActivePresence(ctx, "general", now.Add(-domain.PresenceOnlineWindow), domain.MaxOnlineUsers)
		if err != nil {
			t.Fatalf("GetActivePresence failed: %v", err)
		}
		if len(online) != 1 {
			t.Errorf("expected 1 presence row, got %d", len(online))
		}

		stale := &domain.PresenceRecord{UserID: "usr_old", UserName: "Old User", RoomID: "general", LastSeen: now.Add(-2 * time.Hour)}
		if err := chat.UpsertPresence(ctx, stale); err != nil {
			t.Fatalf("UpsertPresence for stale row failed: %v", err)
		}
		deleted, err := chat.DeleteStalePresence(ctx, now.Add(-domain.PresenceRetention), domain.PresenceCleanupBatch)
		if err != nil {
			t.Fatalf("DeleteStalePresence failed: %v", err)
		}
		if deleted != 1 {
			t.Errorf("expected 1 stale row deleted, got %d", deleted)
		}
	})

	t.Run("MatchDeleteCascadesPredictions", func(t *testing.T) {
		if err := matches.DeleteMatch(ctx, match.ID); err != nil {
			t.Fatalf("DeleteMatch failed: %v", err)
		}
		rows, err := predictions.GetPredictionsForMatch(ctx, match.ID)
		if err != nil {
			t.Fatalf("GetPredictionsForMatch failed: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected predictions cascade-deleted, got %d rows", len(rows))
		}
	})
}
