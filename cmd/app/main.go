package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/betpulse/betpulse/internal/admin"
	"github.com/betpulse/betpulse/internal/analytics"
	"github.com/betpulse/betpulse/internal/auth"
	"github.com/betpulse/betpulse/internal/bookingcode"
	"github.com/betpulse/betpulse/internal/chat"
	"github.com/betpulse/betpulse/internal/config"
	"github.com/betpulse/betpulse/internal/database"
	"github.com/betpulse/betpulse/internal/database/postgres"
	"github.com/betpulse/betpulse/internal/llm"
	"github.com/betpulse/betpulse/internal/match"
	"github.com/betpulse/betpulse/internal/prediction"
	"github.com/betpulse/betpulse/internal/server"
	"github.com/betpulse/betpulse/internal/sportsfeed"
	"github.com/betpulse/betpulse/internal/sse"
	"github.com/betpulse/betpulse/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)
	log := slog.Default()

	dbPool, err := database.NewPool(cfg.GetDBConnString(),
		database.DefaultMaxConnections,
		database.DefaultMaxConnIdleTime,
		database.DefaultMaxConnLifetime)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Repositories
	matchRepo := postgres.NewMatchRepository(dbPool)
	predictionRepo := postgres.NewPredictionRepository(dbPool)
	codeRepo := postgres.NewBookingCodeRepository(dbPool)
	chatRepo := postgres.NewChatRepository(dbPool)
	userRepo := postgres.NewUserRepository(dbPool)

	// Identity resolution from gateway headers
	resolver := auth.NewResolver(userRepo)

	// Live event fan-out
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()
	broadcaster := sse.NewBroadcaster(hub)

	// Prediction generation with the model client. An empty key means the
	// generator falls back to odds-implied predictions.
	llmClient := llm.NewOpenAIClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
	predictionService := prediction.NewService(matchRepo, predictionRepo, llmClient)

	// Settlement runs off the request path on a worker pool
	workerPool := worker.NewPool(cfg.SettlementWorkers, worker.SettlementQueueSize)
	workerPool.Start()
	defer workerPool.Stop()
	settlements := worker.NewSettlementScheduler(workerPool, predictionService)

	matchService := match.NewService(matchRepo, settlements, broadcaster)
	analyticsService := analytics.NewService(predictionRepo, matchRepo)
	bookingService := bookingcode.NewService(codeRepo, matchRepo, userRepo)
	chatService := chat.NewService(chatRepo, userRepo, broadcaster)

	feed := sportsfeed.NewHTTPClient(cfg.FootballAPIKey, cfg.FootballAPIHost)
	adminService := admin.NewService(feed, matchService, matchRepo, userRepo)

	// Background presence cleanup
	presenceWorker := worker.NewPresenceCleanupWorker(chatService, cfg.PresenceCleanupInterval)
	presenceWorker.Start()
	defer presenceWorker.Stop()

	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool,
		resolver, userRepo,
		matchService, predictionService, analyticsService,
		bookingService, chatService, adminService, hub)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		log.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		log.Error("Graceful shutdown failed", "error", err)
	}
}
