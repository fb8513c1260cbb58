package worker

import (
	"context"
	"sync"
	"time"

	"github.com/betpulse/betpulse/internal/chat"
	"github.com/betpulse/betpulse/internal/logger"
)

// PresenceCleanupWorker periodically removes stale chat presence rows
type PresenceCleanupWorker struct {
	chatService chat.Service
	interval    time.Duration
	shutdown    chan struct{}
	wg          sync.WaitGroup
}

// NewPresenceCleanupWorker creates a new presence cleanup worker
func NewPresenceCleanupWorker(chatService chat.Service, interval time.Duration) *PresenceCleanupWorker {
	return &PresenceCleanupWorker{
		chatService: chatService,
		interval:    interval,
		shutdown:    make(chan struct{}),
	}
}

// Start launches the cleanup loop
func (w *PresenceCleanupWorker) Start() {
	w.wg.Add(1)
	go w.run()

	logger.FromContext(context.Background()).Info(LogMsgPresenceCleanupStarted, "interval", w.interval)
}

// Stop shuts the worker down and waits for the loop to exit
func (w *PresenceCleanupWorker) Stop() {
	close(w.shutdown)
	w.wg.Wait()

	logger.FromContext(context.Background()).Info(LogMsgPresenceCleanupStopped)
}

func (w *PresenceCleanupWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx := context.Background()
			if _, err := w.chatService.CleanupPresence(ctx); err != nil {
				logger.FromContext(ctx).Error(LogMsgPresenceCleanupFailed, "error", err)
			}
		case <-w.shutdown:
			return
		}
	}
}
