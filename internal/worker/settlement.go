package worker

import (
	"context"

	"github.com/betpulse/betpulse/internal/logger"
	"github.com/betpulse/betpulse/internal/prediction"
)

// settlementJob grades all pending predictions for one finished match
type settlementJob struct {
	matchID     string
	predictions prediction.Service
}

// Process runs the settlement pass
func (j *settlementJob) Process(ctx context.Context) error {
	if err := j.predictions.SettleMatch(ctx, j.matchID); err != nil {
		logger.FromContext(ctx).Error(LogMsgSettlementFailed, "match_id", j.matchID, "error", err)
		return err
	}
	return nil
}

// SettlementScheduler enqueues settlement jobs onto a worker pool.
// It satisfies the match service's scheduler dependency.
type SettlementScheduler struct {
	pool        *Pool
	predictions prediction.Service
}

// NewSettlementScheduler creates a scheduler over a running pool
func NewSettlementScheduler(pool *Pool, predictions prediction.Service) *SettlementScheduler {
	return &SettlementScheduler{
		pool:        pool,
		predictions: predictions,
	}
}

// ScheduleSettlement enqueues grading for a finished match. A full
// queue drops the job; the next result recording or poll retries it.
func (s *SettlementScheduler) ScheduleSettlement(matchID string) {
	log := logger.FromContext(context.Background())

	job := &settlementJob{matchID: matchID, predictions: s.predictions}
	if !s.pool.TryEnqueue(job) {
		log.Warn(LogMsgSettlementQueueFull, "match_id", matchID)
		return
	}
	log.Debug(LogMsgSettlementEnqueued, "match_id", matchID)
}
