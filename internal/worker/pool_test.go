package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/betpulse/betpulse/internal/domain"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(_ context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(2, 10)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(100 * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != 2 {
		t.Errorf("Expected 2 jobs executed, got %d", executed)
	}
}

type fakeSettler struct {
	mu      sync.Mutex
	settled []string
}

func (f *fakeSettler) Generate(_ context.Context, _ string) ([]domain.Prediction, error) {
	return nil, nil
}

func (f *fakeSettler) GetForMatch(_ context.Context, _ string) ([]domain.Prediction, error) {
	return nil, nil
}

func (f *fakeSettler) GetTodays(_ context.Context) ([]domain.MatchPredictions, error) {
	return nil, nil
}

func (f *fakeSettler) GetTop(_ context.Context, _ int) ([]domain.EnrichedPrediction, error) {
	return nil, nil
}

func (f *fakeSettler) SettleMatch(_ context.Context, matchID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settled = append(f.settled, matchID)
	return nil
}

func TestSettlementScheduler_RunsSettlement(t *testing.T) {
	settler := &fakeSettler{}
	pool := NewPool(1, SettlementQueueSize)
	pool.Start()

	scheduler := NewSettlementScheduler(pool, settler)
	scheduler.ScheduleSettlement("m1")

	time.Sleep(100 * time.Millisecond)
	pool.Stop()

	settler.mu.Lock()
	defer settler.mu.Unlock()
	assert.Equal(t, []string{"m1"}, settler.settled)
}

func TestSettlementScheduler_DropsWhenQueueFull(t *testing.T) {
	settler := &fakeSettler{}
	// A pool that is never started: jobs stay queued.
	pool := NewPool(1, 1)
	scheduler := NewSettlementScheduler(pool, settler)

	scheduler.ScheduleSettlement("m1")
	scheduler.ScheduleSettlement("m2") // queue full, dropped without blocking

	assert.Len(t, pool.jobQueue, 1)
}
