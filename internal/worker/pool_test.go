package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/testing/leaktest"
)

type testJob struct {
	executed *int32
	err      error
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return j.err
}

type panicJob struct{}

func (panicJob) Process(ctx context.Context) error {
	panic("boom")
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	close(j.started)
	<-ctx.Done()
	return ctx.Err()
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == TestExpectedJobCount
	}, TestWorkerProcessWaitTime*time.Millisecond*10, time.Millisecond)

	pool.Stop()
}

func TestPool_SurvivesFailingJobs(t *testing.T) {
	var executed int32
	pool := NewPool(1, TestQueueSize)
	pool.Start()
	defer pool.Stop()

	pool.Enqueue(panicJob{})
	pool.Enqueue(&testJob{executed: &executed, err: errors.New("failed")})
	pool.Enqueue(&testJob{executed: &executed})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&executed) == 2
	}, time.Second, time.Millisecond)
}

func TestPool_TryEnqueueFullQueue(t *testing.T) {
	var executed int32
	pool := NewPool(1, 1)

	// Not started, so the single slot stays occupied
	assert.True(t, pool.TryEnqueue(&testJob{executed: &executed}))
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))

	pool.Stop()
	assert.False(t, pool.TryEnqueue(&testJob{executed: &executed}))
}

func TestPool_StopCancelsRunningJob(t *testing.T) {
	pool := NewPool(1, 1)
	pool.Start()

	job := &blockingJob{started: make(chan struct{})}
	pool.Enqueue(job)
	<-job.started

	done := make(chan struct{})
	go func() {
		pool.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return")
	}

	// Idempotent
	pool.Stop()
}

func TestPool_StopReleasesWorkers(t *testing.T) {
	leaktest.CheckNoGoroutineLeak(t, func() {
		pool := NewPool(4, TestQueueSize)
		pool.Start()
		pool.Stop()
	})
}
