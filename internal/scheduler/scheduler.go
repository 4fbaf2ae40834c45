package scheduler

import (
	"sync"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/worker"
)

// Scheduler enqueues jobs into a worker pool at fixed intervals
type Scheduler struct {
	workerPool *worker.Pool
	quit       chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// New creates a new scheduler
func New(pool *worker.Pool) *Scheduler {
	return &Scheduler{
		workerPool: pool,
		quit:       make(chan struct{}),
	}
}

// Schedule registers a job to run every interval, starting after the first tick.
// A tick is skipped when the pool queue is full so a slow job never stalls the scheduler.
func (s *Scheduler) Schedule(interval time.Duration, job worker.Job) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				s.workerPool.TryEnqueue(job)
			case <-s.quit:
				return
			}
		}
	}()
}

// ScheduleNow is Schedule with an immediate first run
func (s *Scheduler) ScheduleNow(interval time.Duration, job worker.Job) {
	s.workerPool.TryEnqueue(job)
	s.Schedule(interval, job)
}

// Stop stops all scheduled jobs
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.quit)
		s.wg.Wait()
	})
}
