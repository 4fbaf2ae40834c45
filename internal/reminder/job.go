package reminder

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

// Job sends one reminder for every due calendar event. It implements worker.Job.
type Job struct {
	repo     repository.Calendar
	notifier Notifier
	leadTime time.Duration
	clock    func() time.Time

	running atomic.Bool
}

// NewJob creates a reminder job looking leadTime ahead of now
func NewJob(repo repository.Calendar, notifier Notifier, leadTime time.Duration, clock func() time.Time) *Job {
	if leadTime <= 0 {
		leadTime = DefaultLeadTime
	}
	if clock == nil {
		clock = time.Now
	}
	return &Job{
		repo:     repo,
		notifier: notifier,
		leadTime: leadTime,
		clock:    clock,
	}
}

// Process notifies every due event. Events whose notification fails stay un-reminded
// and are retried on the next run. A call made while another run is still in
// progress returns immediately.
func (j *Job) Process(ctx context.Context) error {
	log := logger.FromContext(ctx)
	if !j.running.CompareAndSwap(false, true) {
		log.Debug(LogMsgReminderBusy)
		return nil
	}
	defer j.running.Store(false)

	now := j.clock()

	events, err := j.repo.ListDueReminders(ctx, now, now.Add(j.leadTime))
	if err != nil {
		return fmt.Errorf("failed to list due reminders: %w", err)
	}

	sent, failed := 0, 0
	for _, event := range events {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err := j.notifier.Notify(ctx, event); err != nil {
			failed++
			metrics.RemindersSent.WithLabelValues(metrics.StatusFailed).Inc()
			log.Warn(LogMsgReminderFailed, "event_id", event.ID, "error", err)
			continue
		}

		if err := j.repo.MarkReminded(ctx, event.ID, now); err != nil {
			log.Error(LogMsgReminderMarkErr, "event_id", event.ID, "error", err)
		}
		sent++
		metrics.RemindersSent.WithLabelValues(metrics.StatusSent).Inc()
	}

	if len(events) > 0 {
		log.Info(LogMsgReminderRun, "sent", sent, "failed", failed)
	}
	return nil
}
