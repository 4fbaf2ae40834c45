package bootstrap

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/config"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/reminder"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/scheduler"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/worker"
)

// Reminders is the running reminder pipeline
type Reminders struct {
	Pool      *worker.Pool
	Scheduler *scheduler.Scheduler
	Discord   *discordgo.Session // nil when reminders go to the log
}

// StartReminders picks a notifier from config, starts the worker pool and
// schedules the reminder job with an immediate first run.
func StartReminders(cfg *config.Config, calendarRepo repository.Calendar, names reminder.CropNames) (*Reminders, error) {
	r := &Reminders{}

	var notifier reminder.Notifier
	if cfg.DiscordEnabled() {
		session, err := reminder.NewDiscordSession(cfg.DiscordToken)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenDiscord, err)
		}
		r.Discord = session
		notifier = reminder.NewDiscordNotifier(session, cfg.DiscordReminderChannelID, names)
		slog.Info(LogMsgRemindersDiscord, "channel_id", cfg.DiscordReminderChannelID)
	} else {
		notifier = reminder.NewLogNotifier()
		slog.Info(LogMsgRemindersLog)
	}

	r.Pool = worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	r.Pool.Start()

	r.Scheduler = scheduler.New(r.Pool)
	r.Scheduler.ScheduleNow(cfg.ReminderInterval, reminder.NewJob(calendarRepo, notifier, cfg.ReminderLeadTime, time.Now))

	slog.Info(LogMsgRemindersStarted,
		"interval", cfg.ReminderInterval,
		"lead_time", cfg.ReminderLeadTime,
		"workers", cfg.WorkerCount)

	return r, nil
}
