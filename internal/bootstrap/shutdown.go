package bootstrap

import (
	"context"
	"log/slog"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/database"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown
type ShutdownComponents struct {
	Server    *server.Server
	Reminders *Reminders
	DBPool    database.Pool
}

// GracefulShutdown stops components in dependency order:
//  1. HTTP server (stop accepting new requests)
//  2. Reminder scheduler, then the worker pool it feeds
//  3. Discord session
//  4. Database pool
//
// Errors are logged and do not stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if r := components.Reminders; r != nil {
		slog.Info(LogMsgShuttingDownReminders)
		if r.Scheduler != nil {
			r.Scheduler.Stop()
		}
		if r.Pool != nil {
			r.Pool.Stop()
		}
		if r.Discord != nil {
			if err := r.Discord.Close(); err != nil {
				slog.Error(LogMsgDiscordCloseFailed, "error", err)
			}
		}
	}

	if components.DBPool != nil {
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
