package repository

import (
	"context"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// Calendar persists crop calendar events
type Calendar interface {
	CreateEvent(ctx context.Context, event *domain.CropEvent) error
	GetEvent(ctx context.Context, id string) (*domain.CropEvent, error)
	// ListEvents returns a user's events ordered by date ascending
	ListEvents(ctx context.Context, userID string) ([]domain.CropEvent, error)
	// ListUpcoming returns incomplete events dated within [from, to] ordered by date
	ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.CropEvent, error)
	DeleteEvent(ctx context.Context, id string) error

	// ListDueReminders returns incomplete, un-reminded events with reminder set dated within [from, to]
	ListDueReminders(ctx context.Context, from, to time.Time) ([]domain.CropEvent, error)
	MarkReminded(ctx context.Context, id string, at time.Time) error

	BeginTx(ctx context.Context) (CalendarTx, error)
}

// CalendarTx is used for read-modify-write updates of a single event
type CalendarTx interface {
	Tx

	GetEventForUpdate(ctx context.Context, id string) (*domain.CropEvent, error)
	UpdateEvent(ctx context.Context, event *domain.CropEvent) error
}
