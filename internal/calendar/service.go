package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/crops"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

// Service defines the crop calendar interface
type Service interface {
	CreateEvent(ctx context.Context, event *domain.CropEvent) (*domain.CropEvent, error)
	GetEvent(ctx context.Context, id string) (*domain.CropEvent, error)
	ListEvents(ctx context.Context, userID string) ([]domain.CropEvent, error)
	UpcomingEvents(ctx context.Context, days int) ([]domain.CropEvent, error)
	UpdateEvent(ctx context.Context, id string, update domain.CropEventUpdate) (*domain.CropEvent, error)
	DeleteEvent(ctx context.Context, id string) error
}

type service struct {
	repo  repository.Calendar
	clock func() time.Time
}

// NewService creates a new calendar service
func NewService(repo repository.Calendar, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{repo: repo, clock: clock}
}

// CreateEvent validates and stores a new event; an empty event type becomes "other"
func (s *service) CreateEvent(ctx context.Context, event *domain.CropEvent) (*domain.CropEvent, error) {
	if event.EventType == "" {
		event.EventType = domain.EventTypeOther
	}
	event.CropType = crops.Normalize(event.CropType)
	event.Notes = strings.TrimSpace(event.Notes)

	if err := validateEvent(event); err != nil {
		return nil, err
	}

	now := s.clock()
	event.ID = uuid.NewString()
	event.Completed = false
	event.RemindedAt = nil
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.repo.CreateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	metrics.CalendarEventsCreated.WithLabelValues(string(event.EventType)).Inc()
	logger.FromContext(ctx).Info("Calendar event created",
		"event_id", event.ID,
		"crop", event.CropType,
		"event_type", event.EventType,
		"date", event.Date)

	return event, nil
}

// GetEvent returns a single event by id
func (s *service) GetEvent(ctx context.Context, id string) (*domain.CropEvent, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	return s.repo.GetEvent(ctx, id)
}

// ListEvents returns a user's events in date order. An empty userID lists anonymous events.
func (s *service) ListEvents(ctx context.Context, userID string) ([]domain.CropEvent, error) {
	events, err := s.repo.ListEvents(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// UpcomingEvents returns incomplete events dated in the next days days
func (s *service) UpcomingEvents(ctx context.Context, days int) ([]domain.CropEvent, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	if days > MaxUpcomingDays {
		return nil, fmt.Errorf("%w: %d days exceeds %d", domain.ErrInvalidEventRange, days, MaxUpcomingDays)
	}

	now := s.clock()
	events, err := s.repo.ListUpcoming(ctx, now, now.AddDate(0, 0, days))
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming events: %w", err)
	}
	return events, nil
}

// UpdateEvent applies a partial update under a row lock.
// Moving an event to a new date re-arms its reminder.
func (s *service) UpdateEvent(ctx context.Context, id string, update domain.CropEventUpdate) (*domain.CropEvent, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer repository.SafeRollback(ctx, tx)

	event, err := tx.GetEventForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}

	applyUpdate(event, update)
	if err := validateEvent(event); err != nil {
		return nil, err
	}
	event.UpdatedAt = s.clock()

	if err := tx.UpdateEvent(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return event, nil
}

// DeleteEvent removes an event by id
func (s *service) DeleteEvent(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: event id is required", domain.ErrInvalidInput)
	}
	if err := s.repo.DeleteEvent(ctx, id); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Calendar event deleted", "event_id", id)
	return nil
}

func applyUpdate(event *domain.CropEvent, update domain.CropEventUpdate) {
	if update.CropType != nil {
		event.CropType = crops.Normalize(*update.CropType)
	}
	if update.EventType != nil {
		event.EventType = *update.EventType
	}
	if update.Date != nil && !update.Date.Equal(event.Date) {
		event.Date = *update.Date
		event.RemindedAt = nil
	}
	if update.Notes != nil {
		event.Notes = strings.TrimSpace(*update.Notes)
	}
	if update.Completed != nil {
		event.Completed = *update.Completed
	}
	if update.Reminder != nil {
		event.Reminder = *update.Reminder
	}
}

func validateEvent(event *domain.CropEvent) error {
	if event.CropType == "" {
		return fmt.Errorf("%w: crop type is required", domain.ErrInvalidInput)
	}
	if !event.EventType.IsValid() {
		return fmt.Errorf("%w: %s", domain.ErrInvalidEventType, event.EventType)
	}
	if event.Date.IsZero() {
		return fmt.Errorf("%w: date is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(event.Notes) > MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", domain.ErrInvalidInput, MaxNotesLength)
	}
	return nil
}
