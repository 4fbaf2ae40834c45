package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

const (
	eventColumns = `event_id, user_id, crop_type, event_type, event_date, notes,
		completed, reminder, reminded_at, created_at, updated_at`

	insertEventSQL = `
		INSERT INTO crop_events (` + eventColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	getEventSQL          = `SELECT ` + eventColumns + ` FROM crop_events WHERE event_id = $1`
	getEventForUpdateSQL = getEventSQL + ` FOR UPDATE`

	listEventsByUserSQL = `SELECT ` + eventColumns + ` FROM crop_events
		WHERE user_id = $1 ORDER BY event_date ASC`
	listAnonymousEventsSQL = `SELECT ` + eventColumns + ` FROM crop_events
		WHERE user_id IS NULL ORDER BY event_date ASC`

	listUpcomingSQL = `SELECT ` + eventColumns + ` FROM crop_events
		WHERE NOT completed AND event_date BETWEEN $1 AND $2
		ORDER BY event_date ASC`

	listDueRemindersSQL = `SELECT ` + eventColumns + ` FROM crop_events
		WHERE reminder AND NOT completed AND reminded_at IS NULL
		  AND event_date BETWEEN $1 AND $2
		ORDER BY event_date ASC`

	updateEventSQL = `
		UPDATE crop_events
		SET crop_type = $2, event_type = $3, event_date = $4, notes = $5,
		    completed = $6, reminder = $7, reminded_at = $8, updated_at = $9
		WHERE event_id = $1`

	markRemindedSQL = `UPDATE crop_events SET reminded_at = $2 WHERE event_id = $1`
	deleteEventSQL  = `DELETE FROM crop_events WHERE event_id = $1`
)

// CalendarRepository implements repository.Calendar
type CalendarRepository struct {
	db *pgxpool.Pool
}

// NewCalendarRepository creates a new CalendarRepository
func NewCalendarRepository(db *pgxpool.Pool) *CalendarRepository {
	return &CalendarRepository{db: db}
}

// CreateEvent inserts a new event
func (r *CalendarRepository) CreateEvent(ctx context.Context, e *domain.CropEvent) error {
	_, err := r.db.Exec(ctx, insertEventSQL,
		e.ID, nullableText(e.UserID), e.CropType, string(e.EventType), e.Date, e.Notes,
		e.Completed, e.Reminder, e.RemindedAt, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return wrapDBError("failed to create event", err)
	}
	return nil
}

// GetEvent returns ErrEventNotFound for unknown or malformed ids
func (r *CalendarRepository) GetEvent(ctx context.Context, id string) (*domain.CropEvent, error) {
	return getEvent(ctx, r.db, getEventSQL, id)
}

// ListEvents returns a user's events ordered by date; an empty userID lists events with no owner
func (r *CalendarRepository) ListEvents(ctx context.Context, userID string) ([]domain.CropEvent, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if userID == "" {
		rows, err = r.db.Query(ctx, listAnonymousEventsSQL)
	} else {
		rows, err = r.db.Query(ctx, listEventsByUserSQL, userID)
	}
	if err != nil {
		return nil, wrapDBError("failed to list events", err)
	}
	return collectEvents(rows)
}

// ListUpcoming returns incomplete events dated within [from, to]
func (r *CalendarRepository) ListUpcoming(ctx context.Context, from, to time.Time) ([]domain.CropEvent, error) {
	rows, err := r.db.Query(ctx, listUpcomingSQL, from, to)
	if err != nil {
		return nil, wrapDBError("failed to list upcoming events", err)
	}
	return collectEvents(rows)
}

// ListDueReminders returns events that still need a reminder within [from, to]
func (r *CalendarRepository) ListDueReminders(ctx context.Context, from, to time.Time) ([]domain.CropEvent, error) {
	rows, err := r.db.Query(ctx, listDueRemindersSQL, from, to)
	if err != nil {
		return nil, wrapDBError("failed to list due reminders", err)
	}
	return collectEvents(rows)
}

// MarkReminded records that a reminder was delivered
func (r *CalendarRepository) MarkReminded(ctx context.Context, id string, at time.Time) error {
	if !isUUID(id) {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	tag, err := r.db.Exec(ctx, markRemindedSQL, id, at)
	if err != nil {
		return wrapDBError("failed to mark event reminded", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	return nil
}

// DeleteEvent removes an event
func (r *CalendarRepository) DeleteEvent(ctx context.Context, id string) error {
	if !isUUID(id) {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	tag, err := r.db.Exec(ctx, deleteEventSQL, id)
	if err != nil {
		return wrapDBError("failed to delete event", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	return nil
}

// BeginTx starts a transaction for read-modify-write updates
func (r *CalendarRepository) BeginTx(ctx context.Context) (repository.CalendarTx, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToBeginTx, err)
	}
	return &calendarTx{tx: tx}, nil
}

type calendarTx struct {
	tx pgx.Tx
}

func (t *calendarTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *calendarTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

// GetEventForUpdate locks the event row until the transaction ends
func (t *calendarTx) GetEventForUpdate(ctx context.Context, id string) (*domain.CropEvent, error) {
	return getEvent(ctx, t.tx, getEventForUpdateSQL, id)
}

func (t *calendarTx) UpdateEvent(ctx context.Context, e *domain.CropEvent) error {
	tag, err := t.tx.Exec(ctx, updateEventSQL,
		e.ID, e.CropType, string(e.EventType), e.Date, e.Notes,
		e.Completed, e.Reminder, e.RemindedAt, e.UpdatedAt)
	if err != nil {
		return wrapDBError("failed to update event", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, e.ID)
	}
	return nil
}

// querier is satisfied by both the pool and a transaction
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func getEvent(ctx context.Context, q querier, sql, id string) (*domain.CropEvent, error) {
	if !isUUID(id) {
		return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	event, err := scanEvent(q.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
		}
		return nil, wrapDBError("failed to get event", err)
	}
	return &event, nil
}

func scanEvent(row pgx.Row) (domain.CropEvent, error) {
	var (
		e         domain.CropEvent
		userID    pgtype.Text
		eventType string
	)
	err := row.Scan(&e.ID, &userID, &e.CropType, &eventType, &e.Date, &e.Notes,
		&e.Completed, &e.Reminder, &e.RemindedAt, &e.CreatedAt, &e.UpdatedAt)
	e.UserID = userID.String
	e.EventType = domain.EventType(eventType)
	return e, err
}

func collectEvents(rows pgx.Rows) ([]domain.CropEvent, error) {
	events, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CropEvent, error) {
		return scanEvent(row)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRows, err)
	}
	return events, nil
}
