package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// nullableText stores empty strings as NULL
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// isUUID reports whether id can be bound to a UUID column
func isUUID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// wrapDBError tags driver failures with domain.ErrDatabaseError, keeping timeouts distinct
func wrapDBError(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, domain.ErrConnectionTimeout, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w: %s (%s)", op, domain.ErrDatabaseError, pgErr.Message, pgErr.Code)
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrDatabaseError, err)
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
