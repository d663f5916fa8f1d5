package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/phrazzld/tasks-api/internal/store"
)

// SQLSTATE codes the task store translates.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
	stringTooLongCode       = "22001"
)

// sqlStateMapping describes how one SQLSTATE surfaces to callers.
type sqlStateMapping struct {
	sentinel error
	label    string
	// detail picks the identifying field of the error, if any.
	detail func(*pgconn.PgError) string
}

func constraintName(e *pgconn.PgError) string { return e.ConstraintName }
func columnName(e *pgconn.PgError) string     { return e.ColumnName }

var sqlStateMappings = map[string]sqlStateMapping{
	uniqueViolationCode:     {sentinel: store.ErrDuplicate},
	foreignKeyViolationCode: {sentinel: store.ErrInvalidEntity, label: "foreign key violation", detail: constraintName},
	checkViolationCode:      {sentinel: store.ErrInvalidEntity, label: "check constraint violation", detail: constraintName},
	notNullViolationCode:    {sentinel: store.ErrInvalidEntity, label: "not null violation", detail: columnName},
	stringTooLongCode:       {sentinel: store.ErrInvalidEntity, label: "value too long"},
}

// MapError translates driver errors into the store sentinels so callers can
// use errors.Is without importing pgx. The driver error stays in the chain.
// Errors with no mapping are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	m, ok := sqlStateMappings[pgErr.Code]
	if !ok {
		return err
	}

	switch {
	case m.label == "":
		return fmt.Errorf("%w: %w", m.sentinel, err)
	case m.detail == nil:
		return fmt.Errorf("%w: %s: %w", m.sentinel, m.label, err)
	default:
		return fmt.Errorf("%w: %s (%s): %w", m.sentinel, m.label, m.detail(pgErr), err)
	}
}

// SQLState returns the SQLSTATE code carried anywhere in err's chain, or ""
// if err did not come from the server.
func SQLState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsConstraintViolation reports whether err is an integrity constraint
// violation (SQLSTATE class 23) or an over-length value.
func IsConstraintViolation(err error) bool {
	code := SQLState(err)
	return len(code) == 5 && (code[:2] == "23" || code == stringTooLongCode)
}

// rowsAffected reads the affected row count of an UPDATE or DELETE.
// Unlike lookups, zero is not an error here: ownership-scoped statements
// legitimately match nothing.
func rowsAffected(result sql.Result) (int64, error) {
	if result == nil {
		return 0, fmt.Errorf("nil result provided to rowsAffected")
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n, nil
}
