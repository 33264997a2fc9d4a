package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorCode classifies persistence failures for callers that need to react to them.
type ErrorCode string

const (
	CodeNotFound           ErrorCode = "not_found"
	CodeConflict           ErrorCode = "conflict"
	CodePreconditionFailed ErrorCode = "precondition_failed"
	CodeRetryable          ErrorCode = "retryable"
	CodeInternal           ErrorCode = "internal"
)

type Error struct {
	Code  ErrorCode
	Op    string
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause == nil {
		return fmt.Sprintf("%s (%s)", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: %v (%s)", e.Op, e.Cause, e.Code)
}

func (e *Error) Unwrap() error { return e.Cause }

func wrap(code ErrorCode, op string, err error) error {
	return &Error{Code: code, Op: strings.TrimSpace(op), Cause: err}
}

// IsCode reports whether err carries the given code anywhere in its chain.
func IsCode(err error, code ErrorCode) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == code
}

// MapError classifies driver and ORM errors. Errors already classified pass through, and errors
// that are not storage failures (validation, caller-defined) are returned unchanged by callers
// that check for them first.
func MapError(op string, err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return wrap(CodeNotFound, op, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return wrap(CodeRetryable, op, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch strings.TrimSpace(pgErr.Code) {
		case "23505":
			return wrap(CodeConflict, op, err) // unique_violation
		case "23503":
			return wrap(CodePreconditionFailed, op, err) // foreign_key_violation
		case "40001", "40P01", "55P03":
			return wrap(CodeRetryable, op, err) // serialization/deadlock/lock_not_available
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "unique constraint"), strings.Contains(msg, "duplicate key"):
		return wrap(CodeConflict, op, err)
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "deadlock"):
		return wrap(CodeRetryable, op, err)
	default:
		return wrap(CodeInternal, op, err)
	}
}
