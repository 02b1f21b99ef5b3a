// Package pgerrs maps driver errors to the domain error kinds in
// orderflow/internal/pkg/errs.
package pgerrs

import (
	"context"
	"errors"
	"strings"

	"orderflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes.
const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
	codeQueryCanceled        = "57014"
)

// Translate classifies err for the record identified by resource and id.
//
//   - lock wait timeouts, deadlocks and expired deadlines become errs.BusyError
//   - unique violations and serialization failures become errs.StaleStateError,
//     since they mean a concurrent writer got there first
//   - anything else is returned unchanged
func Translate(err error, resource string, id any) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeLockNotAvailable, codeDeadlockDetected, codeQueryCanceled:
			return errs.NewBusyErrorWithCause(resource, err)
		case codeUniqueViolation, codeSerializationFailure:
			return errs.NewStaleStateErrorWithCause(resource, id, err)
		}
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return errs.NewBusyErrorWithCause(resource, err)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return errs.NewStaleStateErrorWithCause(resource, id, err)
	}

	// The pure-Go SQLite driver reports contention only through the message.
	msg := err.Error()
	switch {
	case strings.Contains(msg, "database is locked"), strings.Contains(msg, "SQLITE_BUSY"):
		return errs.NewBusyErrorWithCause(resource, err)
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return errs.NewStaleStateErrorWithCause(resource, id, err)
	}

	return err
}
