package pgerrs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"lock timeout", &pgconn.PgError{Code: "55P03"}, errs.ErrBusy},
		{"deadlock", fmt.Errorf("update: %w", &pgconn.PgError{Code: "40P01"}), errs.ErrBusy},
		{"deadline", context.DeadlineExceeded, errs.ErrBusy},
		{"unique violation", &pgconn.PgError{Code: "23505"}, errs.ErrStaleState},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, errs.ErrStaleState},
		{"gorm duplicated key", gorm.ErrDuplicatedKey, errs.ErrStaleState},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), errs.ErrBusy},
		{"sqlite unique", errors.New("UNIQUE constraint failed: deliveries.order_id"), errs.ErrStaleState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pgerrs.Translate(tt.err, "order", "42")

			require.ErrorIs(t, got, tt.want)
		})
	}
}

func TestTranslate_PassThrough(t *testing.T) {
	assert.NoError(t, pgerrs.Translate(nil, "order", "42"))

	other := errors.New("connection refused")
	assert.Same(t, other, pgerrs.Translate(other, "order", "42"))
}
