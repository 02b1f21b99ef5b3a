package refundrepo_test

import (
	"testing"
	"time"

	postgres_adapter "orderflow/internal/adapters/out/postgres"
	"orderflow/internal/adapters/out/postgres/refundrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

func newRepository(t *testing.T) *refundrepo.GormRefundRepository {
	t.Helper()

	db, err := postgres_adapter.Open(postgres_adapter.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
	})

	return refundrepo.NewGormRefundRepository(db, noopTracker{})
}

func newRefund(t *testing.T, orderID kernel.UUID) *refund.Refund {
	t.Helper()

	payout, err := refund.NewPayoutNumber("09181112222", "0918 111 2222")
	require.NoError(t, err)
	r, err := refund.NewRefund(kernel.NewUUID(), orderID, "ordered twice", payout, order.Pending, time.Now())
	require.NoError(t, err)
	return r
}

func TestGormRefundRepository_PendingLifecycle(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)
	orderID := kernel.NewUUID()
	r := newRefund(t, orderID)

	require.NoError(t, repo.Add(ctx, r))

	pending, err := repo.GetPendingByOrder(ctx, orderID)
	require.NoError(t, err)
	assert.True(t, pending.ID().IsEqual(r.ID()))
	assert.Equal(t, "09181112222", pending.Payout().String())
	assert.Equal(t, order.Pending, pending.PriorStatus())

	require.NoError(t, pending.Reject(time.Now()))
	require.NoError(t, repo.Update(ctx, pending))

	_, err = repo.GetPendingByOrder(ctx, orderID)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	// a resolved refund does not block a new request
	require.NoError(t, repo.Add(ctx, newRefund(t, orderID)))
}

func TestGormRefundRepository_SecondPendingRefund_ReturnsStaleState(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)
	orderID := kernel.NewUUID()
	require.NoError(t, repo.Add(ctx, newRefund(t, orderID)))

	err := repo.Add(ctx, newRefund(t, orderID))

	require.ErrorIs(t, err, errs.ErrStaleState)
}

func TestGormRefundRepository_ResolveTwice_ReturnsStaleState(t *testing.T) {
	ctx := t.Context()
	repo := newRepository(t)
	orderID := kernel.NewUUID()
	require.NoError(t, repo.Add(ctx, newRefund(t, orderID)))

	first, err := repo.GetPendingByOrder(ctx, orderID)
	require.NoError(t, err)
	second, err := repo.GetPendingByOrder(ctx, orderID)
	require.NoError(t, err)

	require.NoError(t, first.Approve(time.Now()))
	require.NoError(t, repo.Update(ctx, first))

	require.NoError(t, second.Reject(time.Now()))
	require.ErrorIs(t, repo.Update(ctx, second), errs.ErrStaleState)
}
