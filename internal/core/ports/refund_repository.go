package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"
)

// RefundRepository stores refund requests. Resolved refunds are kept as
// history; only one Pending refund exists per order.
type RefundRepository interface {
	Add(ctx context.Context, r *refund.Refund) error

	// Update persists the resolution of a Pending refund.
	Update(ctx context.Context, r *refund.Refund) error

	// GetPendingByOrder returns the open refund of an order, or
	// errs.ObjectNotFoundError.
	GetPendingByOrder(ctx context.Context, orderID kernel.UUID) (*refund.Refund, error)
}
