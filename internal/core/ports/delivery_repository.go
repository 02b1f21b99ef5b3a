package ports

import (
	"context"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
)

// DeliveryRepository stores the delivery record of delivery-type orders.
// There is at most one record per order.
type DeliveryRepository interface {
	Add(ctx context.Context, d *delivery.Delivery) error
	Update(ctx context.Context, d *delivery.Delivery) error

	// GetByOrder returns errs.ObjectNotFoundError when the order has no
	// delivery record yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)
}
