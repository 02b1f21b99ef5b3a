// Package ports defines the persistence and messaging contracts of the order
// lifecycle engine. Adapters under internal/adapters implement them; use cases
// depend only on these interfaces.
package ports

import (
	"context"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order together with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update writes the mutable part of an order (status, status-updated-at,
	// failed-delivery reason) with a compare-and-swap on the version the
	// aggregate was loaded with. A lost race returns errs.StaleStateError.
	// On success the aggregate's version is bumped.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order without locking it.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate retrieves an order and holds its row lock until the
	// surrounding transaction ends. Engines without row locks fall back to
	// the version check in Update.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// NextNumber returns the next display number for a new order.
	NextNumber(ctx context.Context) (int64, error)
}
