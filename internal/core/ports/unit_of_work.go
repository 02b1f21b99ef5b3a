package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one lifecycle operation. All
// repositories it hands out share the transaction started by Begin. Commit
// also writes the StatusChanged events of every tracked order to the outbox,
// so a status change and its notification are stored atomically.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit flushes pending events and commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	DeliveryRepository() DeliveryRepository
	PaymentRepository() PaymentRepository
	RefundRepository() RefundRepository
	RiderRepository() RiderRepository
	OutboxRepository() OutboxRepository
}
