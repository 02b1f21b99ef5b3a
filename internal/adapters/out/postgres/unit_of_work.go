// Package postgres provides the GORM implementation of the Unit of Work and
// the database bootstrap (Open, Migrate).
//
// Every lifecycle operation runs in one UnitOfWork:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().GetForUpdate(ctx, id)
//	...
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Repositories report every aggregate they write back to the unit of work.
// On Commit the StatusChanged events of tracked orders are inserted into the
// outbox inside the same transaction, so a status change is never stored
// without its notification and vice versa.
//
// On PostgreSQL, Begin sets a per-transaction lock_timeout. A writer that
// waits longer than that for the order row fails with errs.BusyError instead
// of blocking the request.
package postgres

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/adapters/out/postgres/deliveryrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/outboxrepo"
	"orderflow/internal/adapters/out/postgres/paymentrepo"
	"orderflow/internal/adapters/out/postgres/pgerrs"
	"orderflow/internal/adapters/out/postgres/refundrepo"
	"orderflow/internal/adapters/out/postgres/riderrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/outbox"
	"orderflow/internal/core/ports"

	"gorm.io/gorm"
)

// DefaultLockTimeout bounds how long a transaction waits for a row lock.
const DefaultLockTimeout = 3 * time.Second

// trackedAggregate is an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// eventSource is implemented by aggregates that record status changes.
type eventSource interface {
	DomainEvents() []order.StatusChanged
	ClearDomainEvents()
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection
// pool.
type GormUnitOfWorkFactory struct {
	db          *gorm.DB
	lockTimeout time.Duration
}

// FactoryOption customises a GormUnitOfWorkFactory.
type FactoryOption func(*GormUnitOfWorkFactory)

// WithLockTimeout overrides DefaultLockTimeout. Zero disables the timeout.
func WithLockTimeout(d time.Duration) FactoryOption {
	return func(f *GormUnitOfWorkFactory) {
		f.lockTimeout = d
	}
}

func NewGormUnitOfWorkFactory(db *gorm.DB, opts ...FactoryOption) *GormUnitOfWorkFactory {
	f := &GormUnitOfWorkFactory{
		db:          db,
		lockTimeout: DefaultLockTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create produces a new UnitOfWork with its own transaction state.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:          f.db,
		lockTimeout: f.lockTimeout,
		tracked:     make(map[kernel.UUID]int),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// written in it.
type GormUnitOfWork struct {
	db          *gorm.DB
	tx          *gorm.DB
	lockTimeout time.Duration

	trackedAggregates []trackedAggregate
	tracked           map[kernel.UUID]int
}

// Begin starts the transaction. Calling it twice does not nest.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Translate(tx.Error, "transaction", nil)
	}

	if uow.lockTimeout > 0 && tx.Dialector.Name() == "postgres" {
		stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", uow.lockTimeout.Milliseconds())
		if err := tx.Exec(stmt).Error; err != nil {
			_ = tx.Rollback().Error
			return pgerrs.Translate(err, "transaction", nil)
		}
	}

	uow.tx = tx
	return nil
}

// Commit writes pending events to the outbox and commits. Events are
// cleared from the aggregates only after a successful commit. If the outbox
// insert fails the transaction stays open for the caller's Rollback.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	if err != nil {
		return pgerrs.Translate(err, "transaction", nil)
	}

	uow.clearEvents()
	return nil
}

// Rollback discards the transaction. Returns gorm.ErrInvalidTransaction when
// nothing is open, which makes it safe to defer after Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = nil
	uow.tracked = make(map[kernel.UUID]int)
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) DeliveryRepository() ports.DeliveryRepository {
	return deliveryrepo.NewGormDeliveryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) PaymentRepository() ports.PaymentRepository {
	return paymentrepo.NewGormPaymentRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RefundRepository() ports.RefundRepository {
	return refundrepo.NewGormRefundRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RiderRepository() ports.RiderRepository {
	return riderrepo.NewGormRiderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written in this unit of work. An
// aggregate written twice is tracked once; the latest instance wins.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	if i, ok := uow.tracked[id]; ok {
		uow.trackedAggregates[i].Aggregate = aggregate
		return
	}
	uow.tracked[id] = len(uow.trackedAggregates)
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	repo := outboxrepo.NewGormOutboxRepository(uow.tx)
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		for _, event := range source.DomainEvents() {
			msg, err := outbox.FromStatusChanged(event)
			if err != nil {
				return err
			}
			if err = repo.Add(ctx, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

func (uow *GormUnitOfWork) clearEvents() {
	for _, tracked := range uow.trackedAggregates {
		if source, ok := tracked.Aggregate.(eventSource); ok {
			source.ClearDomainEvents()
		}
	}
	uow.trackedAggregates = nil
	uow.tracked = make(map[kernel.UUID]int)
}
