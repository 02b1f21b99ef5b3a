package commands

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// RejectedError wraps any failure that happened after the order was read. It
// carries the order's authoritative status so that callers can refresh their
// view without another round trip.
type RejectedError struct {
	OrderID kernel.UUID
	Status  order.Status
	Err     error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("order %s is %s: %v", e.OrderID, e.Status, e.Err)
}

func (e *RejectedError) Unwrap() error {
	return e.Err
}

// orderMutation applies a change to a locked order and persists everything it
// touched through uow. It must not commit.
type orderMutation func(ctx context.Context, uow UoW, o *order.Order) error

// inOrderTx runs mutate inside one unit of work with the order row locked and
// returns the order as committed.
func inOrderTx(ctx context.Context, factory UoWFactory, orderID kernel.UUID, mutate orderMutation) (*order.Order, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	o, err := uow.OrderRepository().GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, lockFailed(ctx, factory, orderID, err)
	}
	before := o.Status()

	if err = mutate(ctx, uow, o); err == nil {
		err = uow.Commit(ctx)
	}
	if err != nil {
		_ = uow.Rollback(ctx)
		return nil, &RejectedError{
			OrderID: orderID,
			Status:  currentStatus(ctx, factory, orderID, before, err),
			Err:     err,
		}
	}

	return o, nil
}

// currentStatus is the status to report after a failed mutation. The
// transaction was rolled back, so it is the status read under the lock unless
// a concurrent writer won, in which case it is read again.
func currentStatus(ctx context.Context, factory UoWFactory, orderID kernel.UUID, before order.Status, cause error) order.Status {
	if !errors.Is(cause, errs.ErrStaleState) {
		return before
	}
	fresh, err := factory.Create().OrderRepository().Get(ctx, orderID)
	if err != nil {
		return before
	}
	return fresh.Status()
}

// lockFailed reports a failed locked read. A Busy order still exists, so its
// last committed status is read without the lock and attached.
func lockFailed(ctx context.Context, factory UoWFactory, orderID kernel.UUID, cause error) error {
	if !errors.Is(cause, errs.ErrBusy) {
		return cause
	}
	o, err := factory.Create().OrderRepository().Get(ctx, orderID)
	if err != nil {
		return cause
	}
	return &RejectedError{OrderID: orderID, Status: o.Status(), Err: cause}
}

// updateIfChanged writes the order only when the domain reported a change.
func updateIfChanged(ctx context.Context, uow UoW, o *order.Order, changed bool) error {
	if !changed {
		return nil
	}
	return uow.OrderRepository().Update(ctx, o)
}
