package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/refund"
)

type RequestCustomerCancellationCommandHandler struct {
	uowFactory UoWFactory
}

func NewRequestCustomerCancellationCommandHandler(uowFactory UoWFactory) RequestCustomerCancellationCommandHandler {
	return RequestCustomerCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle opens a Pending refund and moves the order to Refunding in one
// transaction. An order that is already Refunding is returned unchanged and
// no second refund is created. Orders past Queueing are refused with
// errs.ErrInvalidTransition.
func (h RequestCustomerCancellationCommandHandler) Handle(
	ctx context.Context,
	command RequestCustomerCancellationCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		prior := o.Status()
		now := time.Now()

		changed, err := o.RequestRefund(now)
		if err != nil || !changed {
			return err
		}

		r, err := refund.NewRefund(kernel.NewUUID(), o.ID(), command.Reason(), command.Payout(), prior, now)
		if err != nil {
			return err
		}
		if err = uow.RefundRepository().Add(ctx, r); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, o)
	})
}
