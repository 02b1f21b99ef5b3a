package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

type ResolveCancellationCommandHandler struct {
	uowFactory UoWFactory
}

func NewResolveCancellationCommandHandler(uowFactory UoWFactory) ResolveCancellationCommandHandler {
	return ResolveCancellationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle approves (OnDelivery -> Cancelled) or rejects the pending request.
// Either way the failed-delivery reason is cleared. Without a pending request
// order.ErrNoCancellationRequest is returned.
func (h ResolveCancellationCommandHandler) Handle(ctx context.Context, command ResolveCancellationCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		var err error
		if command.Approve() {
			err = o.ApproveCancellation(time.Now())
		} else {
			err = o.RejectCancellation()
		}
		if err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, o)
	})
}
