package commands

import (
	"context"
	"errors"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

type RemoveRiderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRemoveRiderCommandHandler(uowFactory UoWFactory) RemoveRiderCommandHandler {
	return RemoveRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle detaches the rider. The status guard is evaluated on the row read
// under the lock, so a concurrent dispatch cannot slip in between the check
// and the write.
func (h RemoveRiderCommandHandler) Handle(ctx context.Context, command RemoveRiderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if err := o.Status().ValidateRemove(); err != nil {
			return err
		}

		d, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
		if errors.Is(err, errs.ErrObjectNotFound) {
			return delivery.ErrNoDeliveryRecord
		}
		if err != nil {
			return err
		}

		d.RemoveRider()
		return uow.DeliveryRepository().Update(ctx, d)
	})
}
