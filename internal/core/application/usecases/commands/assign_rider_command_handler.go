package commands

import (
	"context"
	"errors"
	"fmt"

	"orderflow/internal/core/domain/model/delivery"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// AssignRiderCommandHandler attaches riders under the assignable-status
// guard. The order status never changes.
type AssignRiderCommandHandler struct {
	uowFactory UoWFactory
	defaultFee kernel.Money
}

// NewAssignRiderCommandHandler takes the fee used when the first rider
// assignment has to create the delivery record.
func NewAssignRiderCommandHandler(uowFactory UoWFactory, defaultFee kernel.Money) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		defaultFee: defaultFee,
	}
}

// Handle checks, in order: the order is a delivery order, its status is
// assignable, the rider exists and the rider is active.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if o.Type() != order.Delivery {
			return fmt.Errorf("%w: %s orders have no rider", order.ErrOrderNotDeliveryType, o.Type())
		}
		if err := o.Status().ValidateAssign(); err != nil {
			return err
		}

		r, err := uow.RiderRepository().Get(ctx, command.RiderID())
		if err != nil {
			return err
		}
		if err = r.EnsureAvailable(); err != nil {
			return err
		}

		d, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			d, err = delivery.NewDelivery(kernel.NewUUID(), o.ID(), h.defaultFee, "")
			if err != nil {
				return err
			}
			if err = d.AssignRider(r.ID()); err != nil {
				return err
			}
			return uow.DeliveryRepository().Add(ctx, d)
		case err != nil:
			return err
		}

		if err = d.AssignRider(r.ID()); err != nil {
			return err
		}
		return uow.DeliveryRepository().Update(ctx, d)
	})
}
