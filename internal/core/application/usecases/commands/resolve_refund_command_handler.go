package commands

import (
	"context"
	"time"

	"orderflow/internal/core/domain/model/order"
)

type ResolveRefundCommandHandler struct {
	uowFactory UoWFactory
}

func NewResolveRefundCommandHandler(uowFactory UoWFactory) ResolveRefundCommandHandler {
	return ResolveRefundCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle resolves the order's Pending refund. Approval settles the order as
// Refund; rejection puts it back to the status it had when the customer asked
// to cancel.
func (h ResolveRefundCommandHandler) Handle(ctx context.Context, command ResolveRefundCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		r, err := uow.RefundRepository().GetPendingByOrder(ctx, o.ID())
		if err != nil {
			return err
		}

		now := time.Now()
		if command.Approve() {
			if err = r.Approve(now); err != nil {
				return err
			}
			err = o.ApproveRefund(now)
		} else {
			if err = r.Reject(now); err != nil {
				return err
			}
			err = o.RejectRefund(r.PriorStatus(), now)
		}
		if err != nil {
			return err
		}

		if err = uow.RefundRepository().Update(ctx, r); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, o)
	})
}
