package commands

import (
	"context"
	"fmt"

	"orderflow/internal/core/domain/model/order"
)

type AttachReturnProofCommandHandler struct {
	uowFactory UoWFactory
}

func NewAttachReturnProofCommandHandler(uowFactory UoWFactory) AttachReturnProofCommandHandler {
	return AttachReturnProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the return proof of a Pending order. Other statuses are
// refused with order.ErrOrderIsNotPending.
func (h AttachReturnProofCommandHandler) Handle(ctx context.Context, command AttachReturnProofCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if o.Status() != order.Pending {
			return fmt.Errorf("%w: order is %s", order.ErrOrderIsNotPending, o.Status())
		}

		p, err := uow.PaymentRepository().GetByOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		if err = p.AttachReturnProof(command.ProofRef()); err != nil {
			return err
		}
		return uow.PaymentRepository().Update(ctx, p)
	})
}
