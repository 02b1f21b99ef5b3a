package commands

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/domain/model/order"
)

type AttachPaymentProofCommandHandler struct {
	uowFactory UoWFactory
}

func NewAttachPaymentProofCommandHandler(uowFactory UoWFactory) AttachPaymentProofCommandHandler {
	return AttachPaymentProofCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle marks the payment as paid. Terminal orders are refused with
// order.ErrOrderIsFinal; the URL must be absolute http(s).
func (h AttachPaymentProofCommandHandler) Handle(ctx context.Context, command AttachPaymentProofCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if o.Status().IsTerminal() {
			return fmt.Errorf("%w: order is %s", order.ErrOrderIsFinal, o.Status())
		}

		p, err := uow.PaymentRepository().GetByOrder(ctx, o.ID())
		if err != nil {
			return err
		}
		if err = p.AttachProof(command.ProofURL(), time.Now()); err != nil {
			return err
		}
		return uow.PaymentRepository().Update(ctx, p)
	})
}
