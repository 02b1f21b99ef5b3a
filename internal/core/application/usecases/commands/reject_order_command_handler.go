package commands

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the optional return proof and applies Pending -> Rejected.
// Without a proof on record the order stays Pending and
// order.ErrMissingReturnProof is returned.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, command RejectOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		if o.Status() == order.Rejected {
			return nil
		}

		attached := false
		p, err := uow.PaymentRepository().GetByOrder(ctx, o.ID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
		case err != nil:
			return err
		default:
			if command.ProofRef() != "" && o.Status() == order.Pending {
				if err = p.AttachReturnProof(command.ProofRef()); err != nil {
					return err
				}
				if err = uow.PaymentRepository().Update(ctx, p); err != nil {
					return err
				}
			}
			attached = p.HasReturnProof()
		}

		changed, err := o.Transition(order.TransitionRequest{
			Target:              order.Rejected,
			Actor:               order.Staff,
			At:                  time.Now(),
			ReturnProofAttached: attached,
		})
		if err != nil {
			return err
		}
		return updateIfChanged(ctx, uow, o, changed)
	})
}
