package commands

import (
	"context"
	"errors"
	"time"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

// RequestTransitionCommandHandler applies direct edges of the transition
// table. Workflow edges (refunds, cancellations) have their own commands.
type RequestTransitionCommandHandler struct {
	uowFactory UoWFactory
}

func NewRequestTransitionCommandHandler(uowFactory UoWFactory) RequestTransitionCommandHandler {
	return RequestTransitionCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition and returns the order as committed.
// Requesting the current status succeeds without writing anything.
//
// Edge guards that need other records are resolved here:
//   - Pending -> Rejected reads the payment's return proof
//   - Ready -> OnDelivery stamps dispatched-at on the delivery record, if any
func (h RequestTransitionCommandHandler) Handle(ctx context.Context, command RequestTransitionCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	return inOrderTx(ctx, h.uowFactory, command.OrderID(), func(ctx context.Context, uow UoW, o *order.Order) error {
		now := time.Now()
		req := order.TransitionRequest{
			Target: command.Target(),
			Actor:  command.Actor(),
			At:     now,
		}

		if command.Target() == order.Rejected && o.Status() != order.Rejected {
			attached, err := returnProofAttached(ctx, uow, o)
			if err != nil {
				return err
			}
			req.ReturnProofAttached = attached
		}

		changed, err := o.Transition(req)
		if err != nil {
			return err
		}
		if changed && o.Status() == order.OnDelivery {
			if err = markDispatched(ctx, uow, o, now); err != nil {
				return err
			}
		}

		return updateIfChanged(ctx, uow, o, changed)
	})
}

func returnProofAttached(ctx context.Context, uow UoW, o *order.Order) (bool, error) {
	p, err := uow.PaymentRepository().GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return p.HasReturnProof(), nil
}

func markDispatched(ctx context.Context, uow UoW, o *order.Order, at time.Time) error {
	d, err := uow.DeliveryRepository().GetByOrder(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	d.MarkDispatched(at)
	return uow.DeliveryRepository().Update(ctx, d)
}
