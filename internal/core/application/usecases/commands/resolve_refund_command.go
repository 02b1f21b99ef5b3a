package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrResolveRefundCommandIsNotConstructed = errors.New(
	"ResolveRefundCommand must be created via NewApproveRefundCommand or NewRejectRefundCommand",
)

// ResolveRefundCommand is the staff decision on a customer's refund request.
type ResolveRefundCommand struct {
	orderID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

func NewApproveRefundCommand(orderID kernel.UUID) (ResolveRefundCommand, error) {
	return newResolveRefundCommand(orderID, true)
}

func NewRejectRefundCommand(orderID kernel.UUID) (ResolveRefundCommand, error) {
	return newResolveRefundCommand(orderID, false)
}

func newResolveRefundCommand(orderID kernel.UUID, approve bool) (ResolveRefundCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResolveRefundCommand{}, err
	}

	return ResolveRefundCommand{
		orderID: orderID,
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveRefundCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResolveRefundCommand) Approve() bool {
	return c.approve
}

func (c ResolveRefundCommand) Validate() error {
	return c.guard.Validate(
		ErrResolveRefundCommandIsNotConstructed,
	)
}
