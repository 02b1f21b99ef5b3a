package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand binds a rider to the delivery of an order.
type AssignRiderCommand struct {
	orderID kernel.UUID
	riderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignRiderCommand(orderID, riderID kernel.UUID) (AssignRiderCommand, error) {
	var riderErr error
	if err := riderID.Validate(); err != nil {
		riderErr = errs.NewValueIsRequiredErrorWithCause("riderId", err)
	}
	if err := errors.Join(orderID.Validate(), riderErr); err != nil {
		return AssignRiderCommand{}, err
	}

	return AssignRiderCommand{
		orderID: orderID,
		riderID: riderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignRiderCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(
		ErrAssignRiderCommandIsNotConstructed,
	)
}
