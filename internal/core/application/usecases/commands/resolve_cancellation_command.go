package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrResolveCancellationCommandIsNotConstructed = errors.New(
	"ResolveCancellationCommand must be created via NewApproveCancellationCommand or NewRejectCancellationCommand",
)

// ResolveCancellationCommand is the staff decision on a rider's
// failed-delivery report.
type ResolveCancellationCommand struct {
	orderID kernel.UUID
	approve bool

	guard guard.ConstructorGuard
}

// NewApproveCancellationCommand cancels the order.
func NewApproveCancellationCommand(orderID kernel.UUID) (ResolveCancellationCommand, error) {
	return newResolveCancellationCommand(orderID, true)
}

// NewRejectCancellationCommand dismisses the report; delivery continues.
func NewRejectCancellationCommand(orderID kernel.UUID) (ResolveCancellationCommand, error) {
	return newResolveCancellationCommand(orderID, false)
}

func newResolveCancellationCommand(orderID kernel.UUID, approve bool) (ResolveCancellationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ResolveCancellationCommand{}, err
	}

	return ResolveCancellationCommand{
		orderID: orderID,
		approve: approve,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ResolveCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ResolveCancellationCommand) Approve() bool {
	return c.approve
}

func (c ResolveCancellationCommand) Validate() error {
	return c.guard.Validate(
		ErrResolveCancellationCommandIsNotConstructed,
	)
}
