package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRemoveRiderCommandIsNotConstructed = errors.New(
	"RemoveRiderCommand must be created via NewRemoveRiderCommand constructor",
)

type RemoveRiderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveRiderCommand(orderID kernel.UUID) (RemoveRiderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RemoveRiderCommand{}, err
	}

	return RemoveRiderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveRiderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveRiderCommand) Validate() error {
	return c.guard.Validate(
		ErrRemoveRiderCommandIsNotConstructed,
	)
}
