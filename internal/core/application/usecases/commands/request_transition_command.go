package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/guard"
)

var ErrRequestTransitionCommandIsNotConstructed = errors.New(
	"RequestTransitionCommand must be created via one of its constructors",
)

// RequestTransitionCommand asks the engine to move an order along one direct
// edge of the transition table.
//
// Example:
//
//	cmd, err := NewAdvanceStatusCommand(orderID, order.Cooking)
//	o, err := handler.Handle(ctx, cmd)
type RequestTransitionCommand struct {
	orderID kernel.UUID
	target  order.Status
	actor   order.Actor

	guard guard.ConstructorGuard
}

// NewRequestTransitionCommand builds the generic command.
func NewRequestTransitionCommand(orderID kernel.UUID, target order.Status, actor order.Actor) (RequestTransitionCommand, error) {
	if err := errors.Join(orderID.Validate(), target.Validate(), actor.Validate()); err != nil {
		return RequestTransitionCommand{}, err
	}

	return RequestTransitionCommand{
		orderID: orderID,
		target:  target,
		actor:   actor,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// NewAcceptOrderCommand moves a Pending order into the kitchen queue.
func NewAcceptOrderCommand(orderID kernel.UUID) (RequestTransitionCommand, error) {
	return NewRequestTransitionCommand(orderID, order.Queueing, order.Staff)
}

// NewAdvanceStatusCommand is the generic staff transition.
func NewAdvanceStatusCommand(orderID kernel.UUID, target order.Status) (RequestTransitionCommand, error) {
	return NewRequestTransitionCommand(orderID, target, order.Staff)
}

// NewNotifyReadyForPickupCommand tells a pickup customer the order is at the
// counter.
func NewNotifyReadyForPickupCommand(orderID kernel.UUID) (RequestTransitionCommand, error) {
	return NewRequestTransitionCommand(orderID, order.ClaimOrder, order.Staff)
}

func (c RequestTransitionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestTransitionCommand) Target() order.Status {
	return c.target
}

func (c RequestTransitionCommand) Actor() order.Actor {
	return c.actor
}

func (c RequestTransitionCommand) Validate() error {
	return c.guard.Validate(
		ErrRequestTransitionCommandIsNotConstructed,
	)
}
