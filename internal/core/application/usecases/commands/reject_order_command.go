package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand turns down a Pending order. proofRef, when present, is
// attached as the return proof in the same transaction.
type RejectOrderCommand struct {
	orderID  kernel.UUID
	proofRef string

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID kernel.UUID, proofRef string) (RejectOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RejectOrderCommand{}, err
	}

	return RejectOrderCommand{
		orderID:  orderID,
		proofRef: strings.TrimSpace(proofRef),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RejectOrderCommand) ProofRef() string {
	return c.proofRef
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrRejectOrderCommandIsNotConstructed,
	)
}
