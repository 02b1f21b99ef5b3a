package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAttachReturnProofCommandIsNotConstructed = errors.New(
	"AttachReturnProofCommand must be created via NewAttachReturnProofCommand constructor",
)

// AttachReturnProofCommand records evidence that the customer's payment was
// sent back, which unlocks rejecting a Pending order.
type AttachReturnProofCommand struct {
	orderID  kernel.UUID
	proofRef string

	guard guard.ConstructorGuard
}

func NewAttachReturnProofCommand(orderID kernel.UUID, proofRef string) (AttachReturnProofCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachReturnProofCommand{}, err
	}
	proofRef = strings.TrimSpace(proofRef)
	if proofRef == "" {
		return AttachReturnProofCommand{}, errs.NewValueIsRequiredError("proofRef")
	}

	return AttachReturnProofCommand{
		orderID:  orderID,
		proofRef: proofRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AttachReturnProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AttachReturnProofCommand) ProofRef() string {
	return c.proofRef
}

func (c AttachReturnProofCommand) Validate() error {
	return c.guard.Validate(
		ErrAttachReturnProofCommandIsNotConstructed,
	)
}
