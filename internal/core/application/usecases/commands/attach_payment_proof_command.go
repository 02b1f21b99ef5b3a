package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrAttachPaymentProofCommandIsNotConstructed = errors.New(
	"AttachPaymentProofCommand must be created via NewAttachPaymentProofCommand constructor",
)

// AttachPaymentProofCommand records the customer's proof of payment, usually
// a screenshot URL of an e-wallet transfer.
type AttachPaymentProofCommand struct {
	orderID  kernel.UUID
	proofURL string

	guard guard.ConstructorGuard
}

func NewAttachPaymentProofCommand(orderID kernel.UUID, proofURL string) (AttachPaymentProofCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachPaymentProofCommand{}, err
	}
	proofURL = strings.TrimSpace(proofURL)
	if proofURL == "" {
		return AttachPaymentProofCommand{}, errs.NewValueIsRequiredError("proofUrl")
	}

	return AttachPaymentProofCommand{
		orderID:  orderID,
		proofURL: proofURL,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c AttachPaymentProofCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AttachPaymentProofCommand) ProofURL() string {
	return c.proofURL
}

func (c AttachPaymentProofCommand) Validate() error {
	return c.guard.Validate(
		ErrAttachPaymentProofCommandIsNotConstructed,
	)
}
