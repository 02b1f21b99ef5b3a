package commands

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/refund"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrRequestCustomerCancellationCommandIsNotConstructed = errors.New(
	"RequestCustomerCancellationCommand must be created via NewRequestCustomerCancellationCommand constructor",
)

// RequestCustomerCancellationCommand is a customer's request to cancel an
// order that the kitchen has not started, refunding the money to a mobile
// wallet number.
type RequestCustomerCancellationCommand struct {
	orderID kernel.UUID
	reason  string
	payout  refund.PayoutNumber

	guard guard.ConstructorGuard
}

// NewRequestCustomerCancellationCommand validates the payout number and its
// confirmation before any transaction is opened. Field errors name
// "payoutNumber" or "payoutNumberConfirm".
func NewRequestCustomerCancellationCommand(
	orderID kernel.UUID,
	reason, payoutNumber, payoutNumberConfirm string,
) (RequestCustomerCancellationCommand, error) {
	if err := orderID.Validate(); err != nil {
		return RequestCustomerCancellationCommand{}, err
	}

	payout, err := refund.NewPayoutNumber(payoutNumber, payoutNumberConfirm)
	if err != nil {
		return RequestCustomerCancellationCommand{}, err
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return RequestCustomerCancellationCommand{}, errs.NewValueIsRequiredError("reason")
	}

	return RequestCustomerCancellationCommand{
		orderID: orderID,
		reason:  reason,
		payout:  payout,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RequestCustomerCancellationCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestCustomerCancellationCommand) Reason() string {
	return c.reason
}

func (c RequestCustomerCancellationCommand) Payout() refund.PayoutNumber {
	return c.payout
}

func (c RequestCustomerCancellationCommand) Validate() error {
	return c.guard.Validate(
		ErrRequestCustomerCancellationCommandIsNotConstructed,
	)
}
