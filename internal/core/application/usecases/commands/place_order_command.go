package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/payment"
	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// LineInput is one requested line of a checkout.
type LineInput struct {
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// PlaceOrderCommand is a customer checkout.
type PlaceOrderCommand struct {
	customerID     kernel.UUID
	orderType      order.Type
	items          []order.Item
	additionalInfo string
	scheduledFor   *time.Time
	addressRef     string
	paymentMethod  payment.Method

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates every line before any transaction is
// opened. Line errors name the offending index.
func NewPlaceOrderCommand(
	customerID kernel.UUID,
	orderType order.Type,
	lines []LineInput,
	additionalInfo string,
	scheduledFor *time.Time,
	addressRef string,
	paymentMethod payment.Method,
) (PlaceOrderCommand, error) {
	var customerErr, linesErr error
	if err := customerID.Validate(); err != nil {
		customerErr = errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	if len(lines) == 0 {
		linesErr = errs.NewValueIsRequiredError("items")
	}
	if err := errors.Join(customerErr, orderType.Validate(), paymentMethod.Validate(), linesErr); err != nil {
		return PlaceOrderCommand{}, err
	}

	items := make([]order.Item, 0, len(lines))
	for i, line := range lines {
		item, err := order.NewItem(line.Name, line.Quantity, line.UnitPrice)
		if err != nil {
			return PlaceOrderCommand{}, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}

	return PlaceOrderCommand{
		customerID:     customerID,
		orderType:      orderType,
		items:          items,
		additionalInfo: additionalInfo,
		scheduledFor:   scheduledFor,
		addressRef:     strings.TrimSpace(addressRef),
		paymentMethod:  paymentMethod,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c PlaceOrderCommand) Type() order.Type {
	return c.orderType
}

func (c PlaceOrderCommand) Items() []order.Item {
	return c.items
}

func (c PlaceOrderCommand) AdditionalInfo() string {
	return c.additionalInfo
}

func (c PlaceOrderCommand) ScheduledFor() *time.Time {
	return c.scheduledFor
}

func (c PlaceOrderCommand) AddressRef() string {
	return c.addressRef
}

func (c PlaceOrderCommand) PaymentMethod() payment.Method {
	return c.paymentMethod
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(
		ErrPlaceOrderCommandIsNotConstructed,
	)
}
