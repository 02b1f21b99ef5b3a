package order

import (
	"errors"
	"strings"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

const maxItemQuantity = 99

// Item is a line on the order. Items are fixed at checkout and only feed the
// order total.
type Item struct {
	name      string
	quantity  int
	unitPrice kernel.Money
}

func NewItem(name string, quantity int, unitPrice kernel.Money) (Item, error) {
	name = strings.TrimSpace(name)

	var nameErr, quantityErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("item name")
	}
	if quantity < 1 || quantity > maxItemQuantity {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	if err := errors.Join(nameErr, quantityErr); err != nil {
		return Item{}, err
	}

	return Item{name: name, quantity: quantity, unitPrice: unitPrice}, nil
}

func (i Item) Name() string {
	return i.name
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}

// Subtotal is quantity times unit price.
func (i Item) Subtotal() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}
