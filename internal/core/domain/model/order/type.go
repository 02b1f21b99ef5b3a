package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Type tells whether the customer collects the order or a rider brings it.
type Type int

const (
	UnknownType Type = iota
	Pickup
	Delivery
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		Pickup:   "Pickup",
		Delivery: "Delivery",
	}
}

func ParseType(name string) (Type, error) {
	for t, str := range getTypeStrings() {
		if str == name {
			return t, nil
		}
	}
	return UnknownType, errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%q is not a valid order type", name))
}

func (t Type) Validate() error {
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("orderType", fmt.Errorf("%d is not a valid order type", t))
	}
	return nil
}

func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
