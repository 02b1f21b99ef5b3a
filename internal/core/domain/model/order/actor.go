package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Actor is the role on whose behalf a change is requested.
type Actor int

const (
	UnknownActor Actor = iota
	Staff
	Customer
	Rider
)

func getActorStrings() map[Actor]string {
	return map[Actor]string{
		Staff:    "staff",
		Customer: "customer",
		Rider:    "rider",
	}
}

// ParseActor converts a role name ("staff", "customer", "rider") to an Actor.
func ParseActor(name string) (Actor, error) {
	for actor, str := range getActorStrings() {
		if str == name {
			return actor, nil
		}
	}
	return UnknownActor, errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("%q is not a valid actor", name))
}

func (a Actor) Validate() error {
	if _, ok := getActorStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor", fmt.Errorf("%d is not a valid actor", a))
	}
	return nil
}

func (a Actor) String() string {
	if str, ok := getActorStrings()[a]; ok {
		return str
	}
	return "unknown"
}
