package commands

import (
	"errors"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/guard"
)

var ErrSetRiderActiveCommandIsNotConstructed = errors.New(
	"SetRiderActiveCommand must be created via NewSetRiderActiveCommand constructor",
)

// SetRiderActiveCommand takes a rider on or off duty. Inactive riders cannot
// be assigned; existing assignments are kept.
type SetRiderActiveCommand struct {
	riderID kernel.UUID
	active  bool

	guard guard.ConstructorGuard
}

func NewSetRiderActiveCommand(riderID kernel.UUID, active bool) (SetRiderActiveCommand, error) {
	if err := riderID.Validate(); err != nil {
		return SetRiderActiveCommand{}, err
	}

	return SetRiderActiveCommand{
		riderID: riderID,
		active:  active,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetRiderActiveCommand) RiderID() kernel.UUID {
	return c.riderID
}

func (c SetRiderActiveCommand) Active() bool {
	return c.active
}

func (c SetRiderActiveCommand) Validate() error {
	return c.guard.Validate(
		ErrSetRiderActiveCommandIsNotConstructed,
	)
}
