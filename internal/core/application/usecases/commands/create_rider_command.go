package commands

import (
	"errors"
	"strings"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrCreateRiderCommandIsNotConstructed = errors.New(
	"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
)

// CreateRiderCommand adds a rider to the directory.
type CreateRiderCommand struct {
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewCreateRiderCommand(name, phone string) (CreateRiderCommand, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CreateRiderCommand{}, errs.NewValueIsRequiredError("name")
	}

	return CreateRiderCommand{
		name:  name,
		phone: strings.TrimSpace(phone),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRiderCommand) Name() string {
	return c.name
}

func (c CreateRiderCommand) Phone() string {
	return c.phone
}

func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(
		ErrCreateRiderCommandIsNotConstructed,
	)
}
