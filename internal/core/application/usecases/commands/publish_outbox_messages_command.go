package commands

import (
	"errors"

	"orderflow/internal/pkg/errs"
	"orderflow/internal/pkg/guard"
)

var ErrPublishOutboxMessagesCommandIsNotConstructed = errors.New(
	"PublishOutboxMessagesCommand must be created via NewPublishOutboxMessagesCommand constructor",
)

// PublishOutboxMessagesCommand relays one batch of pending notifications.
type PublishOutboxMessagesCommand struct {
	batchSize int

	guard guard.ConstructorGuard
}

func NewPublishOutboxMessagesCommand(batchSize int) (PublishOutboxMessagesCommand, error) {
	if batchSize <= 0 || batchSize > 1000 {
		return PublishOutboxMessagesCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, 1000)
	}

	return PublishOutboxMessagesCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c PublishOutboxMessagesCommand) BatchSize() int {
	return c.batchSize
}

func (c PublishOutboxMessagesCommand) Validate() error {
	return c.guard.Validate(
		ErrPublishOutboxMessagesCommandIsNotConstructed,
	)
}
