package commands

import (
	"context"
	"fmt"
	"time"

	"orderflow/internal/core/ports"
)

// PublishOutboxMessagesCommandHandler moves outbox rows to the notification
// sink. Delivery is at-least-once: a crash between publish and commit
// republishes the batch.
type PublishOutboxMessagesCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.MessagePublisher
}

func NewPublishOutboxMessagesCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.MessagePublisher,
) PublishOutboxMessagesCommandHandler {
	return PublishOutboxMessagesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes up to BatchSize messages in occurrence order and returns
// how many were marked published. It stops at the first publish failure so
// that notifications of one order never overtake each other; the messages
// published before the failure are still committed.
func (h PublishOutboxMessagesCommandHandler) Handle(ctx context.Context, command PublishOutboxMessagesCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, command.BatchSize())
	if err != nil {
		return 0, err
	}

	published := 0
	var publishErr error
	for _, m := range messages {
		if publishErr = h.publisher.Publish(ctx, m); publishErr != nil {
			publishErr = fmt.Errorf("publish message %s: %w", m.ID(), publishErr)
			break
		}
		m.MarkPublished(time.Now())
		if err = repo.MarkPublished(ctx, m); err != nil {
			return 0, err
		}
		published++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return published, publishErr
}
