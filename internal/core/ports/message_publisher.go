package ports

import (
	"context"

	"orderflow/internal/core/domain/model/outbox"
)

// MessagePublisher delivers an outbox message to the notification sink.
// Implementations must be safe to call again with a message they already
// delivered: the relay is at-least-once.
type MessagePublisher interface {
	Publish(ctx context.Context, m *outbox.Message) error
}
