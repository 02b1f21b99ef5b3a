package ports

import (
	"context"

	"orderflow/internal/core/domain/model/outbox"
)

// OutboxRepository stores status-change notifications until they are relayed.
type OutboxRepository interface {
	Add(ctx context.Context, m *outbox.Message) error

	// GetUnpublished returns up to limit unpublished messages in the order
	// they occurred. Inside a transaction the rows stay locked, and rows
	// locked by another relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error)

	MarkPublished(ctx context.Context, m *outbox.Message) error
}
