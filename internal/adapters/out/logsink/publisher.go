// Package logsink is the notification sink used when no broker is
// configured: every outbox message becomes one structured log line.
package logsink

import (
	"context"

	"orderflow/internal/core/domain/model/outbox"

	"go.uber.org/zap"
)

type Publisher struct {
	log *zap.SugaredLogger
}

func NewPublisher(log *zap.SugaredLogger) *Publisher {
	return &Publisher{log: log.With("component", "log_sink")}
}

func (p *Publisher) Publish(ctx context.Context, m *outbox.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.log.Infow("order_event",
		"message_id", m.ID().String(),
		"event", m.Name(),
		"order_id", m.AggregateID().String(),
		"occurred_at", m.OccurredAt(),
		"payload", string(m.Payload()),
	)
	return nil
}
