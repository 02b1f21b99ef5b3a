// Package rabbitmq relays outbox messages to a durable topic exchange. The
// routing key is order.status.<new status>, so consumers bind to the
// transitions they care about, e.g. "order.status.ready" or "order.status.#".
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"orderflow/internal/core/domain/model/outbox"

	amqp "github.com/rabbitmq/amqp091-go"
)

const routingKeyPrefix = "order.status."

type Config struct {
	URL      string
	Exchange string
}

var ErrNotConfirmed = errors.New("broker did not confirm the message")

// Confirmation is the broker's pending ack for one publishing.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// Channel publishes on a channel in confirm mode.
type Channel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error)
}

type confirmChannel struct {
	ch *amqp.Channel
}

func (c confirmChannel) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errors.New("channel is not in confirm mode")
	}
	return dc, nil
}

type Publisher struct {
	ch       Channel
	exchange string
}

// Connection owns the AMQP connection and channel opened by Dial.
type Connection struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

// Dial opens a channel in confirm mode and declares the exchange.
func Dial(cfg Config) (*Connection, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.Confirm(false); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("enable publisher confirms: %w", err)
	}

	if err = ch.ExchangeDeclare(cfg.Exchange, "topic", true, false, false, false, nil); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", cfg.Exchange, err)
	}

	return &Connection{conn: conn, ch: ch}, nil
}

func (c *Connection) Channel() Channel {
	return confirmChannel{ch: c.ch}
}

func (c *Connection) Close() error {
	if err := c.ch.Close(); err != nil {
		_ = c.conn.Close()
		return err
	}
	return c.conn.Close()
}

func NewPublisher(ch Channel, exchange string) *Publisher {
	return &Publisher{ch: ch, exchange: exchange}
}

func (p *Publisher) Publish(ctx context.Context, m *outbox.Message) error {
	key, err := routingKey(m)
	if err != nil {
		return err
	}

	confirm, err := p.ch.Publish(ctx, p.exchange, key, amqp.Publishing{
		DeliveryMode: amqp.Persistent,
		ContentType:  "application/json",
		MessageId:    m.ID().String(),
		Type:         m.Name(),
		Timestamp:    m.OccurredAt(),
		Body:         m.Payload(),
	})
	if err != nil {
		return fmt.Errorf("publish to exchange %s: %w", p.exchange, err)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return fmt.Errorf("wait for confirm of %s: %w", m.ID(), err)
	}
	if !acked {
		return fmt.Errorf("%w: %s", ErrNotConfirmed, m.ID())
	}
	return nil
}

func routingKey(m *outbox.Message) (string, error) {
	var payload outbox.StatusChangedPayload
	if err := json.Unmarshal(m.Payload(), &payload); err != nil {
		return "", fmt.Errorf("decode message %s: %w", m.ID(), err)
	}
	if payload.To == "" {
		return "", fmt.Errorf("message %s has no target status", m.ID())
	}
	return routingKeyPrefix + strings.ToLower(payload.To), nil
}
