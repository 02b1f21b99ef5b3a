// Package outbox models the notification records written in the same
// transaction as the state change they describe and relayed to the
// notification sink afterwards.
package outbox

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"
)

var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage constructor")

// Message is an immutable event envelope. Only its published-at stamp changes.
type Message struct {
	id          kernel.UUID
	name        string
	aggregateID kernel.UUID
	payload     []byte
	occurredAt  time.Time
	publishedAt *time.Time

	isConstructed bool
}

func NewMessage(id kernel.UUID, name string, aggregateID kernel.UUID, payload []byte, occurredAt time.Time) (*Message, error) {
	var nameErr, payloadErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if len(payload) == 0 {
		payloadErr = errs.NewValueIsRequiredError("payload")
	}
	if err := errors.Join(id.Validate(), aggregateID.Validate(), nameErr, payloadErr); err != nil {
		return nil, err
	}

	return &Message{
		id:            id,
		name:          name,
		aggregateID:   aggregateID,
		payload:       payload,
		occurredAt:    occurredAt.UTC(),
		isConstructed: true,
	}, nil
}

func RestoreMessage(
	id kernel.UUID,
	name string,
	aggregateID kernel.UUID,
	payload []byte,
	occurredAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, name, aggregateID, payload, occurredAt)
	if err != nil {
		return nil, err
	}
	m.publishedAt = publishedAt
	return m, nil
}

// StatusChangedPayload is the wire form of order.StatusChanged.
type StatusChangedPayload struct {
	EventID     string    `json:"eventId"`
	OrderID     string    `json:"orderId"`
	OrderNumber int64     `json:"orderNumber"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Actor       string    `json:"actor"`
	OccurredAt  time.Time `json:"timestamp"`
}

// FromStatusChanged wraps an order transition event.
func FromStatusChanged(e order.StatusChanged) (*Message, error) {
	payload, err := json.Marshal(StatusChangedPayload{
		EventID:     e.ID.String(),
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber,
		From:        e.From.String(),
		To:          e.To.String(),
		Actor:       e.Actor.String(),
		OccurredAt:  e.OccurredAt.UTC(),
	})
	if err != nil {
		return nil, err
	}
	return NewMessage(e.ID, e.EventName(), e.OrderID, payload, e.OccurredAt)
}

func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

func (m *Message) ID() kernel.UUID {
	return m.id
}

func (m *Message) Name() string {
	return m.name
}

func (m *Message) AggregateID() kernel.UUID {
	return m.aggregateID
}

func (m *Message) Payload() []byte {
	return m.payload
}

func (m *Message) OccurredAt() time.Time {
	return m.occurredAt
}

func (m *Message) PublishedAt() *time.Time {
	return m.publishedAt
}

func (m *Message) IsPublished() bool {
	return m.publishedAt != nil
}

// MarkPublished stamps the first successful publish.
func (m *Message) MarkPublished(at time.Time) {
	if m.publishedAt != nil {
		return
	}
	published := at.UTC()
	m.publishedAt = &published
}
