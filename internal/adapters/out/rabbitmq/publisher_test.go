package rabbitmq

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/outbox"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeConfirmation struct {
	acked bool
	err   error
}

func (c fakeConfirmation) WaitContext(context.Context) (bool, error) {
	return c.acked, c.err
}

type fakeChannel struct {
	sent    []published
	err     error
	nacked  bool
	waitErr error
}

func (f *fakeChannel) Publish(_ context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg})
	return fakeConfirmation{acked: !f.nacked, err: f.waitErr}, nil
}

func newMessage(t *testing.T, payload string) *outbox.Message {
	t.Helper()
	m, err := outbox.NewMessage(kernel.NewUUID(), "order.status_changed", kernel.NewUUID(), []byte(payload), time.Now())
	require.NoError(t, err)
	return m
}

func TestPublisher_Publish_RoutesByTargetStatus(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "orders")
	m := newMessage(t, `{"from":"Ready","to":"OnDelivery"}`)

	require.NoError(t, p.Publish(t.Context(), m))
	require.Len(t, ch.sent, 1)
	assert.Equal(t, "orders", ch.sent[0].exchange)
	assert.Equal(t, "order.status.ondelivery", ch.sent[0].key)
	assert.Equal(t, m.ID().String(), ch.sent[0].msg.MessageId)
	assert.Equal(t, amqp.Persistent, ch.sent[0].msg.DeliveryMode)
	assert.Equal(t, m.Payload(), ch.sent[0].msg.Body)
}

func TestPublisher_Publish_BadPayload(t *testing.T) {
	ch := &fakeChannel{}
	p := NewPublisher(ch, "orders")

	require.Error(t, p.Publish(t.Context(), newMessage(t, `not json`)))
	require.Error(t, p.Publish(t.Context(), newMessage(t, `{"from":"Pending"}`)))
	assert.Empty(t, ch.sent)
}

func TestPublisher_Publish_ChannelError(t *testing.T) {
	p := NewPublisher(&fakeChannel{err: amqp.ErrClosed}, "orders")

	err := p.Publish(t.Context(), newMessage(t, `{"to":"Completed"}`))
	require.ErrorIs(t, err, amqp.ErrClosed)
}

func TestPublisher_Publish_Nacked(t *testing.T) {
	ch := &fakeChannel{nacked: true}
	p := NewPublisher(ch, "orders")

	err := p.Publish(t.Context(), newMessage(t, `{"to":"Queueing"}`))
	require.ErrorIs(t, err, ErrNotConfirmed)
	assert.Len(t, ch.sent, 1)
}

func TestPublisher_Publish_ConfirmWaitError(t *testing.T) {
	p := NewPublisher(&fakeChannel{waitErr: context.DeadlineExceeded}, "orders")

	err := p.Publish(t.Context(), newMessage(t, `{"to":"Queueing"}`))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
