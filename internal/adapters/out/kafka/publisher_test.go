package kafka

import (
	"errors"
	"testing"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/outbox"

	"github.com/Shopify/sarama"
	"github.com/Shopify/sarama/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMessage(t *testing.T, payload string) *outbox.Message {
	t.Helper()
	m, err := outbox.NewMessage(kernel.NewUUID(), "order.status_changed", kernel.NewUUID(), []byte(payload), time.Now())
	require.NoError(t, err)
	return m
}

func TestPublisher_Publish_SendsPayload(t *testing.T) {
	producer := mocks.NewSyncProducer(t, newSaramaConfig(Config{}))
	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(val []byte) error {
		if string(val) != `{"to":"Cooking"}` {
			return errors.New("unexpected payload " + string(val))
		}
		return nil
	})

	p := NewPublisher(producer, "order-events")
	require.NoError(t, p.Publish(t.Context(), newMessage(t, `{"to":"Cooking"}`)))
	require.NoError(t, p.Close())
}

func TestPublisher_Publish_BrokerFailure(t *testing.T) {
	producer := mocks.NewSyncProducer(t, newSaramaConfig(Config{}))
	producer.ExpectSendMessageAndFail(sarama.ErrNotLeaderForPartition)

	p := NewPublisher(producer, "order-events")
	err := p.Publish(t.Context(), newMessage(t, `{}`))
	require.ErrorIs(t, err, sarama.ErrNotLeaderForPartition)
	assert.Contains(t, err.Error(), "order-events")
	require.NoError(t, p.Close())
}

func TestNewSaramaConfig(t *testing.T) {
	sc := newSaramaConfig(Config{ClientID: "orderflow", Timeout: 3 * time.Second})

	assert.Equal(t, "orderflow", sc.ClientID)
	assert.True(t, sc.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, sc.Producer.RequiredAcks)
	assert.Equal(t, 3*time.Second, sc.Producer.Timeout)
	require.NoError(t, sc.Validate())
}
