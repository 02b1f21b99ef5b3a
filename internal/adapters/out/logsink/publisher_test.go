package logsink_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/logsink"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/outbox"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestPublisher_Publish_LogsMessage(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := logsink.NewPublisher(zap.New(core).Sugar())

	orderID := kernel.NewUUID()
	m, err := outbox.NewMessage(kernel.NewUUID(), "order.status_changed", orderID, []byte(`{"to":"Queueing"}`), time.Now())
	require.NoError(t, err)

	require.NoError(t, p.Publish(t.Context(), m))

	entries := logs.FilterMessage("order_event").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, orderID.String(), fields["order_id"])
	assert.Equal(t, "log_sink", fields["component"])
	assert.Equal(t, `{"to":"Queueing"}`, fields["payload"])
}

func TestPublisher_Publish_CancelledContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	p := logsink.NewPublisher(zap.New(core).Sugar())

	m, err := outbox.NewMessage(kernel.NewUUID(), "order.status_changed", kernel.NewUUID(), []byte(`{}`), time.Now())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	require.ErrorIs(t, p.Publish(ctx, m), context.Canceled)
	assert.Zero(t, logs.Len())
}
