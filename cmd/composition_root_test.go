package cmd

import (
	"testing"

	"orderflow/internal/adapters/out/logsink"
	"orderflow/internal/adapters/out/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRoot(t *testing.T, configs Config) (CompositionRoot, error) {
	t.Helper()

	db, err := postgres.Open(postgres.DBConfig{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	return NewCompositionRoot(configs, db, zap.NewNop().Sugar())
}

func TestNewCompositionRoot_RejectsBadFee(t *testing.T) {
	_, err := newTestRoot(t, Config{Engine: EngineConfig{DefaultDeliveryFee: "free"}})
	require.Error(t, err)
}

func TestCreateMessagePublisher(t *testing.T) {
	root, err := newTestRoot(t, Config{
		Engine: EngineConfig{DefaultDeliveryFee: "49.00"},
		Sink:   SinkConfig{Kind: "log"},
	})
	require.NoError(t, err)

	publisher, closeFn, err := root.CreateMessagePublisher(t.Context())
	require.NoError(t, err)
	assert.IsType(t, &logsink.Publisher{}, publisher)
	assert.NoError(t, closeFn())

	root.configs.Sink.Kind = "carrier-pigeon"
	_, _, err = root.CreateMessagePublisher(t.Context())
	require.Error(t, err)
}

func TestCreateServerAndJobs(t *testing.T) {
	root, err := newTestRoot(t, Config{
		Engine: EngineConfig{DefaultDeliveryFee: "49.00"},
		Outbox: OutboxConfig{BatchSize: 10},
	})
	require.NoError(t, err)

	assert.NotNil(t, root.CreateServer())
	assert.NotNil(t, root.CreateOutboxRelayJob(logsink.NewPublisher(zap.NewNop().Sugar())))
}
