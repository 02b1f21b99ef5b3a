package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, defaultSQLiteDSN, cfg.DB.ConnectionString())
	assert.Equal(t, 3*time.Second, cfg.DB.LockTimeout)
	assert.Equal(t, "49.00", cfg.Engine.DefaultDeliveryFee)
	assert.Equal(t, "* * * * * *", cfg.Outbox.Schedule)
	assert.Equal(t, 100, cfg.Outbox.BatchSize)
	assert.Equal(t, "log", cfg.Sink.Kind)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Sink.Kafka.Brokers)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	file := []byte("db:\n  driver: postgres\n  host: db.internal\n  name: kitchen\noutbox:\n  batch_size: 25\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), file, 0o600))

	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("SINK_KIND", "kafka")
	t.Setenv("SINK_KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("ENGINE_REQUEST_TIMEOUT", "2s")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Outbox.BatchSize)
	assert.Equal(t, "kafka", cfg.Sink.Kind)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Sink.Kafka.Brokers)
	assert.Equal(t, 2*time.Second, cfg.Engine.RequestTimeout)
	assert.Equal(t,
		"host=db.internal port=5432 user=postgres password=s3cret dbname=kitchen sslmode=disable",
		cfg.DB.ConnectionString(),
	)
}

func TestDBConfig_ExplicitDSNWins(t *testing.T) {
	cfg := DBConfig{Driver: "postgres", DSN: "postgres://u:p@h/db", Host: "ignored"}
	assert.Equal(t, "postgres://u:p@h/db", cfg.ToDBConfig().DSN)
}
