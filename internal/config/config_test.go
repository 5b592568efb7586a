package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr())
	assert.Equal(t, StorageMemory, cfg.Session.Storage)
	assert.Equal(t, 500*time.Millisecond, cfg.Providers.FetchDelay)
	assert.Equal(t, 10*time.Second, cfg.Providers.LocationTick)
	assert.False(t, cfg.Kafka.Enabled())
	assert.False(t, cfg.Auth.Required)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("LOCATION_TICK", "2s")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("SESSION_STORAGE", "REDIS")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 2*time.Second, cfg.Providers.LocationTick)
	assert.True(t, cfg.Auth.Required)
	assert.Equal(t, StorageRedis, cfg.Session.Storage)
}

func TestValidate(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		t.Setenv("APP_JWT_SECRET", "")
		_, err := Load()
		assert.ErrorContains(t, err, "APP_JWT_SECRET")
	})

	t.Run("postgres without url", func(t *testing.T) {
		t.Setenv("APP_JWT_SECRET", "secret")
		t.Setenv("SESSION_STORAGE", "postgres")
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("unknown storage", func(t *testing.T) {
		t.Setenv("APP_JWT_SECRET", "secret")
		t.Setenv("SESSION_STORAGE", "etcd")
		_, err := Load()
		assert.ErrorContains(t, err, "etcd")
	})
}
