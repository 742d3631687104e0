package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/lca-catalog/pkg/e"
	"github.com/DRSN-tech/lca-catalog/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "lca")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "catalog")

	for _, key := range []string{
		"APP_ENV", "HTTP_PORT", "CONTENT_HOST_DRIVER", "CONTENT_HOST_DEFAULT_ORIGIN", "CONTENT_HOST_TIMEOUT",
		"CLASSIFICATION_WORKERS", "CLASSIFICATION_MAX_RETRIES", "KAFKA_BROKERS", "READ_TIMEOUT", "WRITE_TIMEOUT",
		"POSTGRES_MAX_CONNS", "POSTGRES_MIGRATIONS_DIR",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "8080", c.Http.Port)
	assert.Equal(t, ContentHostHTTP, c.ContentHost.Driver)
	assert.Equal(t, "http://localhost:3000", c.ContentHost.DefaultOrigin)
	assert.Equal(t, 30*time.Second, c.ContentHost.Timeout)
	assert.Equal(t, 8, c.Classification.Workers)
	assert.Equal(t, uint64(1), c.Classification.MaxRetries)
	assert.Equal(t, []string{"localhost:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 3*time.Second, c.Redis.Timeout)
	assert.NotEmpty(t, c.Scratch.Root)
	assert.Equal(t, int32(10), c.Db.MaxConns)
	assert.Equal(t, "db/migrations", c.Db.MigrationsDir)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("CONTENT_HOST_DRIVER", "MinIO")
	t.Setenv("CONTENT_HOST_DEFAULT_ORIGIN", "https://cdn.example.com/")
	t.Setenv("KAFKA_BROKERS", "k1:9092, ,k2:9092")
	t.Setenv("CLASSIFICATION_WORKERS", "2")
	t.Setenv("WRITE_TIMEOUT", "7s")

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, ContentHostMinIO, c.ContentHost.Driver)
	assert.Equal(t, "https://cdn.example.com", c.ContentHost.DefaultOrigin)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, c.Kafka.Brokers)
	assert.Equal(t, 2, c.Classification.Workers)
	assert.Equal(t, 7*time.Second, c.Redis.Timeout)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing postgres user", env: map[string]string{"POSTGRES_USER": ""}},
		{name: "unknown content host driver", env: map[string]string{"CONTENT_HOST_DRIVER": "ftp"}},
		{name: "negative pool size", env: map[string]string{"POSTGRES_MAX_CONNS": "-1"}},
		{name: "zero workers", env: map[string]string{"CLASSIFICATION_WORKERS": "0"}},
		{name: "bad duration", env: map[string]string{"CONTENT_HOST_TIMEOUT": "soon"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(logger.NewNop())
			require.Error(t, err)
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "x")

	_, err := parseIntEnv("SOME_INT", 3)
	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)

	v, err := parseIntEnv("UNSET_INT_FOR_TEST", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}
