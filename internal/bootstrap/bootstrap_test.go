package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hetulpatel/texttosql/internal/config"
)

func loadConfig(t *testing.T, values map[string]string) config.Config {
	t.Helper()
	cfg, err := config.FromLookup(func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	})
	require.NoError(t, err)
	return cfg
}

func TestServiceRequiresAPIKey(t *testing.T) {
	_, _, err := Service(loadConfig(t, map[string]string{}))
	assert.ErrorContains(t, err, "GROQ_API_KEY")
}

func TestServiceWiresOptionalBackends(t *testing.T) {
	cfg := loadConfig(t, map[string]string{
		"GROQ_API_KEY":  "k",
		"SQLITE_PATH":   t.TempDir() + "/student.db",
		"REDIS_ADDR":    "127.0.0.1:6379",
		"KAFKA_BROKERS": "127.0.0.1:9092",
	})

	svc, cleanup, err := Service(cfg)
	require.NoError(t, err)
	require.NotNil(t, svc)
	cleanup()
}
