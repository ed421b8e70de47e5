package config_test

import (
	"os"
	"testing"

	"github.com/KirkDiggler/dnd-dm-state/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		// Setenv restores the original value after the test
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "STATE_BACKEND", "STATE_FILE", "REDIS_URL", "REDIS_STATE_KEY",
		"SQLITE_PATH", "MCP_SERVER_NAME", "MCP_SERVER_VERSION")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendFile, cfg.State.Backend)
	assert.Equal(t, "gamestate.json", cfg.State.File)
	assert.Equal(t, "gamestate", cfg.Redis.Key)
	assert.Equal(t, "gamestate.db", cfg.SQLite.Path)
	assert.Equal(t, "dungeon-master-state", cfg.MCP.Name)
}

func TestLoad_Redis(t *testing.T) {
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("REDIS_STATE_KEY", "campaign:phandelver")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendRedis, cfg.State.Backend)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "campaign:phandelver", cfg.Redis.Key)
}

func TestLoad_Validation(t *testing.T) {
	t.Run("redis without url", func(t *testing.T) {
		t.Setenv("STATE_BACKEND", "redis")
		unsetEnv(t, "REDIS_URL")

		_, err := config.Load()
		assert.ErrorContains(t, err, "REDIS_URL")
	})

	t.Run("unknown backend", func(t *testing.T) {
		t.Setenv("STATE_BACKEND", "floppy")

		_, err := config.Load()
		assert.ErrorContains(t, err, "floppy")
	})
}
