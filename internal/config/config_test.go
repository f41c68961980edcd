package config

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GAME21_SEED", "")
	t.Setenv("GAME21_LOG_LEVEL", "")
	t.Setenv("GAME21_SESSION_IDLE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, log.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdle)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("GAME21_SEED", "42")
	t.Setenv("GAME21_LOG_LEVEL", "debug")
	t.Setenv("GAME21_SESSION_IDLE", "5m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, int64(42), cfg.ShuffleSeed())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel)
	assert.Equal(t, 5*time.Minute, cfg.SessionIdle)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"seed not a number", "GAME21_SEED", "abc"},
		{"unknown level", "GAME21_LOG_LEVEL", "loud"},
		{"bad duration", "GAME21_SESSION_IDLE", "soon"},
		{"negative duration", "GAME21_SESSION_IDLE", "-1m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("GAME21_SEED", "")
			t.Setenv("GAME21_LOG_LEVEL", "")
			t.Setenv("GAME21_SESSION_IDLE", "")
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
