package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"intury/internal/game"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Document.DueDays)
	assert.Equal(t, 50, cfg.Document.AdvancePercent)
	assert.Equal(t, "Bankovní převod", cfg.Document.PaymentMethod)
	assert.Equal(t, game.DefaultSettings(), cfg.GetGameSettings())
	assert.Equal(t, "warn", cfg.GetLoggerConfig().Level)
	assert.Equal(t, "stderr", cfg.GetLoggerConfig().Output)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DOC_DUE_DAYS", "30")
	t.Setenv("DOC_ADVANCE_PERCENT", "25")
	t.Setenv("GAME_COUNTDOWN", "5s")
	t.Setenv("GAME_TICK", "20ms")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	opts := cfg.GetDocumentOptions()
	assert.Equal(t, 30, opts.DueDays)
	assert.Equal(t, 25, opts.AdvancePercent)
	assert.NotNil(t, opts.Now)

	s := cfg.GetGameSettings()
	assert.Equal(t, 5*time.Second, s.Countdown)
	assert.Equal(t, 20*time.Millisecond, s.TickInterval)
	assert.Equal(t, 4900*time.Millisecond, s.Target())
	assert.Equal(t, "json", cfg.GetLoggerConfig().Format)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"DOC_ADVANCE_PERCENT", "0"},
		{"DOC_ADVANCE_PERCENT", "101"},
		{"DOC_DUE_DAYS", "-1"},
		{"GAME_TICK", "0s"},
		{"GAME_TARGET_OFFSET", "11s"},
		{"GAME_COUNTDOWN", "ten seconds"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
