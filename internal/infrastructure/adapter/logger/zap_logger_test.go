package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/fintrack/fintrack-api/internal/domain/port/core"
)

func TestZapLogger(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obs, logs := observer.New(level)
	log := newWithCore(obs, level)

	t.Run("Filters below the configured level", func(t *testing.T) {
		log.Debug("hidden", nil)
		log.Info("Transaction created", map[string]any{"user_id": uint64(7)})

		require.Equal(t, 1, logs.Len())
		entry := logs.TakeAll()[0]
		assert.Equal(t, "Transaction created", entry.Message)
		assert.Equal(t, uint64(7), entry.ContextMap()["user_id"])
	})

	t.Run("SetLevel applies to the running logger", func(t *testing.T) {
		log.SetLevel(core.LogLevelDebug)
		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
		log.Debug("visible", nil)

		log.SetLevel(core.LogLevelError)
		log.Warn("hidden", nil)
		log.Error("Rollover failed", map[string]any{"error": errors.New("boom")})

		entries := logs.TakeAll()
		require.Len(t, entries, 2)
		assert.Equal(t, "visible", entries[0].Message)
		assert.Equal(t, "boom", entries[1].ContextMap()["error"])
	})
}

func TestParseLevel(t *testing.T) {
	testCases := []struct {
		input    string
		expected core.LogLevel
	}{
		{"debug", core.LogLevelDebug},
		{"", core.LogLevelInfo},
		{"INFO", core.LogLevelInfo},
		{"warning", core.LogLevelWarn},
		{"error", core.LogLevelError},
	}
	for _, tc := range testCases {
		level, err := ParseLevel(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, level)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNewZapLogger(t *testing.T) {
	log, err := NewZapLogger(Options{Production: true, Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelWarn, log.GetLevel())

	_, err = NewZapLogger(Options{Level: "loud"})
	assert.Error(t, err)
}
