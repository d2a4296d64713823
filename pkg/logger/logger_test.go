package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	appConfig "github.com/teamforge/teamforge/internal/config"
)

func TestNewWithConfig(t *testing.T) {
	t.Run("production json logger", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		})

		require.NoError(t, err)
		require.NotNil(t, log)
		assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("console logger with debug level", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "debug",
			Format: "console",
			Output: "stderr",
		})

		require.NoError(t, err)
		require.NotNil(t, log)
		assert.True(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log, err := NewWithConfig(appConfig.LoggerConfig{
			Level:  "chatty",
			Format: "json",
			Output: "stdout",
		})

		require.NoError(t, err)
		require.NotNil(t, log)
	})
}

func TestNew(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "json")

	log, err := New()

	require.NoError(t, err)
	require.NotNil(t, log)
}
