package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/slots-pg/dashboard-api/internal/config"
)

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, SetLevel("error"))
	assert.Equal(t, zapcore.ErrorLevel, Level())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.ErrorLevel, Level())
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { _ = SetLevel("info") })

	conf := &config.LogConfig{
		Level:      "warn",
		File:       filepath.Join(t.TempDir(), "app.log"),
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	}

	require.NoError(t, Init("production", conf))
	assert.Equal(t, zapcore.WarnLevel, Level())
	assert.False(t, zap.L().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, zap.L().Core().Enabled(zapcore.ErrorLevel))

	require.NoError(t, SetLevel("debug"))
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
}

func TestInit_InvalidLevel(t *testing.T) {
	assert.Error(t, Init("development", &config.LogConfig{Level: "nope"}))
}
