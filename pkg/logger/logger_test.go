package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger_Debug(t *testing.T) {
	log, err := NewLogger(&LoggerConfig{Debug: true})
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_Production(t *testing.T) {
	log, err := NewLogger(&LoggerConfig{Debug: false})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	// Nil config behaves like production.
	log, err = NewLogger(nil)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}
