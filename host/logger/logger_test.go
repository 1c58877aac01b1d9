package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	lvl, ok := ParseLogLevel(" WARN ")
	require.True(t, ok)
	assert.Equal(t, zapcore.WarnLevel, lvl)

	lvl, ok = ParseLogLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, zapcore.InfoLevel, lvl)
}

func TestNewWritesConsoleLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, zapcore.InfoLevel)

	l.Debug("hidden")
	l.Infow("sample", "celsius", 23.5)
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, `sample {"celsius": 23.5}`)
}
