package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"gitlab.com/nunet/nvctl/internal/config"
)

func TestNewProduction(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)

	l := New("power")

	assert.NotNil(t, l.Logger)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewDebug(t *testing.T) {
	config.ResetConfig()
	t.Cleanup(config.ResetConfig)
	t.Setenv("NVCTL_DEBUG", "1")

	l := New("prime")

	assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
}
