package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T, lvl zapcore.Level) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(lvl)
	previous := log
	Set(New(zap.New(core)))
	t.Cleanup(func() { Set(previous) })
	return logs
}

func TestInit(t *testing.T) {
	previous := log
	defer Set(previous)

	Init()
	assert.NotNil(t, L())
}

func TestInfo(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Info("test message", "booking_id", "b-1")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "test message", entry.Message)
	assert.Equal(t, "b-1", entry.ContextMap()["booking_id"])
}

func TestError(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Error("test error")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestDebugFilteredAtInfo(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Debug("hidden")
	Debugf("hidden %d", 1)

	assert.Equal(t, 0, logs.Len())
}

func TestDebug(t *testing.T) {
	logs := observe(t, zapcore.DebugLevel)

	Debug("test debug")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "test debug", logs.All()[0].Message)
}

func TestInfof(t *testing.T) {
	logs := observe(t, zapcore.InfoLevel)

	Infof("test %s", "message")
	Errorf("failed %d times", 3)

	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "test message", logs.All()[0].Message)
	assert.Equal(t, "failed 3 times", logs.All()[1].Message)
}

func TestSetLevel(t *testing.T) {
	defer level.SetLevel(zapcore.InfoLevel)

	SetLevel("debug")
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	SetLevel("WARN")
	assert.Equal(t, zapcore.WarnLevel, level.Level())

	SetLevel("nonsense")
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}
