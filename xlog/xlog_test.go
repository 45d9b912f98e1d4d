package xlog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type memWriteSyncer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (ws *memWriteSyncer) Write(p []byte) (int, error) {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.buf.Write(p)
}

func (ws *memWriteSyncer) Sync() error { return nil }

func (ws *memWriteSyncer) String() string {
	ws.mu.Lock()
	defer ws.mu.Unlock()
	return ws.buf.String()
}

func TestXLogger_LevelsAndFields(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger("xordTest",
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(ws),
	)

	logger.Debug("debug msg")
	logger.Info("info msg", zap.Int64("count", 3))
	logger.Warn("warn msg")
	logger.Error(errors.New("boom"), "error msg")

	out := ws.String()
	require.Contains(t, out, "debug msg")
	require.Contains(t, out, "info msg")
	require.Contains(t, out, `"count":3`)
	require.Contains(t, out, "warn msg")
	require.Contains(t, out, "boom")
	require.Contains(t, out, "xordTest")
}

func TestXLogger_IncreaseLogLevel(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger("xordTest",
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(ws),
	)
	logger.IncreaseLogLevel(zapcore.WarnLevel)
	logger.Debug("dropped")
	logger.Info("dropped too")
	logger.Warn("kept")

	out := ws.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept")
}

func TestAntsXLogger(t *testing.T) {
	ws := &memWriteSyncer{}
	logger := NewXLogger("antsPool",
		WithXLoggerLevel(LogLevelDebug),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriter(ws),
	)
	antsLogger := NewAntsXLogger(logger)
	antsLogger.Printf("worker %d exits", 7)
	require.Contains(t, ws.String(), "worker 7 exits")

	var nilLogger *AntsXLogger
	require.NotPanics(t, func() {
		nilLogger.Printf("ignored")
	})
}
