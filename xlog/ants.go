package xlog

import (
	"go.uber.org/zap/zapcore"
)

// AntsXLogger adapts XLogger to the ants pool's Logger interface.
type AntsXLogger struct {
	logger XLogger
}

func (l *AntsXLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Logf(zapcore.DebugLevel, format, args...)
}

func NewAntsXLogger(logger XLogger) *AntsXLogger {
	return &AntsXLogger{
		logger: logger,
	}
}
