// Package xlog is a thin zap composition shared by the module's
// components. Console logger only, no rotation or file sinks.
package xlog

import (
	"fmt"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type xLogger struct {
	logger atomic.Pointer[zap.Logger]
	level  zapcore.Level
}

func (l *xLogger) IncreaseLogLevel(level zapcore.Level) {
	logger := l.logger.Load().WithOptions(zap.IncreaseLevel(level))
	l.logger.Store(logger)
}

func (l *xLogger) Sync() error {
	return l.logger.Load().Sync()
}

func (l *xLogger) Debug(msg string, fields ...zap.Field) {
	l.logger.Load().Debug(msg, fields...)
}

func (l *xLogger) Info(msg string, fields ...zap.Field) {
	l.logger.Load().Info(msg, fields...)
}

func (l *xLogger) Warn(msg string, fields ...zap.Field) {
	l.logger.Load().Warn(msg, fields...)
}

func (l *xLogger) Error(err error, msg string, fields ...zap.Field) {
	newFields := []zap.Field{
		zap.String("error", err.Error()),
	}
	newFields = append(newFields, fields...)
	l.logger.Load().Error(msg, newFields...)
}

func (l *xLogger) Logf(lvl zapcore.Level, format string, args ...any) {
	l.logger.Load().Log(lvl, fmt.Sprintf(format, args...))
}

type XLoggerOpt func(*xLoggerCfg)

type xLoggerCfg struct {
	level   LogLevel
	encoder LogEncoderType
	writer  zapcore.WriteSyncer
}

func WithXLoggerLevel(lvl LogLevel) XLoggerOpt {
	return func(cfg *xLoggerCfg) {
		cfg.level = lvl
	}
}

func WithXLoggerEncoder(typ LogEncoderType) XLoggerOpt {
	return func(cfg *xLoggerCfg) {
		cfg.encoder = typ
	}
}

func WithXLoggerWriter(ws zapcore.WriteSyncer) XLoggerOpt {
	return func(cfg *xLoggerCfg) {
		cfg.writer = ws
	}
}

func NewXLogger(component string, opts ...XLoggerOpt) XLogger {
	cfg := &xLoggerCfg{
		level:   LogLevelInfo,
		encoder: PlainText,
	}
	for _, o := range opts {
		o(cfg)
	}
	if cfg.writer == nil {
		cfg.writer = zapcore.Lock(os.Stderr)
	}

	config := zapcore.EncoderConfig{
		MessageKey:    "msg",
		LevelKey:      "lvl",
		EncodeLevel:   zapcore.CapitalLevelEncoder,
		TimeKey:       "ts",
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		CallerKey:     "callAt",
		EncodeCaller:  zapcore.ShortCallerEncoder,
		NameKey:       "component",
		EncodeName:    zapcore.FullNameEncoder,
		StacktraceKey: zapcore.OmitKey,
	}
	lvl := cfg.level.zapLevel()
	core := zapcore.NewCore(
		getEncoderByType(cfg.encoder)(config),
		cfg.writer,
		zap.LevelEnablerFunc(func(level zapcore.Level) bool {
			return level >= lvl
		}),
	)

	l := &xLogger{level: lvl}
	l.logger.Store(zap.New(core, zap.AddCaller()).Named(component))
	return l
}
