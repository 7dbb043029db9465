// Package zaplogger adapts a zap.Logger to the logger.Logger interface
// used by commands and chains.
package zaplogger

import (
	"go.uber.org/zap"

	"github.com/ib-77/coupler/pkg/coupler/logger"
)

var _ logger.Logger = &Logger{}

// Logger is a zap-backed logger.Logger implementation.
type Logger zap.Logger

// Wrap adapts l, keeping its configuration, levels and sinks untouched.
func Wrap(l *zap.Logger) *Logger {
	return (*Logger)(l)
}

// Debug logs msg at debug level.
func (l *Logger) Debug(msg string, fields ...logger.Field) {
	(*zap.Logger)(l).Debug(msg, zapFields(fields)...)
}

// Info logs msg at info level.
func (l *Logger) Info(msg string, fields ...logger.Field) {
	(*zap.Logger)(l).Info(msg, zapFields(fields)...)
}

// Error logs msg at error level.
func (l *Logger) Error(msg string, fields ...logger.Field) {
	(*zap.Logger)(l).Error(msg, zapFields(fields)...)
}

func zapFields(fields []logger.Field) []zap.Field {
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
