// Package logger is the small structured logging facade used across the
// library. Commands and chains log through this interface only, so the
// host application decides the backend (see the zaplogger package) or
// passes nothing at all: a nil Logger is valid and silent.
package logger

// Field is one structured key/value attached to a log entry.
type Field struct {
	Key   string
	Value any
}

// With builds a Field in a functional way.
func With(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Logger prints leveled, structured entries about command execution.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Debug delegates to the logger, if not nil.
func Debug(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Debug(msg, fields...)
	}
}

// Info delegates to the logger, if not nil.
func Info(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Info(msg, fields...)
	}
}

// Error delegates to the logger, if not nil.
func Error(l Logger, msg string, fields ...Field) {
	if l != nil {
		l.Error(msg, fields...)
	}
}
