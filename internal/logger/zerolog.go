package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog with the component-field convention used across the
// app: every entry names the component it came from.
type Logger struct {
	logger zerolog.Logger
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level zerolog.Level) *Logger {
	l := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
	return &Logger{logger: l}
}

// NewConsole builds a human-readable stderr logger. The level string comes
// from the config file; unknown values fall back to info.
func NewConsole(level string) *Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	return New(zerolog.ConsoleWriter{Out: os.Stderr}, parsed)
}

func (l *Logger) Debug(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Debug(), component, fields).Msg(message)
}

func (l *Logger) Info(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Info(), component, fields).Msg(message)
}

func (l *Logger) Warning(component, message string, fields map[string]interface{}) {
	l.emit(l.logger.Warn(), component, fields).Msg(message)
}

func (l *Logger) Error(component string, err error, fields map[string]interface{}) {
	l.emit(l.logger.Error().Err(err), component, fields).Msg("operation failed")
}

func (l *Logger) emit(event *zerolog.Event, component string, fields map[string]interface{}) *zerolog.Event {
	event = event.Str("component", component)
	for k, v := range fields {
		event = event.Interface(k, v)
	}
	return event
}
