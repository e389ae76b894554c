// Package logging provides the structured logging facade used by the
// golden-data generator. Library packages never log on their own; they
// accept a zerolog.Logger through their observers instead.
package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/computil/internal/errors"
)

// Logger is the logging interface used by commands.
type Logger interface {
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	// Error logs msg together with err.
	Error(msg string, err error, fields ...Field)
	Debug(msg string, fields ...Field)
}

// Field is a key-value pair attached to a log event.
type Field struct {
	Key   string
	Value any
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an integer field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Uint64 creates a uint64 field.
func Uint64(key string, value uint64) Field {
	return Field{Key: key, Value: value}
}

// Float64 creates a float64 field.
func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a boolean field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Err creates an error field.
func Err(err error) Field {
	return Field{Key: "error", Value: err}
}

// ZerologAdapter adapts a zerolog.Logger to Logger.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewLogger writes JSON events tagged with component to w.
func NewLogger(w io.Writer, component string) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(w).With().Str("component", component).Timestamp().Logger(),
	)
}

// NewConsoleLogger writes human-readable events to w. Colors are disabled
// so the output stays readable when redirected.
func NewConsoleLogger(w io.Writer) *ZerologAdapter {
	return NewZerologAdapter(
		zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: "15:04:05"}).
			With().Timestamp().Logger(),
	)
}

// WithLevel returns a copy of the adapter that drops events below level.
func (z *ZerologAdapter) WithLevel(level zerolog.Level) *ZerologAdapter {
	return NewZerologAdapter(z.logger.Level(level))
}

// Zerolog exposes the underlying logger, e.g. for prime.NewLoggingObserver.
func (z *ZerologAdapter) Zerolog() zerolog.Logger { return z.logger }

func applyFields(event *zerolog.Event, fields []Field) *zerolog.Event {
	for _, f := range fields {
		switch v := f.Value.(type) {
		case string:
			event = event.Str(f.Key, v)
		case int:
			event = event.Int(f.Key, v)
		case int64:
			event = event.Int64(f.Key, v)
		case uint64:
			event = event.Uint64(f.Key, v)
		case float64:
			event = event.Float64(f.Key, v)
		case bool:
			event = event.Bool(f.Key, v)
		case error:
			event = event.AnErr(f.Key, v)
		default:
			event = event.Interface(f.Key, v)
		}
	}
	return event
}

func (z *ZerologAdapter) Info(msg string, fields ...Field) {
	applyFields(z.logger.Info(), fields).Msg(msg)
}

func (z *ZerologAdapter) Warn(msg string, fields ...Field) {
	applyFields(z.logger.Warn(), fields).Msg(msg)
}

func (z *ZerologAdapter) Error(msg string, err error, fields ...Field) {
	applyFields(z.logger.Error().Err(err), fields).Msg(msg)
}

func (z *ZerologAdapter) Debug(msg string, fields ...Field) {
	applyFields(z.logger.Debug(), fields).Msg(msg)
}

// ParseLevel converts a level name ("debug", "info", "warn", "error",
// "disabled") to a zerolog level. The empty string means info.
func ParseLevel(name string) (zerolog.Level, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil {
		return zerolog.NoLevel, apperrors.NewConfigError("unknown log level %q", name)
	}
	return level, nil
}
