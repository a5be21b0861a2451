// Copyright (c) 2026 The SmokeRand Authors

// Package logging wraps zerolog.Logger in the thread-framed,
// field-safe shape spec.md §4.4 asks the runner (and, per §7, the
// entropy seeder's CSPRNG-fallback warning) to log through. It is a
// standalone package, rather than living in battery/, specifically so
// entropy/ can log its own warnings without importing battery/ (which
// itself imports entropy/).
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger wraps zerolog.Logger with a defensive emit helper that never
// panics on malformed field lists.
type Logger struct {
	logger zerolog.Logger
}

// New returns a Logger writing to out (os.Stdout if nil) at info level.
func New(out io.Writer) *Logger {
	if out == nil {
		out = os.Stdout
	}
	zlog := zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger()
	return &Logger{logger: zlog}
}

func (l *Logger) Debug(msg string, fields ...any) { l.emit(l.logger.Debug(), msg, fields...) }
func (l *Logger) Info(msg string, fields ...any)  { l.emit(l.logger.Info(), msg, fields...) }
func (l *Logger) Warn(msg string, fields ...any)  { l.emit(l.logger.Warn(), msg, fields...) }
func (l *Logger) Error(msg string, fields ...any) { l.emit(l.logger.Error(), msg, fields...) }

// WithField returns a child Logger with an additional structured field.
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

func (l *Logger) emit(event *zerolog.Event, msg string, fields ...any) {
	if len(fields)%2 != 0 {
		event.Str("logerror", "odd number of fields")
		event.Msg(msg)
		return
	}
	for i := 0; i < len(fields); i += 2 {
		key, ok := fields[i].(string)
		if !ok {
			event.Str("logerror", fmt.Sprintf("field key at index %d is not a string", i))
			continue
		}
		event.Interface(key, fields[i+1])
	}
	event.Msg(msg)
}
