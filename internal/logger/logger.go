// Package logger is the structured log sink shared by the server, the static
// build and the CLI. A nil *Logger discards everything, so components can
// take one unconditionally.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Fields are attached to a single entry.
type Fields map[string]any

type Options struct {
	// Level is a zerolog level name; empty means info.
	Level string

	// Human switches from JSON lines to the console writer.
	Human bool

	// Out defaults to stderr so stdout stays free for command output.
	Out io.Writer
}

type Logger struct {
	z zerolog.Logger
}

func New(opts Options) (*Logger, error) {
	level := zerolog.InfoLevel
	if name := strings.TrimSpace(opts.Level); name != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(name))
		if err != nil {
			return nil, err
		}
		level = parsed
	}

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Human {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}

	return &Logger{z: zerolog.New(out).Level(level).With().Timestamp().Logger()}, nil
}

func Nop() *Logger {
	return &Logger{z: zerolog.Nop()}
}

// Component tags every entry with the emitting part of the site.
func (l *Logger) Component(name string) *Logger {
	return l.With(Fields{"component": name})
}

func (l *Logger) With(fields Fields) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{z: l.z.With().Fields(map[string]any(fields)).Logger()}
}

func (l *Logger) Debug(msg string, fields Fields) {
	if l != nil {
		emit(l.z.Debug(), msg, fields)
	}
}

func (l *Logger) Info(msg string, fields Fields) {
	if l != nil {
		emit(l.z.Info(), msg, fields)
	}
}

func (l *Logger) Warn(msg string, fields Fields) {
	if l != nil {
		emit(l.z.Warn(), msg, fields)
	}
}

// Error records err under the "error" key when it is non-nil.
func (l *Logger) Error(err error, msg string, fields Fields) {
	if l == nil {
		return
	}
	event := l.z.Error()
	if err != nil {
		event = event.Err(err)
	}
	emit(event, msg, fields)
}

func emit(event *zerolog.Event, msg string, fields Fields) {
	if len(fields) > 0 {
		event = event.Fields(map[string]any(fields))
	}
	event.Msg(msg)
}
