// Package log wraps a zerolog logger with a process-wide instance.
//
// Output goes to a console writer on stderr so that command output on
// stdout stays machine readable. Secret bytes must never be logged; log
// fingerprints and parameter names instead.
package log

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
)

// Logger is a zerolog logger.
type Logger struct {
	zerolog.Logger
}

func init() {
	zerolog.TimeFieldFormat = time.DateTime
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
}

// Option configures a Logger.
type Option func(*Logger)

// WithLevel sets the minimum level.
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) {
		l.Logger = l.Logger.Level(level)
	}
}

// WithCaller adds the caller's file and line to every event.
func WithCaller() Option {
	return func(l *Logger) {
		l.Logger = l.Logger.With().Caller().Logger()
	}
}

// New returns a console logger writing to w. Colors are only used when w
// is a terminal.
func New(w io.Writer, opts ...Option) *Logger {
	cw := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
		NoColor:    !isTerminal(w),
	}
	l := &Logger{Logger: zerolog.New(cw).With().Timestamp().Logger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewJSON returns a logger emitting one JSON object per line to w.
func NewJSON(w io.Writer, opts ...Option) *Logger {
	l := &Logger{Logger: zerolog.New(w).With().Timestamp().Logger()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// ParseLevel maps a level name to a zerolog level. An empty name is info.
func ParseLevel(s string) (zerolog.Level, error) {
	if s == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(s)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
