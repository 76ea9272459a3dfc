package log

import (
	"os"

	"github.com/rs/zerolog"
)

// G is the process-wide logger.
var G = New(os.Stderr, WithLevel(zerolog.InfoLevel))

// SetGlobalLogger replaces G. Like SetGlobalLevel it must not race with
// logging.
func SetGlobalLogger(l *Logger) {
	G = l
}

// SetGlobalLevel changes the level of G. It is not safe to call while
// other goroutines are logging through G.
func SetGlobalLevel(level zerolog.Level) {
	G.Logger = G.Logger.Level(level)
}

func Debug() *zerolog.Event {
	return G.Debug()
}

func Info() *zerolog.Event {
	return G.Info()
}

func Warn() *zerolog.Event {
	return G.Warn()
}

// Error returns an error-level event carrying the stack of pkg/errors
// values passed to Err.
func Error() *zerolog.Event {
	return G.Error().Stack()
}
