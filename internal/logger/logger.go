// Package logger provides the structured logger used across the prover,
// mirroring the convention of the teacher's github.com/consensys/gnark/logger
// package: a single global zerolog.Logger, configurable sink and level.
package logger

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.Mutex
	log zerolog.Logger
)

func init() {
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}

// Logger returns the package-level logger, with() chains scoped per call site.
func Logger() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return log
}

// SetOutput redirects the logger to w, keeping the console formatting.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		With().
		Timestamp().
		Logger()
}

// SetLevel sets the minimum level emitted by the global logger.
func SetLevel(lvl zerolog.Level) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(lvl)
}
