package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New returns a service logger: human readable in development, JSON elsewhere.
func New(env string) zerolog.Logger {
	return newWithWriter(env, os.Stdout)
}

func newWithWriter(env string, out io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339

	level := zerolog.InfoLevel
	var w io.Writer = out
	if isDevelopment(env) {
		level = zerolog.DebugLevel
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05", NoColor: out != os.Stdout}
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "rentals-service").
		Logger()
}

func isDevelopment(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "dev", "development", "local":
		return true
	}
	return false
}
