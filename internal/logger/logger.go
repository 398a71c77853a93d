package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	base  zerolog.Logger
	ready bool
	out   io.Writer = os.Stderr
)

// Init configures the global logger. Logs go to stderr so tables on stdout
// stay clean.
//
//   - level: debug|info|warn|error (anything else means info)
//   - pretty: human readable console output instead of JSON lines
func Init(level string, pretty bool) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	w := out
	if pretty {
		w = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	base = zerolog.New(w).With().Timestamp().Logger().Level(parseLevel(level))
	ready = true
}

// SetOutput redirects subsequent Init calls to w.
func SetOutput(w io.Writer) {
	out = w
}

// L returns the global logger. Call Init() once on startup.
func L() *zerolog.Logger {
	if !ready {
		Init("info", false)
	}
	return &base
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
