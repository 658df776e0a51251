package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger construction.
type Options struct {
	Level     string
	Timestamp bool
	NoColor   bool
	JSON      bool
}

// New builds the CLI logger writing to w. Unknown levels fall back to info.
func New(app string, opts Options, w io.Writer) zerolog.Logger {
	out := w
	if !opts.JSON {
		out = zerolog.ConsoleWriter{
			Out:        w,
			NoColor:    opts.NoColor,
			TimeFormat: time.RFC3339,
		}
	}

	lvl, _ := ParseLevel(opts.Level)
	ctx := zerolog.New(out).Level(lvl).With().Str("app", app)
	if opts.Timestamp {
		ctx = ctx.Timestamp()
	}

	return ctx.Logger()
}

// ParseLevel maps a level name onto zerolog. The second result is false for
// empty or unknown input.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace", "diagnostics":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "disable", "off", "none", "inactive":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
