// Package observe provides handling-region helpers that report failed
// activations through zerolog and prometheus. Nothing here runs unless a
// caller passes the returned options to try.Run.
package observe

import (
	"github.com/rs/zerolog"

	"github.com/next-trace/scg-core/erno"
	"github.com/next-trace/scg-core/try"
)

// Log returns a Catch option that logs the failure of op at warn level. Codes
// are named through names when it is non-nil.
func Log(logger zerolog.Logger, op string, names *erno.Table) try.Option {
	return try.Catch(func(f *try.Frame) {
		c := f.Code()
		logger.Warn().
			Str("op", op).
			Uint64("code", uint64(c)).
			Str("kind", kindName(names, c)).
			Msg("activation failed")
	})
}

// Trace returns a Finally option that logs every activation of op at debug
// level with its final code.
func Trace(logger zerolog.Logger, op string) try.Option {
	return try.Finally(func(f *try.Frame) {
		logger.Debug().
			Str("op", op).
			Uint64("code", uint64(f.Code())).
			Bool("failed", f.Failed()).
			Msg("activation done")
	})
}

func kindName(names *erno.Table, c erno.Code) string {
	if names != nil {
		return names.Name(c)
	}

	return c.String()
}
