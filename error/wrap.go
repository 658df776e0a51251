package error

import (
	"errors"

	"github.com/next-trace/scg-core/contract"
	"github.com/next-trace/scg-core/erno"
)

// Wrap attaches a cause to a new Error. If cause is nil, an opaque cause is created.
// It preserves the original cause for errors.Is / errors.As via Unwrap().
func Wrap(cause error, code erno.Code, detail string, ctx map[string]any) *Error {
	if cause == nil {
		cause = errors.New("unknown")
	}

	return New(code, detail, ctx, cause)
}

// Ensure converts any error to *Error.
//
// Behavior:
//   - nil input => nil output
//   - if err is already *Error => returned as-is (same pointer)
//   - a bare erno.Code => envelope for that code (erno.None => nil)
//   - otherwise wrap it into an erno.State envelope with a safe detail
func Ensure(err error) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		return e
	}

	var c erno.Code
	if errors.As(err, &c) {
		switch {
		case c == erno.None:
			return nil
		case err == error(c):
			return E(c)
		default:
			return E(c, WithCause(err))
		}
	}

	return Wrap(err, erno.State, "internal error", nil)
}

// CodeOf reports the erno.Code carried by err.
//
// nil yields erno.None; a bare erno.Code or any error implementing
// contract.Coder in the chain yields its code; any other error yields
// erno.State.
func CodeOf(err error) erno.Code {
	if err == nil {
		return erno.None
	}

	var coder contract.Coder
	if errors.As(err, &coder) {
		return coder.Code()
	}

	var c erno.Code
	if errors.As(err, &c) {
		return c
	}

	return erno.State
}
