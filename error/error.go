package error

import (
	"fmt"

	"github.com/next-trace/scg-core/contract"
	"github.com/next-trace/scg-core/erno"
)

// Error is the error envelope handed to Go callers.
//
// Fields:
//   - Code:    the erno.Code the failing activation ended with
//   - Name:    short, machine-facing name (e.g. "range", "quota")
//   - Detail:  human detail, safe to show
//   - Context: everything else (ids, bounds, offending values)
type Error struct {
	code    erno.Code
	name    string
	detail  string
	context map[string]any
	cause   error
}

// compile-time guarantee that *Error implements contract.Error
var _ contract.Error = (*Error)(nil)

// ------ standard error interface

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	if e.cause != nil {
		return fmt.Sprintf("%s (0x%x): %v", e.name, uint64(e.code), e.cause)
	}

	return fmt.Sprintf("%s (0x%x)", e.name, uint64(e.code))
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches a bare erno.Code equal to the envelope's code, so
// errors.Is(err, erno.Range) works through wrapping.
func (e *Error) Is(target error) bool {
	c, ok := target.(erno.Code)

	return ok && e != nil && c == e.code
}

// ------ contract.Error getters

func (e *Error) Code() erno.Code         { return e.code }
func (e *Error) Name() string            { return e.name }
func (e *Error) Detail() string          { return e.detail }
func (e *Error) Context() map[string]any { return cloneMap(e.context) }

// ------ core constructors

// New creates a new Error for code. The name is the code's reserved name, or
// its hex form for caller-defined codes (see WithName).
// Context is defensively cloned (pass nil for none).
// The optional cause parameter (if provided) is stored and exposed via Unwrap().
func New(code erno.Code, detail string, ctx map[string]any, cause ...error) *Error {
	e := &Error{
		code:    code,
		name:    code.String(),
		detail:  detail,
		context: cloneMap(ctx),
	}
	if len(cause) > 0 {
		e.cause = cause[0]
	}

	return e
}

// ------ fluent helpers (chainable, mutate receiver intentionally)

// WithContextKV sets a single key/value in the error context map and returns the same receiver for chaining.
// The internal context map is created on first use.
func (e *Error) WithContextKV(k string, v any) *Error {
	if e == nil {
		return nil
	}

	if e.context == nil {
		e.context = map[string]any{}
	}

	if mv, ok := v.(map[string]any); ok {
		v = cloneMap(mv)
	}

	e.context[k] = v

	return e
}

// WithContextMap merges the provided map into the error context and returns the same receiver for chaining.
// Nil or empty maps are ignored. Existing keys are overwritten.
func (e *Error) WithContextMap(m map[string]any) *Error {
	if e == nil || len(m) == 0 {
		return e
	}

	for k, v := range m {
		e.WithContextKV(k, v)
	}

	return e
}

func cloneMap(in map[string]any) map[string]any {
	if len(in) == 0 {
		return nil
	}

	out := make(map[string]any, len(in))

	for k, v := range in {
		// Nested string-keyed maps are cloned too.
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}

		out[k] = v
	}

	return out
}
