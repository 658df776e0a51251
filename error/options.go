package error

import "github.com/next-trace/scg-core/erno"

// Option configures an Error during construction via E().
type Option func(*Error)

// WithName overrides the short name, typically with the name a caller-defined
// code carries in an erno.Table.
func WithName(name string) Option { return func(e *Error) { e.name = name } }

// WithDetail sets the human detail for the error during E() construction.
func WithDetail(detail string) Option { return func(e *Error) { e.detail = detail } }

// WithContext sets the initial context map for the error during E() construction.
// The provided map is defensively cloned.
func WithContext(ctx map[string]any) Option {
	return func(e *Error) { e.context = cloneMap(ctx) }
}

// WithCause sets the underlying cause to be returned by Unwrap().
func WithCause(cause error) Option { return func(e *Error) { e.cause = cause } }

// WithTable takes name and detail from t, unless set by an earlier option.
func WithTable(t *erno.Table) Option {
	return func(e *Error) {
		info, ok := t.Lookup(e.code)
		if !ok {
			return
		}

		if e.name == e.code.String() {
			e.name = info.Name
		}

		if info.Detail != "" && (e.detail == "" || e.detail == defaultDetail(e.code)) {
			e.detail = info.Detail
		}
	}
}

// E is a minimal builder when you don't want the full New(...) signature.
// Defaults: Name and Detail come from the reserved kind, or the hex value and
// "error" for caller-defined codes.
func E(code erno.Code, opts ...Option) *Error {
	e := &Error{
		code:   code,
		name:   code.String(),
		detail: defaultDetail(code),
	}

	for _, o := range opts {
		o(e)
	}

	return e
}

func defaultDetail(code erno.Code) string {
	if d := code.Detail(); d != "" {
		return d
	}

	return "error"
}
