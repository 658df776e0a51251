package try

import "github.com/next-trace/scg-core/erno"

// Result is the outcome of an activation that produces a value: either a
// value with erno.None, or a non-zero code and the zero value.
type Result[T any] struct {
	value T
	code  erno.Code
}

// Ok returns a successful result.
func Ok[T any](v T) Result[T] { return Result[T]{value: v} }

// Failure returns a failed result. Failure(erno.None) is a successful zero value.
func Failure[T any](c erno.Code) Result[T] { return Result[T]{code: c} }

// Value returns the value and the code.
func (r Result[T]) Value() (T, erno.Code) { return r.value, r.code }

// Code returns the final code.
func (r Result[T]) Code() erno.Code { return r.code }

// OK reports whether the result carries no error.
func (r Result[T]) OK() bool { return r.code == erno.None }

// Err returns the code as an error, or nil on success.
func (r Result[T]) Err() error { return r.code.Err() }

// Or returns the value, or def when the result failed.
func (r Result[T]) Or(def T) T {
	if r.code != erno.None {
		return def
	}

	return r.value
}

// Call runs an activation whose guarded region produces a value. The value is
// discarded when the activation ends with a non-zero code, including a code
// set by a cleanup handler.
func Call[T any](guard func(*Frame) T, opts ...Option) Result[T] {
	var v T

	code := Run(func(f *Frame) {
		if guard != nil {
			v = guard(f)
		}
	}, opts...)

	if code != erno.None {
		return Failure[T](code)
	}

	return Ok(v)
}

// Take propagates a failed result into f and otherwise returns its value.
func Take[T any](f *Frame, r Result[T]) T {
	f.Propagate(r.code)

	return r.value
}
