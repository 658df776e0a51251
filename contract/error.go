// Package contract exposes the minimal error interface used by other packages.
//
// Implementations must ensure Context returns a defensive copy and support
// errors.Unwrap for proper interoperability with standard error helpers.
package contract

import "github.com/next-trace/scg-core/erno"

// Error is the minimal, stable surface that other packages can depend on.
//
// Implementations must:
//   - Report a stable erno.Code (never erno.None for a live error).
//   - Ensure Context() returns a defensive copy (never the internal map).
//   - Support errors.Unwrap via Unwrap().
type Error interface {
	error
	Code() erno.Code
	Name() string
	Detail() string
	// Context returns a defensive copy; NEVER return the internal map directly.
	Context() map[string]any
	Unwrap() error
}

// Coder is implemented by any error that carries an erno.Code.
type Coder interface {
	Code() erno.Code
}
