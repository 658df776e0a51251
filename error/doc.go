// Package error provides the error envelope scg-core hands to Go callers.
//
// Inside an activation (see package try) failures are plain erno codes. At the
// boundary to ordinary Go code a code becomes an *Error: a concrete type that
// implements contract.Error and integrates with the standard library's errors
// helpers (Is/As) via Unwrap and Is.
//
// Key characteristics:
//   - Stable erno.Code and short Name
//   - Human Detail
//   - Structured Context map with defensive cloning on read/write
//   - Optional underlying cause preserved for errors.Is / errors.As
//   - errors.Is(err, erno.Range) matches an envelope carrying erno.Range
//
// Construction options are available via E and With* helpers, and Wrap/Ensure/CodeOf
// provide convenient utilities for adapting arbitrary errors.
package error
