package try

import (
	"errors"
	"fmt"

	"github.com/next-trace/scg-core/erno"
	scgerror "github.com/next-trace/scg-core/error"
	"github.com/next-trace/scg-core/hint"
	"github.com/next-trace/scg-core/types"
)

// ErrMisuse is the panic value (wrapped) raised when a frame is used outside
// the region an operation is allowed in.
var ErrMisuse = errors.New("try: frame misuse")

type region uint8

const (
	regionIdle region = iota
	regionGuard
	regionHandle
	regionCleanup
	regionDone
)

func (r region) String() string {
	switch r {
	case regionGuard:
		return "guarded"
	case regionHandle:
		return "handling"
	case regionCleanup:
		return "cleanup"
	case regionDone:
		return "finished"
	default:
		return "idle"
	}
}

// Frame is the error slot of one activation. It starts at erno.None and is
// owned by the goroutine running the activation.
type Frame struct {
	code   erno.Code
	region region
	failed bool
}

// failure carries a control transfer out of the guarded region of frame.
type failure struct {
	frame *Frame
}

// Code returns the current error code.
func (f *Frame) Code() erno.Code { return f.code }

// SetCode overwrites the current error code. It does not transfer control.
func (f *Frame) SetCode(c erno.Code) {
	if f.region == regionIdle || f.region == regionDone {
		f.misuse("SetCode")
	}

	f.code = c
}

// Failed reports whether control left the guarded region through a failure.
func (f *Frame) Failed() bool { return f.failed }

// Assert fails the activation with c unless p holds.
func (f *Frame) Assert(p bool, c erno.Code) {
	f.guarded("Assert")

	if hint.Unlikely(!p) {
		f.raise(c)
	}
}

// AssertHandle fails with erno.Handle unless p holds.
func (f *Frame) AssertHandle(p bool) { f.guarded("AssertHandle"); f.check(p, erno.Handle) }

// AssertState fails with erno.State unless p holds.
func (f *Frame) AssertState(p bool) { f.guarded("AssertState"); f.check(p, erno.State) }

// AssertRange fails with erno.Range unless p holds.
func (f *Frame) AssertRange(p bool) { f.guarded("AssertRange"); f.check(p, erno.Range) }

// AssertString fails with erno.String when s is empty.
func (f *Frame) AssertString(s string) { AssertText(f, s) }

// AssertBytes fails with erno.String when b is nil or empty.
func (f *Frame) AssertBytes(b []byte) { AssertText(f, b) }

// AssertStringRef fails with erno.String when s is nil or points to "".
func (f *Frame) AssertStringRef(s *string) {
	f.guarded("AssertStringRef")
	f.check(s != nil && *s != "", erno.String)
}

// AssertText fails f with erno.String when s is absent or empty. A nil byte
// slice has length zero, so both cases reduce to a length check.
func AssertText[T types.Text](f *Frame, s T) {
	f.guarded("AssertText")
	f.check(len(s) > 0, erno.String)
}

// Fail fails the activation with c unconditionally.
func (f *Frame) Fail(c erno.Code) {
	f.guarded("Fail")
	f.raise(c)
}

// Propagate forwards the code returned by a fallible call. erno.None falls
// through; anything else fails the activation with that code.
func (f *Frame) Propagate(c erno.Code) {
	f.guarded("Propagate")
	f.check(c == erno.None, c)
}

// Check forwards a Go error the way Propagate forwards a code, using the code
// reported by error.CodeOf.
func (f *Frame) Check(err error) {
	f.guarded("Check")

	c := scgerror.CodeOf(err)
	f.check(c == erno.None, c)
}

func (f *Frame) check(p bool, c erno.Code) {
	if hint.Unlikely(!p) {
		f.raise(c)
	}
}

func (f *Frame) raise(c erno.Code) {
	f.code = c
	f.failed = true
	panic(failure{frame: f})
}

func (f *Frame) guarded(op string) {
	if f.region != regionGuard {
		f.misuse(op)
	}
}

func (f *Frame) misuse(op string) {
	panic(fmt.Errorf("%w: %s called in the %s region", ErrMisuse, op, f.region))
}
