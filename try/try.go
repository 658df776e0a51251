package try

import "github.com/next-trace/scg-core/erno"

// Option configures an activation during Run().
type Option func(*activation)

type activation struct {
	catch   []func(*Frame)
	finally []func(*Frame)
}

// Catch adds a handler to the handling region. Handlers run in registration
// order, only after a failure left the guarded region, and must not assert.
func Catch(fn func(*Frame)) Option {
	return func(a *activation) {
		if fn != nil {
			a.catch = append(a.catch, fn)
		}
	}
}

// Finally adds a handler to the cleanup region. Handlers run in registration
// order exactly once per activation, whether or not a failure occurred, and
// may adjust the final code with SetCode.
func Finally(fn func(*Frame)) Option {
	return func(a *activation) {
		if fn != nil {
			a.finally = append(a.finally, fn)
		}
	}
}

// Run executes one activation and returns its final error code.
//
// The guarded region runs first. A failed assertion or propagation leaves it
// immediately and enters the handling region; a guarded region that returns
// normally skips handling. The cleanup region always runs last, and the code
// in the slot after cleanup is the result.
//
// Panics other than a failure of this frame are not recovered: cleanup still
// runs and the panic continues unwinding, which is also how a failure raised
// on an enclosing activation's frame passes through a nested Run.
func Run(guard func(*Frame), opts ...Option) erno.Code {
	var a activation
	for _, o := range opts {
		o(&a)
	}

	return a.run(&Frame{}, guard)
}

func (a *activation) run(f *Frame, guard func(*Frame)) (code erno.Code) {
	defer func() {
		f.region = regionCleanup
		for _, fn := range a.finally {
			fn(f)
		}
		f.region = regionDone
		code = f.code
	}()

	if f.enter(guard) {
		f.region = regionHandle
		for _, fn := range a.catch {
			fn(f)
		}
	}

	return f.code
}

// enter runs the guarded region and reports whether it was left by a failure
// of f.
func (f *Frame) enter(guard func(*Frame)) (failed bool) {
	f.region = regionGuard

	defer func() {
		if r := recover(); r != nil {
			if x, ok := r.(failure); ok && x.frame == f {
				failed = true
				return
			}
			panic(r)
		}
	}()

	if guard != nil {
		guard(f)
	}

	return false
}
