// Package try implements structured error signalling on top of erno codes.
//
// Every function that uses the convention runs as one activation with its own
// error slot (a *Frame) and three regions, executed in this order:
//
//   - the guarded region, where preconditions are asserted and fallible calls
//     are propagated;
//   - the handling region, entered only when a failure left the guarded
//     region, to translate or record the error;
//   - the cleanup region, which always runs once and yields the final code.
//
// A failed Assert (or Propagate of a non-zero code) stores the code in the
// slot and leaves the guarded region at once; the rest of it never runs.
// Failures do not cross activations on their own: a caller continues the chain
// by propagating the callee's code.
//
//	func Slot(table []int, i int) erno.Code {
//		var held *lock
//		return try.Run(func(f *try.Frame) {
//			f.AssertRange(i >= 0 && i < len(table))
//			held = acquire()
//			f.Propagate(held.Write(table[i]))
//		},
//			try.Catch(func(f *try.Frame) { log.Printf("slot %d: %v", i, f.Code()) }),
//			try.Finally(func(*try.Frame) {
//				if held != nil {
//					held.Release()
//				}
//			}),
//		)
//	}
//
// The handling and cleanup regions must not assert or propagate; doing so, or
// using a Frame outside its activation, panics with ErrMisuse. Result, Call
// and Take carry a value alongside the code for activations that produce one.
//
// Frames are never shared: each Run allocates a fresh one, so concurrent
// activations on different goroutines need no locking.
package try
