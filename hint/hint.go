// Package hint carries optimization hints for functions and branch predicates.
//
// Hints never change behavior. Likely and Unlikely return their predicate
// unchanged; Pure, Hot and Cold return the function they decorate unchanged.
// On the gc and gccgo toolchains the helpers are leaf functions that inline
// into the surrounding branch, so a hinted condition costs the same as a bare
// one and keeps the failure path visually marked. Other toolchains get the
// degraded realization: identical results, plus portability warnings reported
// by Warnings and surfaced at build time through go generate.
//
//	var area = hint.Pure(func(w, h int) int { return w * h })
//
//	if hint.Unlikely(n < 0) {
//		return erno.Range
//	}
package hint

//go:generate go run ../cmd/scgcore toolchain

// Likely marks p as expected to be true and returns it unchanged.
func Likely(p bool) bool { return p }

// Unlikely marks p as expected to be false and returns it unchanged.
func Unlikely(p bool) bool { return p }

// Pure marks fn as depending only on its arguments with no observable side
// effects. The claim is not verified.
func Pure[F any](fn F) F { return fn }

// Hot marks fn as called very frequently.
func Hot[F any](fn F) F { return fn }

// Cold marks fn as called very infrequently.
func Cold[F any](fn F) F { return fn }

// Warnings returns the portability warnings for the current toolchain, one per
// hint without effect. It is empty when Optimized is true.
func Warnings() []string {
	if Optimized {
		return nil
	}

	tc := Toolchain()
	out := make([]string, 0, len(hintNames))
	for _, name := range hintNames {
		out = append(out, name+" has no effect on the "+tc.String()+" toolchain")
	}

	return out
}

var hintNames = []string{"Pure", "Hot", "Cold", "Likely", "Unlikely"}
