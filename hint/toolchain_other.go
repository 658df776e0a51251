//go:build !gc && !gccgo

// Toolchains other than gc and gccgo (tinygo and friends) build the degraded
// realization: hints still return their input, Warnings reports each of them.

package hint

const toolchain = Unknown

// Optimized reports whether the hints map onto toolchain behavior.
const Optimized = false
