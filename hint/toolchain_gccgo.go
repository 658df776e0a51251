//go:build gccgo

package hint

const toolchain = GCCGO

// Optimized reports whether the hints map onto toolchain behavior.
const Optimized = true
