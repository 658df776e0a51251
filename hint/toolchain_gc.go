//go:build gc

package hint

const toolchain = GC

// Optimized reports whether the hints map onto toolchain behavior.
const Optimized = true
