package hint

import (
	"fmt"
	"strings"
)

// Compiler identifies the Go toolchain a binary was built with.
type Compiler int

const (
	Unknown Compiler = iota
	GC
	GCCGO
)

func (c Compiler) String() string {
	switch c {
	case GC:
		return "gc"
	case GCCGO:
		return "gccgo"
	default:
		return "unknown"
	}
}

// ParseCompiler parses a toolchain name as reported by runtime.Compiler.
func ParseCompiler(s string) (Compiler, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gc":
		return GC, nil
	case "gccgo", "gcc":
		return GCCGO, nil
	default:
		return Unknown, fmt.Errorf("hint: unsupported compiler: %s (supported: gc, gccgo)", s)
	}
}

// Toolchain reports the toolchain selected at build time.
func Toolchain() Compiler { return toolchain }
