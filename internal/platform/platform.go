// Package platform describes the host the toolchain report runs on.
package platform

import (
	"runtime"
	"sort"

	"golang.org/x/sys/cpu"

	"github.com/next-trace/scg-core/hint"
)

// Report is the build and host summary printed by scgcore toolchain.
type Report struct {
	Compiler  hint.Compiler
	Optimized bool
	Warnings  []string
	GOOS      string
	GOARCH    string
	Features  []string
}

// Current collects the report for the running binary.
func Current() Report {
	return Report{
		Compiler:  hint.Toolchain(),
		Optimized: hint.Optimized,
		Warnings:  hint.Warnings(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		Features:  Features(runtime.GOARCH),
	}
}

// Degraded reports whether the hint layer fell back to no-ops.
func (r Report) Degraded() bool { return !r.Optimized }

// Features lists the CPU features x/sys/cpu detected for arch, sorted. Unknown
// architectures yield nil.
func Features(arch string) []string {
	var flags map[string]bool

	switch arch {
	case "amd64", "386":
		flags = map[string]bool{
			"aes":       cpu.X86.HasAES,
			"avx":       cpu.X86.HasAVX,
			"avx2":      cpu.X86.HasAVX2,
			"avx512f":   cpu.X86.HasAVX512F,
			"bmi1":      cpu.X86.HasBMI1,
			"bmi2":      cpu.X86.HasBMI2,
			"erms":      cpu.X86.HasERMS,
			"fma":       cpu.X86.HasFMA,
			"pclmulqdq": cpu.X86.HasPCLMULQDQ,
			"popcnt":    cpu.X86.HasPOPCNT,
			"sse2":      cpu.X86.HasSSE2,
			"sse3":      cpu.X86.HasSSE3,
			"sse41":     cpu.X86.HasSSE41,
			"sse42":     cpu.X86.HasSSE42,
			"ssse3":     cpu.X86.HasSSSE3,
		}
	case "arm64":
		flags = map[string]bool{
			"fp":      cpu.ARM64.HasFP,
			"asimd":   cpu.ARM64.HasASIMD,
			"aes":     cpu.ARM64.HasAES,
			"pmull":   cpu.ARM64.HasPMULL,
			"sha1":    cpu.ARM64.HasSHA1,
			"sha2":    cpu.ARM64.HasSHA2,
			"crc32":   cpu.ARM64.HasCRC32,
			"atomics": cpu.ARM64.HasATOMICS,
		}
	default:
		return nil
	}

	var out []string
	for name, ok := range flags {
		if ok {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}
