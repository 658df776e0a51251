// Command scgcore inspects the error-code space and the hint toolchain.
//
//	scgcore codes    [-config file] [-format text|toml]
//	scgcore describe [-config file] <code|name>
//	scgcore toolchain [-strict]
//
// The exit status is the final erno code of the command: 0 on success, the
// code itself for reserved kinds, and 255 for caller-defined codes.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/next-trace/scg-core/erno"
	"github.com/next-trace/scg-core/try"
)

// exitCaller is the status for codes outside the reserved block.
const exitCaller = 0xff

type cli struct {
	stdout io.Writer
	stderr io.Writer
}

type command func(c *cli, args []string) erno.Code

var commands = map[string]command{
	"codes":     (*cli).codes,
	"describe":  (*cli).describe,
	"toolchain": (*cli).toolchain,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	c := &cli{stdout: stdout, stderr: stderr}

	return exitStatus(c.dispatch(args))
}

func (c *cli) dispatch(args []string) erno.Code {
	dispatched := false

	return try.Run(func(f *try.Frame) {
		f.AssertString(first(args))

		cmd, ok := commands[args[0]]
		f.AssertRange(ok)

		dispatched = true
		f.Propagate(cmd(c, args[1:]))
	}, try.Catch(func(*try.Frame) {
		if !dispatched {
			c.usage()
		}
	}))
}

func (c *cli) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintf(c.stderr, "usage: scgcore <command> [flags]\ncommands: %v\n", names)
}

func exitStatus(code erno.Code) int {
	if code.Reserved() {
		return int(code)
	}

	return exitCaller
}

func first(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
