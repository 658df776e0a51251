package main

import (
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/next-trace/scg-core/erno"
	"github.com/next-trace/scg-core/internal/config"
	"github.com/next-trace/scg-core/internal/logging"
	"github.com/next-trace/scg-core/internal/platform"
	"github.com/next-trace/scg-core/observe"
	"github.com/next-trace/scg-core/try"
)

type setup struct {
	table *erno.Table
	log   zerolog.Logger
}

// load reads the config and builds the code table.
func (c *cli) load(path string) try.Result[setup] {
	var loadErr error

	return try.Call(func(f *try.Frame) setup {
		cfg, err := config.Load(path)
		loadErr = err
		f.Assert(err == nil, erno.State)

		log := logging.New("scgcore", logging.Options{
			Level:     cfg.Log.Level,
			Timestamp: cfg.Log.Timestamp,
			NoColor:   cfg.Log.NoColor,
			JSON:      cfg.Log.JSON,
		}, c.stderr)

		tbl, err := cfg.Table()
		loadErr = err
		f.Check(err)

		log.Debug().Int("codes", tbl.Len()).Msg("config loaded")

		return setup{table: tbl, log: log}
	}, try.Catch(func(*try.Frame) {
		fmt.Fprintf(c.stderr, "scgcore: %v\n", loadErr)
	}))
}

func (c *cli) parse(f *try.Frame, fs *flag.FlagSet, args []string) {
	fs.SetOutput(c.stderr)
	f.Assert(fs.Parse(args) == nil, erno.String)
}

func (c *cli) codes(args []string) erno.Code {
	fs := flag.NewFlagSet("codes", flag.ContinueOnError)
	path := fs.String("config", "", "config file (default $"+config.EnvConfig+")")
	format := fs.String("format", "text", "output format: text or toml")

	return try.Run(func(f *try.Frame) {
		c.parse(f, fs, args)
		f.AssertRange(*format == "text" || *format == "toml")

		s := try.Take(f, c.load(*path))

		if *format == "toml" {
			data, err := config.MarshalCodes(s.table)
			f.Check(err)
			_, err = c.stdout.Write(data)
			f.Check(err)
			return
		}

		tw := tabwriter.NewWriter(c.stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tNAME\tDETAIL")
		for _, info := range append(erno.ReservedInfos(), s.table.Infos()...) {
			fmt.Fprintf(tw, "0x%x\t%s\t%s\n", uint64(info.Code), info.Name, info.Detail)
		}
		f.Check(tw.Flush())
	})
}

func (c *cli) describe(args []string) erno.Code {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	path := fs.String("config", "", "config file (default $"+config.EnvConfig+")")

	var s setup

	code := try.Run(func(f *try.Frame) {
		c.parse(f, fs, args)
		f.AssertString(strings.TrimSpace(first(fs.Args())))
		s = try.Take(f, c.load(*path))
	})
	if code != erno.None {
		return code
	}

	return try.Run(func(f *try.Frame) {
		code, err := s.table.Resolve(fs.Arg(0))
		f.Assert(err == nil, erno.Range)

		info, ok := s.table.Lookup(code)
		f.AssertRange(ok)

		fmt.Fprintf(c.stdout, "0x%x\t%s\t%s\n", uint64(info.Code), info.Name, info.Detail)
	}, try.Catch(func(*try.Frame) {
		fmt.Fprintf(c.stderr, "scgcore: unknown code %q\n", fs.Arg(0))
	}), observe.Log(s.log, "describe", s.table), observe.Trace(s.log, "describe"))
}

func (c *cli) toolchain(args []string) erno.Code {
	fs := flag.NewFlagSet("toolchain", flag.ContinueOnError)
	strict := fs.Bool("strict", false, "fail when the hint layer is degraded")

	return try.Run(func(f *try.Frame) {
		c.parse(f, fs, args)

		r := platform.Current()
		fmt.Fprintf(c.stdout, "compiler:  %s\n", r.Compiler)
		fmt.Fprintf(c.stdout, "optimized: %t\n", r.Optimized)
		fmt.Fprintf(c.stdout, "platform:  %s/%s\n", r.GOOS, r.GOARCH)
		fmt.Fprintf(c.stdout, "features:  %s\n", strings.Join(r.Features, " "))

		for _, w := range r.Warnings {
			fmt.Fprintf(c.stderr, "warning: %s\n", w)
		}

		f.AssertState(!(*strict && r.Degraded()))
	})
}
