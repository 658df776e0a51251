package config

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xyproto/env/v2"

	"github.com/next-trace/scg-core/erno"
	scgerror "github.com/next-trace/scg-core/error"
	"github.com/next-trace/scg-core/try"
)

const (
	EnvConfig       = "SCGCORE_CONFIG"
	EnvLogLevel     = "SCGCORE_LOG_LEVEL"
	EnvLogTimestamp = "SCGCORE_LOG_TIMESTAMP"
	EnvLogNoColor   = "SCGCORE_LOG_NOCOLOR"
	EnvLogJSON      = "SCGCORE_LOG_JSON"
)

type Config struct {
	Log   LogConfig
	Codes []CodeEntry
}

type LogConfig struct {
	Level     string
	Timestamp bool
	NoColor   bool
	JSON      bool
}

// CodeEntry is one caller-defined code as written in the config file.
type CodeEntry struct {
	Value  uint64 `toml:"value"`
	Name   string `toml:"name"`
	Detail string `toml:"detail,omitempty"`
}

type fileConfig struct {
	Log struct {
		Level     string `toml:"level"`
		Timestamp bool   `toml:"timestamp"`
		NoColor   bool   `toml:"no_color"`
		JSON      bool   `toml:"json"`
	} `toml:"log"`
	Codes []CodeEntry `toml:"codes"`
}

func Default() Config {
	return Config{
		Log: LogConfig{
			Level:     "info",
			Timestamp: true,
		},
	}
}

// Load reads path over the defaults, then applies environment overrides. An
// empty path falls back to $SCGCORE_CONFIG; with neither set only defaults and
// environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = env.Str(EnvConfig)
	}

	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	applyEnvOverrides(&cfg)

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config (%s): %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("load config (%s): unknown key %s", path, undecoded[0])
	}

	if meta.IsDefined("log", "level") {
		cfg.Log.Level = strings.TrimSpace(raw.Log.Level)
	}

	if meta.IsDefined("log", "timestamp") {
		cfg.Log.Timestamp = raw.Log.Timestamp
	}

	if meta.IsDefined("log", "no_color") {
		cfg.Log.NoColor = raw.Log.NoColor
	}

	if meta.IsDefined("log", "json") {
		cfg.Log.JSON = raw.Log.JSON
	}

	cfg.Codes = raw.Codes

	return nil
}

func applyEnvOverrides(cfg *Config) {
	if lvl := strings.TrimSpace(env.Str(EnvLogLevel)); lvl != "" {
		cfg.Log.Level = lvl
	}

	if env.Has(EnvLogTimestamp) {
		cfg.Log.Timestamp = env.Bool(EnvLogTimestamp)
	}

	if env.Has(EnvLogNoColor) {
		cfg.Log.NoColor = env.Bool(EnvLogNoColor)
	}

	if env.Has(EnvLogJSON) {
		cfg.Log.JSON = env.Bool(EnvLogJSON)
	}
}

// Table builds the code table described by the config. The first invalid
// entry stops the build; the returned error is an *error.Error whose code is
// erno.Range for values in the reserved block, erno.String for a missing name
// and erno.State for duplicates.
func (c Config) Table() (*erno.Table, error) {
	var (
		tbl    = erno.NewTable()
		at     int
		cause  error
		result error
	)

	try.Run(func(f *try.Frame) {
		for i, e := range c.Codes {
			at = i
			f.AssertRange(!erno.Code(e.Value).Reserved())
			f.AssertString(strings.TrimSpace(e.Name))

			cause = tbl.Define(erno.Code(e.Value), e.Name, e.Detail)
			f.Assert(cause == nil, erno.State)
		}
	}, try.Catch(func(f *try.Frame) {
		e := c.Codes[at]
		result = scgerror.New(f.Code(), fmt.Sprintf("codes[%d]: invalid entry", at), map[string]any{
			"index": at,
			"value": e.Value,
			"name":  e.Name,
		}, cause)
	}))

	if result != nil {
		return nil, result
	}

	return tbl, nil
}
