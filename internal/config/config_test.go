package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"

	"github.com/next-trace/scg-core/erno"
	scgerror "github.com/next-trace/scg-core/error"
)

func setenv(t *testing.T, name, value string) {
	t.Helper()
	require.NoError(t, env.Set(name, value))
	t.Cleanup(func() { _ = env.Unset(name) })
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Timestamp)
	assert.False(t, cfg.Log.NoColor)
	assert.Empty(t, cfg.Codes)
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "scgcore.toml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Log.Timestamp)
	assert.True(t, cfg.Log.NoColor)
	assert.False(t, cfg.Log.JSON)
	require.Len(t, cfg.Codes, 2)
	assert.Equal(t, CodeEntry{Value: 0x101, Name: "quota", Detail: "quota exceeded"}, cfg.Codes[0])
}

func TestLoadEnvOverridesFile(t *testing.T) {
	setenv(t, EnvLogLevel, "error")
	setenv(t, EnvLogTimestamp, "true")
	setenv(t, EnvLogJSON, "1")

	cfg, err := Load(filepath.Join("testdata", "scgcore.toml"))
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.True(t, cfg.Log.Timestamp)
	assert.True(t, cfg.Log.JSON)
	assert.True(t, cfg.Log.NoColor, "untouched keys keep the file value")
}

func TestLoadPathFromEnv(t *testing.T) {
	setenv(t, EnvConfig, filepath.Join("testdata", "scgcore.toml"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Len(t, cfg.Codes, 2)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "missing.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join("testdata", "unknown.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "colour")
}

func TestTableBuildsDefinedCodes(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "scgcore.toml"))
	require.NoError(t, err)

	tbl, err := cfg.Table()
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, "quota", tbl.Name(0x101))
	assert.Equal(t, "busy", tbl.Name(erno.UserBase))
}

func TestTableRejectsInvalidEntries(t *testing.T) {
	cases := []struct {
		name  string
		cfg   Config
		code  erno.Code
		index int
		cause error
	}{
		{
			name:  "reserved value",
			cfg:   loadFixture(t, "reserved.toml"),
			code:  erno.Range,
			index: 1,
		},
		{
			name:  "duplicate name",
			cfg:   loadFixture(t, "duplicate.toml"),
			code:  erno.State,
			index: 1,
			cause: erno.ErrDuplicate,
		},
		{
			name:  "missing name",
			cfg:   Config{Codes: []CodeEntry{{Value: 0x100, Name: " "}}},
			code:  erno.String,
			index: 0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tbl, err := tc.cfg.Table()
			require.Nil(t, tbl)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.code)

			var e *scgerror.Error
			require.True(t, errors.As(err, &e))
			assert.Equal(t, tc.index, e.Context()["index"])

			if tc.cause != nil {
				assert.ErrorIs(t, err, tc.cause)
			}
		})
	}
}

func TestMarshalCodesReadsBack(t *testing.T) {
	tbl := erno.NewTable()
	require.NoError(t, tbl.Define(0x102, "quota", "quota exceeded"))
	require.NoError(t, tbl.Define(0x100, "busy", ""))

	data, err := MarshalCodes(tbl)
	require.NoError(t, err)

	var back fileConfig
	_, err = toml.Decode(string(data), &back)
	require.NoError(t, err)

	require.Len(t, back.Codes, 2)
	assert.Equal(t, CodeEntry{Value: 0x100, Name: "busy"}, back.Codes[0])
	assert.Equal(t, CodeEntry{Value: 0x102, Name: "quota", Detail: "quota exceeded"}, back.Codes[1])
	assert.NotContains(t, string(data), "detail = ''", "empty details are omitted")
}

func loadFixture(t *testing.T, name string) Config {
	t.Helper()

	cfg, err := Load(filepath.Join("testdata", name))
	require.NoError(t, err)

	return cfg
}
