package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBinder wraps a pflag.FlagSet to satisfy the flagBinder interface.
type fakeBinder struct {
	fs *pflag.FlagSet
}

func (f *fakeBinder) Flags() *pflag.FlagSet { return f.fs }

func newFlagSet(t *testing.T, defaults Config, args ...string) *fakeBinder {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterPersistentFlags(fs, defaults)
	RegisterRunFlags(fs, defaults)
	require.NoError(t, fs.Parse(args))

	return &fakeBinder{fs: fs}
}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, 1, cfg.Batch.Concurrency)
	assert.False(t, cfg.Batch.Lines)
	assert.Empty(t, cfg.Pipeline.Operations)
	assert.Empty(t, cfg.Output.Graph)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{
		Cmd:      newFlagSet(t, DefaultConfig()),
		Defaults: DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Log, cfg.Log)
	assert.Equal(t, DefaultConfig().Batch, cfg.Batch)
	assert.Equal(t, DefaultConfig().Output, cfg.Output)
	assert.Empty(t, cfg.Pipeline.File)
	assert.Empty(t, cfg.Pipeline.Operations)
}

func TestLoadNilCmd(t *testing.T) {
	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFlagOverride(t *testing.T) {
	cfg, err := Load(LoadOptions{
		Cmd: newFlagSet(t, DefaultConfig(),
			"--log-level=debug",
			"--lines",
			"--concurrency=8",
			"--graph=pipeline.dot",
			"--measure",
			"--pipeline-file=pipeline.hjson",
		),
		Defaults: DefaultConfig(),
	})
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Batch.Lines)
	assert.Equal(t, 8, cfg.Batch.Concurrency)
	assert.Equal(t, "pipeline.dot", cfg.Output.Graph)
	assert.True(t, cfg.Output.Measure)
	assert.Equal(t, "pipeline.hjson", cfg.Pipeline.File)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TEXTPIPE_LOG_LEVEL", "warn")
	t.Setenv("TEXTPIPE_BATCH_CONCURRENCY", "3")

	cfg, err := Load(LoadOptions{
		Cmd:      newFlagSet(t, DefaultConfig()),
		Defaults: DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, 3, cfg.Batch.Concurrency)
}

func TestLoadFlagBeatsEnv(t *testing.T) {
	t.Setenv("TEXTPIPE_LOG_LEVEL", "warn")

	cfg, err := Load(LoadOptions{
		Cmd:      newFlagSet(t, DefaultConfig(), "--log-level=error"),
		Defaults: DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "textpipe.yaml", `
log:
  level: debug
pipeline:
  operations:
    - punct
    - trim
    - "ngrams:2:, "
batch:
  concurrency: 4
`)

	cfg, err := Load(LoadOptions{
		Cmd:        newFlagSet(t, DefaultConfig(), "--concurrency=2"),
		ConfigFile: path,
		Defaults:   DefaultConfig(),
	})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, []string{"punct", "trim", "ngrams:2:, "}, cfg.Pipeline.Operations)
	assert.Equal(t, 2, cfg.Batch.Concurrency)
}

func TestLoadInvalidConfigFile(t *testing.T) {
	path := writeConfig(t, "bad.yaml", ":\t:bad yaml:::")

	_, err := Load(LoadOptions{ConfigFile: path, Defaults: DefaultConfig()})
	assert.Error(t, err)
}

func TestLoadMissingExplicitConfigFile(t *testing.T) {
	_, err := Load(LoadOptions{
		ConfigFile: filepath.Join(t.TempDir(), "missing.yaml"),
		Defaults:   DefaultConfig(),
	})
	assert.Error(t, err)
}

func TestLoadInvalidConcurrency(t *testing.T) {
	_, err := Load(LoadOptions{
		Cmd:      newFlagSet(t, DefaultConfig(), "--concurrency=0"),
		Defaults: DefaultConfig(),
	})
	assert.Error(t, err)
}
