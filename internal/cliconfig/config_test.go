package cliconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()
	require.Equal(t, "text", c.OutputFormat)
	require.False(t, c.NoColor)
	require.Equal(t, "dot", c.DotBinary)
	require.Equal(t, "", c.OutputDir)
}

func TestNewConfigReadsYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output_format: json\nno_color: true\noutput_dir: /tmp/refsm-out\n"), 0644))

	cfg, err := NewConfig(path)
	require.NoErrorf(t, err, "NewConfig(%v)", path)
	require.Equal(t, "json", cfg.OutputFormat)
	require.True(t, cfg.NoColor)
	require.Equal(t, "/tmp/refsm-out", cfg.OutputDir)
	require.Equal(t, "dot", cfg.DotBinary, "unset fields should keep the default, since NewConfig unmarshals onto DefaultConfig()")
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.Error(t, err)
}

func TestGenerateSampleRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.yaml")
	require.NoError(t, GenerateSample(path))

	cfg, err := NewConfig(path)
	require.NoErrorf(t, err, "NewConfig(%v)", path)
	require.Equal(t, *DefaultConfig(), *cfg)
}
