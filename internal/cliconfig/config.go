// Package cliconfig loads the refsm CLI's persistent configuration file,
// grounded on projectdiscovery-alterx's config.go pattern.
package cliconfig

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// DefaultConfigFilePath is where Config is looked for when --config is
	// not given.
	DefaultConfigFilePath = filepath.Join(getUserHomeDir(), ".config/refsm/config.yaml")
)

// Config holds the CLI's persistent defaults: output formatting, the
// Graphviz binary to shell out to, and the directory DOT/PNG artifacts are
// written to when a command's --out flag is left unset.
type Config struct {
	OutputFormat string `yaml:"output_format"`
	NoColor      bool   `yaml:"no_color"`
	DotBinary    string `yaml:"dot_binary"`
	OutputDir    string `yaml:"output_dir"`
}

// DefaultConfig returns the CLI's built-in defaults, used whenever no
// config file is present.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: "text",
		NoColor:      false,
		DotBinary:    "dot",
		OutputDir:    "",
	}
}

// NewConfig reads Config from filePath, falling back to DefaultConfig for
// any field the file doesn't set.
func NewConfig(filePath string) (*Config, error) {
	bin, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(bin, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// GenerateSample writes a sample config holding DefaultConfig's values to
// filePath.
func GenerateSample(filePath string) error {
	bin, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, bin, 0644)
}

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return homeDir
}
