package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for headerlint.
type FileConfig struct {
	Exceptions *string  `yaml:"exceptions,omitempty"`
	Include    *string  `yaml:"include,omitempty"`
	Exclude    *string  `yaml:"exclude,omitempty"`
	Extensions []string `yaml:"extensions,omitempty"`
	Threads    *int     `yaml:"threads,omitempty"`
	Format     *string  `yaml:"format,omitempty"`
	NoColor    *bool    `yaml:"no_color,omitempty"`
	LogLevel   *string  `yaml:"log_level,omitempty"`

	// CopyrightMarkers replaces the literal substrings a copyright block
	// must contain.
	CopyrightMarkers []string `yaml:"copyright_markers,omitempty"`
}

// LocalNames are the repo-local config file names, in search order.
var LocalNames = []string{".headerlint.yml", ".headerlint.yaml", "headerlint.yml", "headerlint.yaml"}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(repoRoot string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "headerlint", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}

// Save writes cfg as YAML to path.
func Save(path string, cfg FileConfig) error {
	b, err := yaml.Marshal(&cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
