// Package config handles workspace configuration for ristex.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds conversion defaults and classifier extensions, stored in
// .ristex/config.yml. Command-line flags override these values.
type Config struct {
	Superscript string `yaml:"super,omitempty"` // superscript markup template
	Subscript   string `yaml:"sub,omitempty"`   // subscript markup template
	Colcap      *bool  `yaml:"colcap,omitempty"`
	NoDash      bool   `yaml:"nodash,omitempty"`
	ShortYear   bool   `yaml:"short_year,omitempty"`
	SkipA       bool   `yaml:"skip_a,omitempty"`
	ArXiv       *bool  `yaml:"arxiv,omitempty"`
	Nature      bool   `yaml:"nature,omitempty"`
	SciPost     bool   `yaml:"scipost,omitempty"`
	EtAl        int    `yaml:"etal,omitempty"`

	// Names and Elements extend the built-in protection rule sets.
	Names    []string `yaml:"names,omitempty"`
	Elements []string `yaml:"elements,omitempty"`

	// DB is the conversion store path, relative to the workspace root.
	DB string `yaml:"db,omitempty"`
}

const (
	// RistexDir marks a ristex workspace.
	RistexDir  = ".ristex"
	ConfigFile = "config.yml"
	DBFile     = "refs.db"
)

// Dir returns the .ristex directory under root.
func Dir(root string) string {
	return filepath.Join(root, RistexDir)
}

// Path returns the config file path under root.
func Path(root string) string {
	return filepath.Join(root, RistexDir, ConfigFile)
}

// DBPath returns the conversion store path for the workspace, honoring a
// configured override.
func (c *Config) DBPath(root string) string {
	if c.DB != "" {
		if filepath.IsAbs(c.DB) {
			return c.DB
		}
		return filepath.Join(root, c.DB)
	}
	return filepath.Join(root, RistexDir, DBFile)
}

// IsWorkspace checks whether root contains a ristex workspace.
func IsWorkspace(root string) bool {
	info, err := os.Stat(Dir(root))
	return err == nil && info.IsDir()
}

// FindWorkspace walks up from start to the nearest ristex workspace.
func FindWorkspace(start string) (string, error) {
	abs, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	for {
		if IsWorkspace(abs) {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not in a ristex workspace (no %s directory found)", RistexDir)
		}
		abs = parent
	}
}

// Load reads the configuration of the workspace at root. A missing config
// file yields an empty configuration.
func Load(root string) (*Config, error) {
	data, err := os.ReadFile(Path(root))
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return &cfg, nil
}

// Save writes the configuration to the workspace at root, creating the
// .ristex directory if needed.
func (c *Config) Save(root string) error {
	if err := os.MkdirAll(Dir(root), 0755); err != nil {
		return fmt.Errorf("creating %s: %w", Dir(root), err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(Path(root), data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
