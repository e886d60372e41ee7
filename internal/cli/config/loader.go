// Package config provides CLI configuration for cybertoken.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yndnr/cybertoken-go/internal/infra/confloader"
)

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".cybertoken", "config.yaml")
}

// Load builds the effective configuration.
//
// An explicit path must exist. When path is empty the default path is used
// if present and skipped otherwise. flags holds dot-delimited keys set on
// the command line and wins over every other source.
func Load(path string, flags map[string]any) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg := Default()
	loader := confloader.NewLoader(confloader.WithConfigFile(path))
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	if len(flags) > 0 {
		if err := loader.LoadMap(flags); err != nil {
			return nil, err
		}
		if err := loader.Unmarshal(cfg); err != nil {
			return nil, fmt.Errorf("unmarshal flags: %w", err)
		}
	}

	if err := Verify(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
