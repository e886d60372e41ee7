// Package config provides CLI configuration for cybertoken.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yndnr/cybertoken-go/internal/cli/output"
	"github.com/yndnr/cybertoken-go/internal/telemetry/logger"
)

// Verify validates the configuration.
func Verify(cfg *CLIConfig) error {
	if err := verifyToken(&cfg.Token); err != nil {
		return err
	}
	if !logger.ValidLevel(cfg.Log.Level) {
		return fmt.Errorf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level)
	}
	switch cfg.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format %q is not one of text, json", cfg.Log.Format)
	}
	if _, err := output.ParseFormat(cfg.Output.Format); err != nil {
		return fmt.Errorf("output.format: %w", err)
	}
	return nil
}

func verifyToken(cfg *TokenSection) error {
	if cfg.Prefix == "" {
		return errors.New("token.prefix is required")
	}
	// The parser splits on the first underscore.
	if strings.Contains(cfg.Prefix, "_") {
		return fmt.Errorf("token.prefix %q must not contain an underscore", cfg.Prefix)
	}
	if cfg.Version < 0 || cfg.Version > 255 {
		return fmt.Errorf("token.version %d must be between 0 and 255", cfg.Version)
	}
	// One entropy byte is only the marker byte and yields an empty secret.
	if cfg.Entropy < 2 {
		return fmt.Errorf("token.entropy %d must be at least 2", cfg.Entropy)
	}
	return nil
}
