// Package config provides CLI configuration for cybertoken.
package config

import "github.com/yndnr/cybertoken-go/pkg/cybertoken"

// CLIConfig is the configuration for the cybertoken CLI.
type CLIConfig struct {
	Token   TokenSection   `koanf:"token" yaml:"token"`
	Log     LogSection     `koanf:"log" yaml:"log"`
	Output  OutputSection  `koanf:"output" yaml:"output"`
	Metrics MetricsSection `koanf:"metrics" yaml:"metrics"`
}

// TokenSection configures the token codec.
type TokenSection struct {
	Prefix  string `koanf:"prefix" yaml:"prefix"`
	Version int    `koanf:"version" yaml:"version"`
	Entropy int    `koanf:"entropy" yaml:"entropy"`
}

// LogSection configures diagnostic logging on stderr.
type LogSection struct {
	Level  string `koanf:"level" yaml:"level"`   // debug, info, warn, error
	Format string `koanf:"format" yaml:"format"` // text, json
}

// OutputSection configures command output on stdout.
type OutputSection struct {
	Format  string `koanf:"format" yaml:"format"` // table, json, yaml
	Headers bool   `koanf:"headers" yaml:"headers"`
}

// MetricsSection configures the Prometheus textfile export.
type MetricsSection struct {
	// Textfile is written after each command when set.
	Textfile string `koanf:"textfile" yaml:"textfile"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Token: TokenSection{
			Prefix:  "cybertoken",
			Version: 0,
			Entropy: cybertoken.DefaultEntropyBytes,
		},
		Log: LogSection{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputSection{
			Format:  "table",
			Headers: true,
		},
	}
}

// Codec builds the token codec described by the token section.
// Call Verify first; Codec panics on an entropy length below 1.
func (c *CLIConfig) Codec() cybertoken.Config {
	return cybertoken.New(c.Token.Prefix,
		cybertoken.WithVersion(byte(c.Token.Version)),
		cybertoken.WithEntropyBytes(c.Token.Entropy),
	)
}

// Keys returns the configuration as flat koanf keys, the same names used by
// config files, CYBERTOKEN_ variables and flags.
func (c *CLIConfig) Keys() map[string]any {
	return map[string]any{
		"token.prefix":     c.Token.Prefix,
		"token.version":    c.Token.Version,
		"token.entropy":    c.Token.Entropy,
		"log.level":        c.Log.Level,
		"log.format":       c.Log.Format,
		"output.format":    c.Output.Format,
		"output.headers":   c.Output.Headers,
		"metrics.textfile": c.Metrics.Textfile,
	}
}
