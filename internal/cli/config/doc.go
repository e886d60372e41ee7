// Package config provides CLI configuration for cybertoken.
//
//   - spec.go: CLIConfig struct (~/.cybertoken/config.yaml)
//   - loader.go: file, environment and flag merging
//   - verify.go: validation
package config
