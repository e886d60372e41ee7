// Package confloader layers configuration sources with koanf.
//
// Priority (highest to lowest):
//
//  1. Command-line flags (LoadMap)
//  2. Environment variables (CYBERTOKEN_ prefix)
//  3. YAML configuration file
//  4. Defaults held by the target struct
//
// Environment keys are lower-cased and split on underscores, so
// CYBERTOKEN_TOKEN_PREFIX maps to token.prefix. Keys must therefore not
// contain underscores themselves.
package confloader
