// Package output renders command results for the cybertoken CLI.
//
// Three formats are supported: aligned tables for terminals, and JSON or
// YAML for scripts. Tokens themselves are printed verbatim; only logs are
// redacted.
package output
