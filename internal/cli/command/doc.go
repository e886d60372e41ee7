// Package command provides the command definitions of the cybertoken CLI.
//
// It uses urfave/cli/v2:
//
//   - root.go: App, global flags, configuration and logger setup
//   - generate.go: token generation
//   - inspect.go: full decode of tokens
//   - validate.go: pass/fail checks with exit status
//   - config.go: effective configuration and config file bootstrap
package command
