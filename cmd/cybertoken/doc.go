// Package main provides the entry point for the cybertoken CLI.
//
// cybertoken generates and checks prefixed, checksummed API tokens:
//
//	cybertoken --prefix zugriff generate -n 3
//	cybertoken --prefix zugriff inspect zugriff_icnocrRLDoZ3uCPosLA0277hQ58ob379X43U
//	cybertoken validate - < tokens.txt
//	cybertoken config init
//
// Configuration is read from ~/.cybertoken/config.yaml (or --config), then
// CYBERTOKEN_* environment variables, then command-line flags.
package main
