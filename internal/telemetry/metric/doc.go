// Package metric provides Prometheus metrics for cybertoken.
//
// The CLI is short-lived, so metrics are not scraped over HTTP. Instead
// the registry is written in the text exposition format to a file that the
// node_exporter textfile collector picks up.
//
// Metrics:
//
//   - cybertoken_tokens_generated_total
//   - cybertoken_tokens_parsed_total{result="valid|checksum_mismatch|error"}
//   - cybertoken_parse_errors_total{code}
package metric
