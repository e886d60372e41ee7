// Package metric provides Prometheus metrics for cybertoken.
package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cybertoken"

// Parse results, used as the "result" label.
const (
	ResultValid            = "valid"
	ResultChecksumMismatch = "checksum_mismatch"
	ResultError            = "error"
)

// Registry holds the application metrics on a private registry, so that
// tests and repeated CLI runs never collide on the default registerer.
type Registry struct {
	registry *prometheus.Registry

	TokensGenerated prometheus.Counter
	TokensParsed    *prometheus.CounterVec
	ParseErrors     *prometheus.CounterVec
}

// NewRegistry creates and registers all metrics.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		TokensGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_generated_total",
			Help:      "The total number of tokens generated",
		}),
		TokensParsed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tokens_parsed_total",
			Help:      "The total number of tokens parsed, by result",
		}, []string{"result"}),
		ParseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_errors_total",
			Help:      "The total number of hard parse errors, by error code",
		}, []string{"code"}),
	}

	r.registry.MustRegister(r.TokensGenerated, r.TokensParsed, r.ParseErrors)
	return r
}

// IncGenerated records n generated tokens.
func (r *Registry) IncGenerated(n int) {
	r.TokensGenerated.Add(float64(n))
}

// ObserveParse records the outcome of one parse. code is the parse error
// code and is only used when result is ResultError.
func (r *Registry) ObserveParse(result, code string) {
	r.TokensParsed.WithLabelValues(result).Inc()
	if result == ResultError {
		if code == "" {
			code = "unknown"
		}
		r.ParseErrors.WithLabelValues(code).Inc()
	}
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path in the text
// exposition format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
