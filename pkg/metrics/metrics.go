// Package metrics holds the application's Prometheus collectors and shared
// instrumentation defaults.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// MutationOutcomes counts graph mutations by operation and outcome. The
// outcome label is one of "ok", "denied", "rejected" or "error".
var MutationOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint: gochecknoglobals
	Name: "siteguard_mutations_total",
	Help: "Number of graph mutations processed, by operation and outcome.",
}, []string{"op", "outcome"})
