// Package metrics registers the Prometheus instruments for the state store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Mutations counts committed mutations by operation name.
	Mutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gurukul_mutations_total",
		Help: "Committed document mutations by operation.",
	}, []string{"op"})

	// MutationErrors counts rejected mutations by operation name.
	MutationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gurukul_mutation_errors_total",
		Help: "Rejected document mutations by operation.",
	}, []string{"op"})

	// PersistFailures counts saves that failed after the in-memory commit.
	PersistFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gurukul_persist_failures_total",
		Help: "Document saves that failed; the in-memory document stayed authoritative.",
	})

	// DocumentBytes tracks the encoded size of the last persisted document.
	DocumentBytes = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "gurukul_document_bytes",
		Help: "Encoded size of the most recently persisted document.",
	})
)
