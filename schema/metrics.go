package schema

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics instruments graph assembly.
type Metrics struct {
	graphsAssembled prometheus.Counter
	piecesGenerated *prometheus.CounterVec
	assembleSeconds prometheus.Histogram
}

// NewMetrics creates and registers assembly metrics. A nil registerer
// yields unregistered (no-op collectable) metrics, which keeps tests free
// of global registry state.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		graphsAssembled: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "localgraph",
			Name:      "graphs_assembled_total",
			Help:      "Number of page graphs assembled.",
		}),
		piecesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "localgraph",
			Name:      "pieces_generated_total",
			Help:      "Number of nodes generated, by piece.",
		}, []string{"piece"}),
		assembleSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "localgraph",
			Name:      "assemble_duration_seconds",
			Help:      "Time spent assembling one page graph.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.graphsAssembled, m.piecesGenerated, m.assembleSeconds)
	}
	return m
}
