package ontologyapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// lookupTotal counts lookup requests by endpoint and outcome.
	lookupTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "hpvco",
		Subsystem: "ontology_api",
		Name:      "lookups_total",
		Help:      "Number of lookup requests by endpoint and outcome.",
	}, []string{"endpoint", "outcome"})

	// loadDuration observes how long a document load takes end to end.
	loadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "hpvco",
		Subsystem: "ontology_api",
		Name:      "load_duration_seconds",
		Help:      "Ontology document load duration in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	// loadErrors counts failed document loads.
	loadErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "hpvco",
		Subsystem: "ontology_api",
		Name:      "load_errors_total",
		Help:      "Number of failed ontology document loads.",
	})
)
