package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	IndexBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qvis_index_builds_total",
		Help: "Total number of category/type index builds completed.",
	})

	EventsIndexed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qvis_events_indexed_total",
		Help: "Total number of events placed into index buckets.",
	})

	ParseFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qvis_parse_failures_total",
		Help: "Total number of events skipped during index builds because the parser could not resolve them.",
	})

	TracesDecoded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "qvis_traces_decoded_total",
		Help: "Total number of traces decoded from serialized documents.",
	})
)
