package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	MessagesProcessed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "monitor_messages_processed_total",
			Help: "Total number of chat messages pushed through the monitor",
		},
	)

	Decisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_decisions_total",
			Help: "Monitor decisions by reason and outcome",
		},
		[]string{"reason", "responded"},
	)

	FieldsExtracted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_fields_extracted_total",
			Help: "Tenant fields extracted by field name",
		},
		[]string{"field"},
	)

	StoreErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "monitor_store_errors_total",
			Help: "Extraction store failures by operation",
		},
		[]string{"operation"},
	)

	SimulatedMessages = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "simulator_messages_total",
			Help: "Synthetic broker messages generated by category",
		},
		[]string{"category"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)
