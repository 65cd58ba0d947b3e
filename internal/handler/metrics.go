package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	assignmentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignments_processed_total",
			Help:      "Total number of assignment requests that created an assignment",
		},
	)

	assignmentsDuplicate = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignments_duplicate_total",
			Help:      "Total number of assignment requests for already assigned orders",
		},
	)

	assignmentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignments_failed_total",
			Help:      "Total number of failed assignment processing attempts",
		},
	)

	assignmentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignments_dlq_total",
			Help:      "Total number of assignment requests written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	assignmentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignment_processing_duration_seconds",
			Help:      "Histogram of assignment processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	assignmentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "delivery_service",
			Subsystem: "kafka_consumer",
			Name:      "assignments_in_progress",
			Help:      "Number of assignment requests currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		assignmentsProcessed,
		assignmentsDuplicate,
		assignmentsFailed,
		assignmentsDLQ,
		commitErrors,
		assignmentProcessingDuration,
		assignmentsInProgress,
	)
}
