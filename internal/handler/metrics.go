package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	adjustmentsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "stock_adjustments_processed_total",
			Help:      "Total number of successfully applied stock adjustments",
		},
	)

	adjustmentsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "stock_adjustments_failed_total",
			Help:      "Total number of failed stock adjustment attempts",
		},
	)

	adjustmentsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "stock_adjustments_dlq_total",
			Help:      "Total number of stock adjustments written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	adjustmentProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "stock_adjustment_duration_seconds",
			Help:      "Histogram of stock adjustment processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	adjustmentsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fulfillment",
			Subsystem: "kafka_consumer",
			Name:      "stock_adjustments_in_progress",
			Help:      "Number of stock adjustments currently being processed",
		},
	)
)

var (
	checkoutRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "fulfillment",
			Subsystem: "http",
			Name:      "checkout_requests_total",
			Help:      "Total number of checkout requests by result",
		},
		[]string{"result"},
	)

	checkoutRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "fulfillment",
			Subsystem: "http",
			Name:      "checkout_request_duration_seconds",
			Help:      "Histogram of checkout request durations",
			Buckets:   prometheus.DefBuckets,
		},
	)

	checkoutRequestsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "fulfillment",
			Subsystem: "http",
			Name:      "checkout_requests_in_progress",
			Help:      "Number of in-progress checkout requests",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		adjustmentsProcessed,
		adjustmentsFailed,
		adjustmentsDLQ,
		commitErrors,
		adjustmentProcessingDuration,
		adjustmentsInProgress,

		checkoutRequestTotal,
		checkoutRequestDuration,
		checkoutRequestsInProgress,
	)
}
