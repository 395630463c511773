package events

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "events",
		Name:      "published_total",
		Help:      "Order lifecycle events published, by type.",
	}, []string{"type"})

	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "events",
		Name:      "publish_errors_total",
		Help:      "Order lifecycle events that could not be published.",
	})
)
