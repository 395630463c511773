package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	checkoutsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout",
		Name:      "checkouts_total",
		Help:      "Checkout attempts by result.",
	}, []string{"result"})

	checkoutDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout",
		Name:      "duration_seconds",
		Help:      "Checkout pipeline latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	checkoutRollbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "checkout",
		Name:      "rollbacks_total",
		Help:      "Checkout pipelines rolled back, by failing action.",
	}, []string{"action"})

	paymentTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "payment",
		Name:      "transactions_total",
		Help:      "Payment gateway calls by method, transaction type and status.",
	}, []string{"method", "type", "status"})

	inventoryConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "inventory",
		Name:      "version_conflicts_total",
		Help:      "Optimistic concurrency conflicts on inventory records.",
	})

	orderTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fulfillment",
		Subsystem: "orders",
		Name:      "transitions_total",
		Help:      "Order lifecycle operations by operation and result.",
	}, []string{"op", "result"})
)
