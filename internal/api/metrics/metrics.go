// Package metrics defines and registers all custom Prometheus metrics for the
// HarvestConnect delivery service. It is the single source of truth for
// metric names, labels, and help strings.
//
// Metrics register against the default Prometheus registry via promauto at
// package load, before the HTTP server starts.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "harvest_delivery"

// ── Estimate metrics ──────────────────────────────────────────────────────────

// EstimatesServedTotal counts delivery estimates served.
// Labels:
//   - vehicle: the selected vehicle class id (e.g. "motorcycle")
//   - cache: "hit" (replayed from Redis) or "miss" (computed)
var EstimatesServedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_served_total",
		Help:      "Total number of delivery estimates served, by vehicle and cache result.",
	},
	[]string{"vehicle", "cache"},
)

// CalculationDuration measures how long one engine computation takes.
// Label:
//   - operation: "estimate" or "multi_seller_estimate"
var CalculationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "calculation_duration_seconds",
		Help:      "Duration of delivery cost calculations, end to end.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"operation"},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts newly created orders.
// Label:
//   - vehicle: the selected vehicle class id, or "multi_seller" for orders
//     shipped as independent per-seller deliveries
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by delivery vehicle.",
	},
	[]string{"vehicle"},
)

// ── Quote audit metrics ───────────────────────────────────────────────────────

// QuotesRecordedTotal counts quote-audit documents persisted successfully.
var QuotesRecordedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quotes_recorded_total",
		Help:      "Total number of quote audit records persisted.",
	},
)

// QuoteErrorsTotal counts quote-audit records that failed to persist.
// Label:
//   - reason: short description of the failure (e.g. "insert_failed")
var QuoteErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "quote_errors_total",
		Help:      "Total number of quote audit records that failed processing.",
	},
	[]string{"reason"},
)

// QuoteQueueDepth tracks the current number of quotes waiting in each worker
// channel of the audit dispatcher.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var QuoteQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "quote_queue_depth",
		Help:      "Current number of quotes pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
