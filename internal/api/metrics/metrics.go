// Package metrics defines and registers all custom Prometheus metrics for the
// store ratings API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "store_ratings"

// ── Rating lifecycle metrics ──────────────────────────────────────────────────

// RatingsCreatedTotal counts successfully submitted ratings.
// Label:
//   - value: the rating value as a string ("1"–"5")
var RatingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_created_total",
		Help:      "Total number of ratings successfully created, by value.",
	},
	[]string{"value"},
)

// RatingsUpdatedTotal counts successful rating updates.
// Label:
//   - value: the new rating value as a string ("1"–"5")
var RatingsUpdatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_updated_total",
		Help:      "Total number of ratings successfully updated, by new value.",
	},
	[]string{"value"},
)

// RatingsDeletedTotal counts successful rating deletions.
var RatingsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ratings_deleted_total",
		Help:      "Total number of ratings deleted.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "invalid_credentials", "rate_limited", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
