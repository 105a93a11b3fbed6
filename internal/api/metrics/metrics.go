// Package metrics defines and registers all custom Prometheus metrics for
// the inventory API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts by outcome.
// Label:
//   - result: "success", "invalid_credentials", "deactivated", or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by outcome.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts by role and outcome.
// Labels:
//   - role: "customer" or "supplier"
//   - result: "success", "validation_failed", "duplicate_email", or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, labelled by role and outcome.",
	},
	[]string{"role", "result"},
)

// ── Dashboard metrics ─────────────────────────────────────────────────────────

// DashboardRequestsTotal counts dashboard loads that passed authorization.
// Label:
//   - role: the dashboard's role ("admin", "customer", "supplier")
var DashboardRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dashboard_requests_total",
		Help:      "Total number of authorized dashboard loads, by role.",
	},
	[]string{"role"},
)

// DashboardQueryDuration measures how long the aggregate queries behind a
// dashboard take end-to-end.
// Label:
//   - role: the dashboard's role
var DashboardQueryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "dashboard_query_duration_seconds",
		Help:      "Duration of the aggregate queries backing each dashboard.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"role"},
)

// ── Queue metrics ─────────────────────────────────────────────────────────────

// LastLoginQueueDepth tracks pending last-login updates per worker shard.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var LastLoginQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_login_queue_depth",
		Help:      "Current number of pending last-login updates in each worker shard.",
	},
	[]string{"worker_id"},
)
