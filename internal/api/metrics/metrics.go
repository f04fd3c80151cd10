// Package metrics defines and registers all custom Prometheus metrics for the
// blog backend. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics are registered with the default Prometheus registry at package
// initialisation; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "blogcms"

// ── Admin metrics ─────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts dashboard login attempts.
// Label:
//   - result: "success", "failure" or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// PostMutationsTotal counts admin writes against the post store.
// Labels:
//   - op: "create", "update" or "delete"
//   - result: "ok", "conflict", "invalid", "not_found" or "error"
var PostMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_mutations_total",
		Help:      "Total number of post create/update/delete operations, by outcome.",
	},
	[]string{"op", "result"},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactSubmissionsTotal counts contact form submissions.
// Label:
//   - result: "ok", "duplicate", "invalid" or "error"
var ContactSubmissionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_submissions_total",
		Help:      "Total number of contact form submissions, by outcome.",
	},
	[]string{"result"},
)

// NotificationsTotal counts contact notifications handled by the dispatcher.
// Label:
//   - result: "sent", "failed" or "dropped" (queue full)
var NotificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Total number of contact notifications, by outcome.",
	},
	[]string{"result"},
)

// NotificationQueueDepth tracks messages waiting for a notification worker.
var NotificationQueueDepth = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "notification_queue_depth",
		Help:      "Current number of contact notifications pending in the dispatcher queue.",
	},
)
