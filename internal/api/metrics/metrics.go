// Package metrics defines and registers the custom Prometheus metrics of the
// wellness service. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry on package init via
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wellness"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// AuthRequestsTotal counts login/signup/logout requests.
// Labels:
//   - operation: "login", "signup" or "logout"
//   - result: "ok" or the failure kind (e.g. "validation", "not_found", "in_flight")
var AuthRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_requests_total",
		Help:      "Total number of authentication requests by operation and result.",
	},
	[]string{"operation", "result"},
)

// OnboardingCompletedTotal counts sessions that finished the questionnaire.
var OnboardingCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "onboarding_completed_total",
		Help:      "Total number of completed onboarding questionnaires.",
	},
)

// ── Profile sync metrics ──────────────────────────────────────────────────────

// ProfileSyncTotal counts detached user-record updates.
// Label:
//   - result: "ok", "error" or "dropped" (queue full or shut down)
var ProfileSyncTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "profile_sync_total",
		Help:      "Total number of detached profile updates, labelled by result.",
	},
	[]string{"result"},
)

// ProfileSyncQueueDepth tracks pending jobs in each worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var ProfileSyncQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "profile_sync_queue_depth",
		Help:      "Current number of profile sync jobs pending in each worker channel.",
	},
	[]string{"worker_id"},
)

// ProfileSyncDuration measures the remote update call.
// Label:
//   - result: "ok" or "error"
var ProfileSyncDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "profile_sync_duration_seconds",
		Help:      "Duration of detached profile updates against the user store.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"result"},
)
