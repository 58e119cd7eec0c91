// Package metrics defines all custom Prometheus metrics for the marketplace
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// LoginAttemptsTotal counts login attempts by outcome.
// Labels:
//   - result: "success", "denied", "not_found", "invalid_input", "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by outcome.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token checks at the authorization gate.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session-token verifications, by result.",
	},
	[]string{"result"},
)

// TokensRevokedTotal counts tokens denylisted through signout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of session tokens revoked before natural expiry.",
	},
)

// ProductMutationsTotal counts product write operations.
// Labels:
//   - operation: "create", "update", "delete", "bulk_delete"
//   - result: "ok" or "rejected"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of product mutations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// AuditQueueDepth tracks events waiting in each audit dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var AuditQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "audit_queue_depth",
		Help:      "Current number of auth events pending in each audit worker channel.",
	},
	[]string{"worker_id"},
)

// AuditEventsDroppedTotal counts auth events dropped under backpressure.
var AuditEventsDroppedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "audit_events_dropped_total",
		Help:      "Total number of auth events dropped because a worker queue was full.",
	},
)
