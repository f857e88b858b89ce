// Package metrics defines and registers all custom Prometheus metrics for the
// club dashboard API. It is the single source of truth for metric names,
// labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "club"

// LoginAttemptsTotal counts authentication attempts.
// Labels:
//   - role: the partition the caller targeted ("member", "bearer", "admin")
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by role and result.",
	},
	[]string{"role", "result"},
)

// SessionRestoresTotal counts startup session restores.
// Label:
//   - result: "restored", "empty", or "corrupt"
var SessionRestoresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_restores_total",
		Help:      "Total number of persisted-session restore attempts, by result.",
	},
	[]string{"result"},
)

// NotificationsDispatchedTotal counts notifications handed to the dispatcher.
// Label:
//   - entity: the entity the notification concerns (e.g. "member", "project")
var NotificationsDispatchedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_dispatched_total",
		Help:      "Total number of management notifications dispatched, by entity.",
	},
	[]string{"entity"},
)

// ManagementActionsTotal counts admin management operations that reached the
// service layer.
// Labels:
//   - entity: "member", "project", "announcement", "attendance"
//   - action: "add", "update", "save", "delete"
var ManagementActionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "management_actions_total",
		Help:      "Total number of admin management operations, by entity and action.",
	},
	[]string{"entity", "action"},
)
