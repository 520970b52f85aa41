// Package metrics defines and registers all custom Prometheus metrics for
// the HoteliaSEM identity platform. It is the single source of truth for
// metric names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "hotelia"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", "bad_credentials", "disabled", "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts successful registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered, by role.",
	},
	[]string{"role"},
)

// SessionsRevokedTotal counts session revocations.
// Label:
//   - reason: "logout" or "force_disconnect"
var SessionsRevokedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_revoked_total",
		Help:      "Total number of sessions revoked, labelled by reason.",
	},
	[]string{"reason"},
)

// ── Directory metrics ─────────────────────────────────────────────────────────

// DirectoryMutationsTotal counts administrative directory mutations.
// Labels:
//   - action: "deactivate", "activate", "delete"
//   - result: "ok", "admin_protected", "not_found", "error"
var DirectoryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_mutations_total",
		Help:      "Total number of administrative account mutations, by action and result.",
	},
	[]string{"action", "result"},
)
