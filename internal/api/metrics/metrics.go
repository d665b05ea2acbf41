// Package metrics defines and registers all custom Prometheus metrics for the
// customer-portal API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics endpoint is served by the echoprometheus handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "portal"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "denied" (wrong password and unknown email are the same bucket)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// TokenVerificationsTotal counts bearer-token resolutions by the auth guard.
// Label:
//   - result: "ok" or "rejected"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of bearer token verifications, by result.",
	},
	[]string{"result"},
)

// PasswordResetsTotal tracks the reset lifecycle.
// Label:
//   - stage: "requested" (token generated) or "completed" (password changed)
var PasswordResetsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "password_resets_total",
		Help:      "Total number of password reset events, by lifecycle stage.",
	},
	[]string{"stage"},
)

// ── Salesforce proxy metrics ─────────────────────────────────────────────────

// SalesforceRequestsTotal counts calls to the (mocked) Salesforce backend.
// Labels:
//   - resource: "documents" or "cases"
//   - operation: "list" or "create"
var SalesforceRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "salesforce_requests_total",
		Help:      "Total number of Salesforce backend calls, by resource and operation.",
	},
	[]string{"resource", "operation"},
)

// SalesforceCacheTotal counts cache lookups in front of the Salesforce store.
// Label:
//   - result: "hit" or "miss"
var SalesforceCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "salesforce_cache_total",
		Help:      "Total number of Salesforce response cache lookups, by result.",
	},
	[]string{"result"},
)
