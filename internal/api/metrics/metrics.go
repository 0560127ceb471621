// Package metrics defines and registers all custom Prometheus metrics for
// the savings API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "savings"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successfully created accounts.
var RegistrationsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of successful user registrations.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RoleDenialsTotal counts requests rejected by the role guard.
// Label:
//   - role: the caller's role, or "none" when no identity was attached
var RoleDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "role_denials_total",
		Help:      "Total number of requests rejected by role-based authorization.",
	},
	[]string{"role"},
)

// ── Webhook metrics ───────────────────────────────────────────────────────────

// WebhookVerificationsTotal counts signature verification outcomes on the
// gateway webhook endpoint.
// Label:
//   - result: "ok", "missing_signature" or "invalid_signature"
var WebhookVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "webhook_verifications_total",
		Help:      "Total number of webhook signature verifications, labelled by result.",
	},
	[]string{"result"},
)

// ── Event metrics ─────────────────────────────────────────────────────────────

// EventsProcessedTotal counts gateway events that completed processing.
// Label:
//   - type: the gateway event type (e.g. "plan.funded")
var EventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_processed_total",
		Help:      "Total number of gateway events successfully processed.",
	},
	[]string{"type"},
)

// EventsErrorsTotal counts gateway events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "plan_not_found", "update_failed")
var EventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_errors_total",
		Help:      "Total number of gateway events that failed processing.",
	},
	[]string{"reason"},
)

// EventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var EventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Plan metrics ──────────────────────────────────────────────────────────────

// PlansCreatedTotal counts newly created savings plans.
// Label:
//   - type: "lock" or "autosave"
var PlansCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "plans_created_total",
		Help:      "Total number of savings plans created, by plan type.",
	},
	[]string{"type"},
)
