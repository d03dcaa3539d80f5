// Package metrics defines and registers all custom Prometheus metrics
// for the CRM API. It is the single source of truth for metric names,
// labels, and help strings. Metrics register with the default registry
// at import time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "crm"

// EntityWritesTotal counts audited entity mutations.
// Labels:
//   - entity: "user", "client", or "note"
//   - action: "created", "updated", or "deleted"
var EntityWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "entity_writes_total",
		Help:      "Total number of audited entity mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ActivityRecordFailuresTotal counts audit entries that could not be
// persisted. The originating mutation still succeeds; this counter is
// the only place those losses are visible.
var ActivityRecordFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_record_failures_total",
		Help:      "Total number of activity log entries dropped due to write failures.",
	},
)

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RemindersActive tracks the size of the active reminder set after each
// refresh cycle.
// Label:
//   - severity: "urgent" or "normal"
var RemindersActive = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "reminders_active",
		Help:      "Number of active meeting reminders, by severity.",
	},
	[]string{"severity"},
)
