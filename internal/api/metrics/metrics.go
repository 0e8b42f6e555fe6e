// Package metrics defines and registers all custom Prometheus metrics
// for the jobtrail API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry via promauto at
// package init; the router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "jobtrail"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts account creations.
// Label:
//   - result: "success" or "conflict"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of signup attempts, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure" (every failure is reported the same
//     way to the client; the label never distinguishes the cause either)
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// ── Job metrics ───────────────────────────────────────────────────────────────

// JobMutationsTotal counts successful job writes.
// Label:
//   - operation: "create", "update", or "delete"
var JobMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_mutations_total",
		Help:      "Total number of successful job mutations, by operation.",
	},
	[]string{"operation"},
)

// JobListCacheTotal counts list-cache lookups.
// Label:
//   - result: "hit" (served from Redis) or "miss" (fell through to Mongo)
var JobListCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "job_list_cache_total",
		Help:      "Total number of job list cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
