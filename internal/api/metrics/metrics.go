// Package metrics defines and registers all custom Prometheus metrics for the
// AgreeLink API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register with the default Prometheus registry at init via promauto;
// the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "agreelink"

// RegistrationsTotal counts account registrations.
// Label:
//   - result: "created" or "duplicate_email"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success", "not_found", or "bad_credentials"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ResourcesCreatedTotal counts successfully created marketplace resources.
// Label:
//   - resource: "proposal", "agreement", or "signature"
var ResourcesCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "resources_created_total",
		Help:      "Total number of resources created, by resource kind.",
	},
	[]string{"resource"},
)

// ValidationFailuresTotal counts requests rejected by the validation layer.
// Label:
//   - route: the matched route template (e.g. "/v1/api/proposals")
var ValidationFailuresTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "validation_failures_total",
		Help:      "Total number of requests rejected with a validation error.",
	},
	[]string{"route"},
)

// ActivityQueueDepth tracks audit events accepted but not yet persisted.
var ActivityQueueDepth = promauto.NewGaugeFunc(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending in the dispatcher.",
	},
	func() float64 { return activityDepth() },
)

var activityDepth = func() float64 { return 0 }

// SetActivityDepthFunc wires the dispatcher's depth reading into the gauge.
func SetActivityDepthFunc(fn func() float64) {
	if fn != nil {
		activityDepth = fn
	}
}
