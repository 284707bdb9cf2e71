// Package observability registers the Prometheus metrics for the pickup
// lifecycle. Counters only; the service has no latency-sensitive internals
// worth histogramming.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PickupsCreated counts accepted pickup requests.
	PickupsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecoport_pickups_created_total",
		Help: "Number of pickup requests created.",
	})

	// StatusTransitions counts accepted lifecycle transitions by target status.
	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ecoport_status_transitions_total",
		Help: "Number of accepted pickup status transitions.",
	}, []string{"to"})

	// DriversAssigned counts successful driver assignments.
	DriversAssigned = promauto.NewCounter(prometheus.CounterOpts{
		Name: "ecoport_drivers_assigned_total",
		Help: "Number of successful driver assignments.",
	})
)
