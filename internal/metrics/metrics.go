// Package metrics holds the prometheus collectors of the planner.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Placements counts applied placement transitions by kind.
	Placements = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trilo",
		Subsystem: "planner",
		Name:      "placements_total",
		Help:      "Schedule placements by transition (noop, head, tail, middle).",
	}, []string{"transition"})

	// Relocations counts container renumberings by container kind.
	Relocations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trilo",
		Subsystem: "planner",
		Name:      "relocations_total",
		Help:      "Container renumberings triggered by exhausted order keys.",
	}, []string{"container"})
)

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
