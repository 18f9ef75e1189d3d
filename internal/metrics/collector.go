// Package metrics exposes search statistics as Prometheus metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/napolitain/solver-geode/internal/solver/search"
)

const namespace = "geodes"

// SearchCollector records every finished blueprint search.
// It satisfies solver.Observer and is safe for concurrent use.
type SearchCollector struct {
	searchesTotal  *prometheus.CounterVec
	statesTotal    *prometheus.CounterVec
	searchDuration *prometheus.HistogramVec
	bestGeodes     *prometheus.GaugeVec
}

// NewSearchCollector creates a new search metrics collector
func NewSearchCollector() *SearchCollector {
	return &SearchCollector{
		// Searches by horizon and whether they ran to completion
		searchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "runs_total",
				Help:      "Total number of blueprint searches by horizon and completion",
			},
			[]string{"horizon", "exhausted"},
		),

		// Popped states by what the driver did with them
		statesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "states_total",
				Help:      "Plan states popped from the frontier, by outcome",
			},
			[]string{"outcome"},
		),

		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "search",
				Name:      "duration_seconds",
				Help:      "Wall time of one blueprint search",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 5.0},
			},
			[]string{"horizon"},
		),

		bestGeodes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "best_geodes",
				Help:      "Most geodes found for a blueprint at a horizon",
			},
			[]string{"blueprint", "horizon"},
		),
	}
}

// Register registers all search metrics with the registry
func (c *SearchCollector) Register(reg prometheus.Registerer) error {
	metrics := []prometheus.Collector{
		c.searchesTotal,
		c.statesTotal,
		c.searchDuration,
		c.bestGeodes,
	}

	for _, metric := range metrics {
		if err := reg.Register(metric); err != nil {
			return err
		}
	}

	return nil
}

// ObserveSearch records one finished search
func (c *SearchCollector) ObserveSearch(result search.Result, elapsed time.Duration) {
	horizon := strconv.Itoa(result.Horizon)

	c.searchesTotal.WithLabelValues(horizon, strconv.FormatBool(result.Exhausted)).Inc()
	c.searchDuration.WithLabelValues(horizon).Observe(elapsed.Seconds())
	c.bestGeodes.WithLabelValues(strconv.Itoa(result.BlueprintID), horizon).Set(float64(result.Geodes))

	s := result.Stats
	c.statesTotal.WithLabelValues("expanded").Add(float64(s.Expanded))
	c.statesTotal.WithLabelValues("duplicate").Add(float64(s.Duplicates))
	c.statesTotal.WithLabelValues("dominated").Add(float64(s.Dominated))
	c.statesTotal.WithLabelValues("bounded").Add(float64(s.Bounded))
	c.statesTotal.WithLabelValues("terminal").Add(float64(s.Terminal))
}

// WriteTextfile writes every metric in g to path in the node exporter textfile format
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
