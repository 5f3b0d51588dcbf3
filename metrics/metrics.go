// Package metrics defines Prometheus metrics for maze solves.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome label values of SolvesTotal.
const (
	OutcomeSolved     = "solved"
	OutcomeNoSolution = "no_solution"
)

// Recorder owns a private registry so independent runs (and tests) do not
// share counters.
type Recorder struct {
	Registry *prometheus.Registry

	SolvesTotal    *prometheus.CounterVec
	StatesExplored *prometheus.HistogramVec
	PathLength     *prometheus.HistogramVec
}

// New builds a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),

		SolvesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazesolver_solves_total",
				Help: "Total solves by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),

		StatesExplored: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mazesolver_states_explored",
				Help:    "States removed from the frontier per solve",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
			[]string{"algorithm"},
		),

		PathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "mazesolver_path_length",
				Help:    "Actions in the solution path per solved maze",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"algorithm"},
		),
	}

	r.Registry.MustRegister(r.SolvesTotal, r.StatesExplored, r.PathLength)

	return r
}

// Observe records one solve. Path length is only observed for solved mazes.
func (r *Recorder) Observe(algorithm string, explored, pathLen int, solved bool) {
	outcome := OutcomeNoSolution
	if solved {
		outcome = OutcomeSolved
		r.PathLength.WithLabelValues(algorithm).Observe(float64(pathLen))
	}
	r.SolvesTotal.WithLabelValues(algorithm, outcome).Inc()
	r.StatesExplored.WithLabelValues(algorithm).Observe(float64(explored))
}

// WriteTextfile exports the registry in the Prometheus text format, suitable
// for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return fmt.Errorf("metrics: write %q: %w", path, err)
	}
	return nil
}
