package player

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the player's Prometheus collectors.
type Metrics struct {
	// Runs counts finished runs by algorithm and outcome (completed,
	// interrupted, cancelled, failed).
	Runs *prometheus.CounterVec

	// Steps counts rendered steps by algorithm and kind.
	Steps *prometheus.CounterVec

	// RenderErrors counts renderer failures by algorithm, skipped or not.
	RenderErrors *prometheus.CounterVec

	// GenerateSeconds observes log generation time.
	GenerateSeconds prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg when reg
// is non-nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algostep",
			Subsystem: "player",
			Name:      "runs_total",
			Help:      "Finished runs by algorithm and outcome.",
		}, []string{"algorithm", "outcome"}),
		Steps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algostep",
			Subsystem: "player",
			Name:      "steps_rendered_total",
			Help:      "Rendered steps by algorithm and kind.",
		}, []string{"algorithm", "kind"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "algostep",
			Subsystem: "player",
			Name:      "render_errors_total",
			Help:      "Renderer failures by algorithm.",
		}, []string{"algorithm"}),
		GenerateSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "algostep",
			Subsystem: "player",
			Name:      "generate_seconds",
			Help:      "Time spent generating step logs.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Runs, m.Steps, m.RenderErrors, m.GenerateSeconds)
	}
	return m
}

func (m *Metrics) run(id, outcome string) {
	if m != nil {
		m.Runs.WithLabelValues(id, outcome).Inc()
	}
}

func (m *Metrics) step(id, kind string) {
	if m != nil {
		m.Steps.WithLabelValues(id, kind).Inc()
	}
}

func (m *Metrics) renderError(id string) {
	if m != nil {
		m.RenderErrors.WithLabelValues(id).Inc()
	}
}

func (m *Metrics) generated(seconds float64) {
	if m != nil {
		m.GenerateSeconds.Observe(seconds)
	}
}
