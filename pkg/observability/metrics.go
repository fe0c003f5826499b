package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts engine activity. All operations are cheap counter
// increments; the engine itself does no I/O for them.
type Metrics struct {
	Resolutions prometheus.Counter
	Projections prometheus.Counter
	Cycles      prometheus.Counter
	PathLength  prometheus.Histogram
}

// NewMetrics creates the engine collectors and registers them with the
// given registerer. Pass prometheus.DefaultRegisterer for the usual
// global registry, or a private registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trailhead",
			Name:      "resolutions_total",
			Help:      "Number of next-question resolutions performed.",
		}),
		Projections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trailhead",
			Name:      "projections_total",
			Help:      "Number of path projections performed.",
		}),
		Cycles: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "trailhead",
			Name:      "cycles_detected_total",
			Help:      "Number of projections cut short by a cycle in the form graph.",
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "trailhead",
			Name:      "projected_path_length",
			Help:      "Length of projected paths, in questions.",
			Buckets:   prometheus.LinearBuckets(0, 5, 10),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Resolutions, m.Projections, m.Cycles, m.PathLength)
	}
	return m
}

// ObserveResolution records one resolver call.
func (m *Metrics) ObserveResolution() {
	if m == nil {
		return
	}
	m.Resolutions.Inc()
}

// ObserveProjection records one projector call and the resulting path
// length.
func (m *Metrics) ObserveProjection(pathLen int) {
	if m == nil {
		return
	}
	m.Projections.Inc()
	m.PathLength.Observe(float64(pathLen))
}

// ObserveCycle records a projection that hit a cycle.
func (m *Metrics) ObserveCycle() {
	if m == nil {
		return
	}
	m.Cycles.Inc()
}
