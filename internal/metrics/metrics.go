package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mcoot/golfscore/internal/model"
)

const namespace = "golfscore"

// Recorder receives round activity events
type Recorder interface {
	RoundStarted(playerCount int, formats []model.Format)
	ScoreRecorded()
	ScoreRejected(reason string)
	HoleAdvanced()
	RoundCompleted(duration float64)
	RoundAbandoned()
}

// Metrics records round activity as prometheus collectors on its own registry
type Metrics struct {
	registry *prometheus.Registry

	roundsStarted   *prometheus.CounterVec
	formatsSelected *prometheus.CounterVec
	scoresRecorded  prometheus.Counter
	scoresRejected  *prometheus.CounterVec
	holesAdvanced   prometheus.Counter
	roundsCompleted prometheus.Counter
	roundsAbandoned prometheus.Counter
	roundDuration   prometheus.Histogram
}

var _ Recorder = (*Metrics)(nil)

// New creates a Metrics with every collector registered
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		roundsStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_started_total",
			Help:      "Rounds started, by number of players.",
		}, []string{"players"}),
		formatsSelected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "formats_selected_total",
			Help:      "Formats selected when starting a round.",
		}, []string{"format"}),
		scoresRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_recorded_total",
			Help:      "Hole scores entered or amended.",
		}),
		scoresRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "scores_rejected_total",
			Help:      "Hole scores rejected, by reason.",
		}, []string{"reason"}),
		holesAdvanced: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "holes_advanced_total",
			Help:      "Times play moved on to the next hole.",
		}),
		roundsCompleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_completed_total",
			Help:      "Rounds settled.",
		}),
		roundsAbandoned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_abandoned_total",
			Help:      "Rounds deleted before completion.",
		}),
		roundDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "round_duration_seconds",
			Help:      "Time from starting a round to settling it.",
			Buckets:   []float64{600, 1800, 3600, 2 * 3600, 3 * 3600, 4 * 3600, 5 * 3600, 6 * 3600},
		}),
	}

	m.registry.MustRegister(
		m.roundsStarted,
		m.formatsSelected,
		m.scoresRecorded,
		m.scoresRejected,
		m.holesAdvanced,
		m.roundsCompleted,
		m.roundsAbandoned,
		m.roundDuration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Registry returns the registry holding the collectors
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the collected metrics in the prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) RoundStarted(playerCount int, formats []model.Format) {
	m.roundsStarted.WithLabelValues(playerLabel(playerCount)).Inc()
	for _, f := range formats {
		m.formatsSelected.WithLabelValues(string(f)).Inc()
	}
}

func (m *Metrics) ScoreRecorded() {
	m.scoresRecorded.Inc()
}

func (m *Metrics) ScoreRejected(reason string) {
	m.scoresRejected.WithLabelValues(reason).Inc()
}

func (m *Metrics) HoleAdvanced() {
	m.holesAdvanced.Inc()
}

func (m *Metrics) RoundCompleted(duration float64) {
	m.roundsCompleted.Inc()
	m.roundDuration.Observe(duration)
}

func (m *Metrics) RoundAbandoned() {
	m.roundsAbandoned.Inc()
}

func playerLabel(n int) string {
	switch n {
	case 1:
		return "1"
	case 2:
		return "2"
	case 3:
		return "3"
	case 4:
		return "4"
	}
	return "other"
}

// Nop discards every event
type Nop struct{}

var _ Recorder = Nop{}

func (Nop) RoundStarted(int, []model.Format) {}
func (Nop) ScoreRecorded()                   {}
func (Nop) ScoreRejected(string)             {}
func (Nop) HoleAdvanced()                    {}
func (Nop) RoundCompleted(float64)           {}
func (Nop) RoundAbandoned()                  {}
