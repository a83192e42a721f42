// Package metric provides Prometheus metrics for TeachWhat.
package metric

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "teachwhat"

// Command outcomes.
const (
	OutcomeOK         = "ok"
	OutcomeParseError = "parse_error"
	OutcomeExecError  = "exec_error"
)

// Registry holds all application metrics.
type Registry struct {
	registry *prometheus.Registry

	// CommandsTotal counts input lines by command word and outcome.
	CommandsTotal *prometheus.CounterVec
	// ParseErrors counts rejected lines by parse error kind.
	ParseErrors *prometheus.CounterVec
	// CommandDuration measures parse plus execute time by command word.
	CommandDuration *prometheus.HistogramVec

	SavesTotal      prometheus.Counter
	SaveErrorsTotal prometheus.Counter
	SavesSkipped    prometheus.Counter
}

// NewRegistry creates a registry with every TeachWhat metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "commands",
			Name:      "total",
			Help:      "Input lines handled, by command word and outcome",
		}, []string{"word", "outcome"}),

		ParseErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "parser",
			Name:      "errors_total",
			Help:      "Input lines rejected by the parser, by error kind",
		}, []string{"kind"}),

		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "commands",
			Name:      "duration_seconds",
			Help:      "Time to parse and execute one input line",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"word"}),

		SavesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "saves_total",
			Help:      "Snapshots written to storage",
		}),

		SaveErrorsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "save_errors_total",
			Help:      "Snapshot writes that failed",
		}),

		SavesSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "saves_skipped_total",
			Help:      "Saves skipped because the snapshot fingerprint did not change",
		}),
	}

	r.registry.MustRegister(
		r.CommandsTotal,
		r.ParseErrors,
		r.CommandDuration,
		r.SavesTotal,
		r.SaveErrorsTotal,
		r.SavesSkipped,
	)
	return r
}

// ObserveCommand records one handled line. word is "unknown" when the line
// could not be split.
func (r *Registry) ObserveCommand(word, outcome string, elapsed time.Duration) {
	if word == "" {
		word = "unknown"
	}
	r.CommandsTotal.WithLabelValues(word, outcome).Inc()
	r.CommandDuration.WithLabelValues(word).Observe(elapsed.Seconds())
}

// ObserveParseError records a rejected line.
func (r *Registry) ObserveParseError(kind string) {
	r.ParseErrors.WithLabelValues(kind).Inc()
}

// ObserveSave records a save attempt.
func (r *Registry) ObserveSave(err error) {
	if err != nil {
		r.SaveErrorsTotal.Inc()
		return
	}
	r.SavesTotal.Inc()
}

// Register adds an extra collector, such as a BookCollector.
func (r *Registry) Register(c prometheus.Collector) error {
	return r.registry.Register(c)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("metric: write textfile: %w", err)
	}
	return nil
}
