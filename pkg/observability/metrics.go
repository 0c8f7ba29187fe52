package observability

import (
	"context"
	"errors"

	"github.com/aretw0/modthree/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels used by Metrics.
const (
	OutcomeOK            = "ok"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeEmptyInput    = "empty_input"
	OutcomeConfigError   = "config_error"
	OutcomeCanceled      = "canceled"
	OutcomeUnknownFailed = "failed"
)

// Metrics holds the Prometheus collectors for evaluations.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Transitions *prometheus.CounterVec
	InputLength *prometheus.HistogramVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modthree_evaluations_total",
				Help: "Total number of evaluations by machine and outcome",
			},
			[]string{"machine", "outcome"},
		),
		Transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "modthree_transitions_total",
				Help: "Total number of transitions taken",
			},
			[]string{"machine", "from", "to"},
		),
		InputLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "modthree_input_symbols",
				Help:    "Length of evaluated inputs in symbols",
				Buckets: prometheus.ExponentialBuckets(1, 4, 8),
			},
			[]string{"machine"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "modthree_evaluation_duration_seconds",
				Help: "Duration of evaluations",
			},
			[]string{"machine"},
		),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Evaluations, m.Transitions, m.InputLength, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that record into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(_ context.Context, e *domain.TransitionEvent) {
			m.Transitions.WithLabelValues(e.Machine, string(e.From), string(e.To)).Inc()
		},
		OnEvaluateEnd: func(_ context.Context, e *domain.ResultEvent) {
			m.Evaluations.WithLabelValues(e.Machine, Outcome(e.Err)).Inc()
			m.InputLength.WithLabelValues(e.Machine).Observe(float64(e.Length))
			m.Duration.WithLabelValues(e.Machine).Observe(e.Duration.Seconds())
		},
	}
}

// Outcome classifies an evaluation error into a metric label.
func Outcome(err error) string {
	var invalid *domain.InvalidSymbolError
	switch {
	case err == nil:
		return OutcomeOK
	case errors.As(err, &invalid):
		return OutcomeInvalidInput
	case errors.Is(err, domain.ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, domain.ErrInvalidMachine):
		return OutcomeConfigError
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCanceled
	}
	return OutcomeUnknownFailed
}
