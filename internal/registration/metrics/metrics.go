package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Metrics provides observability for registration validation.
type Metrics struct {
	// Outcomes by document kind, outcome and failing field ("" on success)
	Outcomes *prometheus.CounterVec

	ValidateLatency prometheus.Histogram
}

// New creates registration metrics registered on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Outcomes: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "regform_registration_outcomes_total",
			Help: "Registration validation outcomes by document kind, outcome and failing field",
		}, []string{"kind", "outcome", "field"}),

		ValidateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "regform_registration_validate_duration_seconds",
			Help:    "Duration of full registration form validation",
			Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01},
		}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(kind, outcome, field string) {
	if m != nil {
		m.Outcomes.WithLabelValues(kind, outcome, field).Inc()
	}
}

// ObserveValidateLatency records the validation duration.
func (m *Metrics) ObserveValidateLatency(d time.Duration) {
	if m != nil {
		m.ValidateLatency.Observe(d.Seconds())
	}
}
