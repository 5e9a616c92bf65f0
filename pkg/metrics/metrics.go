package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jwalitptl/passmeter/pkg/security"
)

// Metrics holds all application metrics
type Metrics struct {
	// Evaluation metrics
	Evaluations       *prometheus.CounterVec
	RuleFailures      *prometheus.CounterVec
	BlacklistHits     prometheus.Counter
	EvaluationLatency prometheus.Histogram

	// Generator metrics
	GeneratedPasswords prometheus.Counter
}

// NewMetrics creates all application metrics and registers them with reg.
// Rule failure series exist from the start, at zero, for every rule.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		Evaluations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "evaluations_total",
			Help:      "Total number of password evaluations by strength band",
		}, []string{"band"}),
		RuleFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rule_failures_total",
			Help:      "Total number of failed rules across evaluations",
		}, []string{"rule"}),
		BlacklistHits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blacklist_hits_total",
			Help:      "Total number of evaluated passwords found on the blacklist",
		}),
		EvaluationLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "evaluation_duration_seconds",
			Help:      "Time spent evaluating a password",
			Buckets:   []float64{.000001, .000005, .00001, .00005, .0001, .0005, .001},
		}),

		GeneratedPasswords: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generated_passwords_total",
			Help:      "Total number of generated password suggestions",
		}),
	}

	m.RuleFailures.WithLabelValues(security.RuleBlacklist)
	for _, rule := range security.Rules() {
		m.RuleFailures.WithLabelValues(rule.Name)
	}

	return m
}

// New creates metrics that are not registered anywhere, for tests and
// callers that do not expose them.
func New(namespace string) *Metrics {
	return NewMetrics(nil, namespace)
}
