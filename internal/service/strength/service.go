package strength

import (
	"context"
	"time"

	"github.com/jwalitptl/passmeter/pkg/logger"
	"github.com/jwalitptl/passmeter/pkg/metrics"
	"github.com/jwalitptl/passmeter/pkg/security"
)

// PasswordGenerator produces password suggestions.
type PasswordGenerator interface {
	Generate() string
}

type Service struct {
	generator PasswordGenerator
	metrics   *metrics.Metrics
	log       *logger.Logger
}

func NewService(generator PasswordGenerator, m *metrics.Metrics, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		generator: generator,
		metrics:   m,
		log:       log.WithFields(map[string]interface{}{"component": "strength"}),
	}
}

// Check evaluates password and records the outcome. The password itself is
// never logged.
func (s *Service) Check(ctx context.Context, password string) security.Result {
	start := time.Now()
	res := security.Evaluate(password)
	elapsed := time.Since(start)

	band := security.Classify(res.Score)
	if s.metrics != nil {
		s.metrics.EvaluationLatency.Observe(elapsed.Seconds())
		s.metrics.Evaluations.WithLabelValues(band.Label).Inc()
		if res.Blacklisted {
			s.metrics.BlacklistHits.Inc()
		}
		for _, rule := range res.Failed {
			s.metrics.RuleFailures.WithLabelValues(rule).Inc()
		}
	}

	s.log.WithContext(ctx).Debug("password evaluated",
		"score", res.Score,
		"band", band.Label,
		"blacklisted", res.Blacklisted,
		"failed_rules", len(res.Failed),
	)

	return res
}

// Suggest returns a generated password.
func (s *Service) Suggest(ctx context.Context) string {
	pw := s.generator.Generate()
	if s.metrics != nil {
		s.metrics.GeneratedPasswords.Inc()
	}
	s.log.WithContext(ctx).Debug("password generated")
	return pw
}
