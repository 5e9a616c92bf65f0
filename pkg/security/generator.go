package security

import (
	"math/rand/v2"
	"strings"
)

// Alphabet is the set generated passwords are drawn from.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" + SpecialChars

const (
	DefaultGeneratedLen = 12
	DefaultMaxAttempts  = 10
)

// GeneratorConfig holds password generator configuration
type GeneratorConfig struct {
	Length int
	// RequireStrong regenerates until a candidate scores MaxScore, giving up
	// after MaxAttempts and returning the last candidate.
	RequireStrong bool
	MaxAttempts   int
}

// DefaultGeneratorConfig returns the generator defaults: 12 characters,
// no post-generation check.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Length:      DefaultGeneratedLen,
		MaxAttempts: DefaultMaxAttempts,
	}
}

// Generator produces random passwords from Alphabet. It is not a source of
// cryptographic secrets.
type Generator struct {
	cfg  GeneratorConfig
	intN func(n int) int
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand makes the generator draw from r instead of the global source.
// r is not safe for concurrent use, so neither is the resulting Generator.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		g.intN = r.IntN
	}
}

// NewGenerator creates a generator. Zero or negative lengths and attempt
// counts fall back to the defaults.
func NewGenerator(cfg GeneratorConfig, opts ...GeneratorOption) *Generator {
	if cfg.Length < 1 {
		cfg.Length = DefaultGeneratedLen
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	g := &Generator{cfg: cfg, intN: rand.IntN}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate returns a new random password.
func (g *Generator) Generate() string {
	if !g.cfg.RequireStrong {
		return g.draw()
	}

	var candidate string
	for i := 0; i < g.cfg.MaxAttempts; i++ {
		candidate = g.draw()
		if Evaluate(candidate).Score == MaxScore {
			break
		}
	}
	return candidate
}

func (g *Generator) draw() string {
	var sb strings.Builder
	sb.Grow(g.cfg.Length)
	for i := 0; i < g.cfg.Length; i++ {
		sb.WriteByte(Alphabet[g.intN(len(Alphabet))])
	}
	return sb.String()
}

var defaultGenerator = NewGenerator(DefaultGeneratorConfig())

// GenerateStrongPassword returns a 12 character password drawn uniformly
// from Alphabet. The result is not checked against the scoring rules.
func GenerateStrongPassword() string {
	return defaultGenerator.Generate()
}
