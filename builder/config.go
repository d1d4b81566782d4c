// Package: shortpath/builder
//
// config.go — resolved builder configuration.

package builder

import "math/rand"

// builderConfig is the immutable result of applying BuilderOptions.
type builderConfig struct {
	// RNG for stochastic weight functions; nil means "no randomness".
	rng *rand.Rand
	// Weight generator used by topology constructors (Path/Cycle/Complete).
	weightFn WeightFn
}

// newBuilderConfig applies opts over deterministic defaults (no RNG,
// constant DefaultEdgeWeight). Last option wins.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
