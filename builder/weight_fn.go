package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each generated edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight uint32 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) uint32

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) uint32 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value uint32) WeightFn {
	return func(_ *rand.Rand) uint32 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max] inclusive.
// Panics if max < min. With a nil rng it yields min.
func UniformWeightFn(min, max uint32) WeightFn {
	if max < min {
		panic(fmt.Sprintf("UniformWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}

	span := int64(max) - int64(min) + 1
	return func(rng *rand.Rand) uint32 {
		if rng == nil || span == 1 {
			return min
		}

		return min + uint32(rng.Int63n(span))
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w uint32) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(min, max)).
// Combine with WithSeed to get random weights.
func WithUniformWeight(min, max uint32) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}
