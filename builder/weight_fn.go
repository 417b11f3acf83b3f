// Package builder provides helper functions and types
// for configuring edge‐weight distributions in graph constructors.
package builder

import (
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed. A negative result makes
// the constructor fail with core.ErrNegativeWeight.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntWeightFn returns a WeightFn drawing whole numbers uniformly in [min, max].
// Integral weights keep float sums exact, which makes distance comparisons
// in tests reliable. If rng is nil, yields min.
func IntWeightFn(min, max int) WeightFn {
	return func(rng *rand.Rand) float64 {
		if rng == nil || max <= min {
			return float64(min)
		}

		return float64(min + rng.Intn(max-min+1))
	}
}
