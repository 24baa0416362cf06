// Package builder provides internal helper functions and types
// for configuring edge-cost distributions in graph constructors.
package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
	"github.com/katalvlaran/lvmaze/rng"
)

// WeightFn produces an edge cost given an optional random source.
// It must be deterministic for a given source state.
type WeightFn func(r *rng.Xorshift) int64

// DefaultWeightFn always returns core.DefaultCost.
func DefaultWeightFn(_ *rng.Xorshift) int64 {
	return core.DefaultCost
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rng.Xorshift) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn drawing an integer uniformly in
// [min, max] via Xorshift.NextInt. A nil source yields min.
// Panics if min < 0 or max < min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(r *rng.Xorshift) int64 {
		if r == nil || max == min {
			return min
		}

		return int64(r.NextInt(int(min), int(max)))
	}
}
