// SPDX-License-Identifier: MIT
// Package: hypermm/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng     = nil             (stochastic constructors require a seed)
//   • valueFn = DecimalValueFn  (values in [0.0, 9.9] with one decimal)

package builder

import "math/rand"

// ValueFn draws one matrix element from the RNG stream.
type ValueFn func(*rand.Rand) float64

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Element generator.
	valueFn ValueFn
}

// Distribution defaults (named, no magic numbers).
const (
	decimalModulus = 100  // r mod 100 ⇒ 0..99
	decimalScale   = 10.0 // /10 ⇒ one decimal place
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:     nil,            // no RNG unless explicitly set
		valueFn: DecimalValueFn, // (r mod 100)/10
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// DecimalValueFn returns (r mod 100)/10: one decimal place in [0.0, 9.9].
func DecimalValueFn(r *rand.Rand) float64 {
	return float64(r.Intn(decimalModulus)) / decimalScale
}

// UniformValueFn returns a ValueFn drawing from U[lo, hi).
// Panics if hi <= lo (programmer error).
func UniformValueFn(lo, hi float64) ValueFn {
	if !(hi > lo) {
		panic("builder: UniformValueFn: hi must be > lo")
	}
	span := hi - lo

	return func(r *rand.Rand) float64 { return lo + span*r.Float64() }
}

// ConstantValueFn returns a ValueFn that ignores the RNG and yields v.
func ConstantValueFn(v float64) ValueFn {
	return func(*rand.Rand) float64 { return v }
}
