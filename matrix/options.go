// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy and for
// tolerant comparisons. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that applies options in order.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the tolerance used by EqualApprox. Distributed
	// products reassociate floating-point sums, so results are compared
	// within this bound rather than bit for bit.
	DefaultEpsilon = 1e-9

	// DefaultRelative selects a relative tolerance: |a-b| <= eps*max(1,|a|,|b|).
	// false ⇒ plain absolute tolerance |a-b| <= eps.
	DefaultRelative = true

	// DefaultValidateNaNInf toggles strict finite-value validation in Set and NewDenseFrom.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid = "matrix: WithEpsilon: eps must be finite, non-negative"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved comparison policy. Fields are unexported;
// public APIs consume ...Option.
type Options struct {
	eps      float64 // non-negative, finite
	relative bool    // relative vs absolute tolerance
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:      DefaultEpsilon,
		relative: DefaultRelative,
	}
}

// gatherOptions applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithEpsilon sets the comparison tolerance. Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelative switches between relative (true) and absolute (false) tolerance.
func WithRelative(relative bool) Option {
	return func(o *Options) { o.relative = relative }
}
