// SPDX-License-Identifier: MIT

package matrix

import "math"

// MaxAbsDiff returns max_i |a[i]-b[i]| over the common prefix of a and b.
// Complexity: O(min(len(a), len(b))).
func MaxAbsDiff(a, b []float64) float64 {
	n := min(len(a), len(b))
	worst := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}

// EqualApprox reports whether a and b have the same length and agree
// elementwise within the configured tolerance (DefaultEpsilon, relative by
// default). NaN never compares equal.
//
// Relative mode scales eps by max(1, |a[i]|, |b[i]|) so that large products
// are judged by significant digits and values near zero by absolute error.
//
// Complexity: O(len(a)).
func EqualApprox(a, b []float64, opts ...Option) bool {
	if len(a) != len(b) {
		return false
	}
	o := gatherOptions(opts...)
	for i := range a {
		if !closeTo(a[i], b[i], o) {
			return false
		}
	}

	return true
}

func closeTo(x, y float64, o Options) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	tol := o.eps
	if o.relative {
		tol *= math.Max(1, math.Max(math.Abs(x), math.Abs(y)))
	}

	return math.Abs(x-y) <= tol
}
