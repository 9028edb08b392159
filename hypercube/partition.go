// SPDX-License-Identifier: MIT

package hypercube

import (
	"math/bits"

	"github.com/katalvlaran/hypermm/comm"
)

// Hypercube dimensions used for the operand exchanges.
const (
	dimHorizontal = 0 // A travels along bit 0
	dimVertical   = 1 // B travels along bit 1
)

// Split colors of the two halves.
const (
	colorLower = 0
	colorUpper = 1
)

// PowerOfTwo reports whether p is 2^d for some d >= 0.
func PowerOfTwo(p int) bool {
	return p > 0 && p&(p-1) == 0
}

// dimensions returns d = log2(size) and the top-bit mask 1<<(d-1).
// size must be a power of two greater than one.
func dimensions(size int) (d, mask int) {
	d = bits.Len(uint(size)) - 1
	return d, 1 << (d - 1)
}

// neighbor flips bit dim of rank. A dimension the group does not have
// (a group of two has no bit 1) maps the rank onto itself, which turns the
// exchange into a local copy.
func neighbor(rank, dim, size int) int {
	p := rank ^ (1 << dim)
	if p >= size {
		return rank
	}

	return p
}

// splitHalf is the group partition step: every member of g calls it with
// the same mask; members with rank < mask form the lower half. The key is
// the current rank, so relative order is preserved in both halves. The
// caller owns the returned group and must release it. rank is the
// caller's rank inside sub.
func splitHalf(g comm.Group, mask int) (sub comm.Group, rank int, lower bool) {
	lower = g.Rank() < mask
	color := colorUpper
	if lower {
		color = colorLower
	}
	sub = g.Split(color, g.Rank())

	return sub, sub.Rank(), lower
}
