// SPDX-License-Identifier: MIT

package hypercube

import (
	"fmt"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/hypermm/comm"
	"github.com/katalvlaran/hypermm/matrix"
)

// quadSize is the group size handled by the closed-form combine.
const quadSize = 4

const opMultiplyDense = "hypercube.MultiplyDense"

// Multiply adds A×B into c, computed collectively by the ranks of g.
//
// Every rank of g must call Multiply at the same time with the same n and
// options; a, b and c are that rank's full n×n row-major buffers. a and b
// are only read. c is only added into, so it must be zeroed before the
// first call if it should end up holding the bare product. On return every
// temporary buffer and sub-group created by the call has been released.
//
// Preconditions (not checked): g.Size() is a power of two; len(a), len(b)
// and len(c) equal n*n. Violations hang the group or corrupt the result.
//
// Complexity per rank: O(n³) arithmetic, O(n²·log p) memory along the
// deepest recursion path, two exchanges of n² values per level.
func Multiply(n int, a, b, c []float64, g comm.Group, opts ...Option) {
	f := frame{n: n, opts: gatherOptions(opts...)}
	f.multiply(a, b, c, g, 0, n, 0)
}

// MultiplyDense is the validated facade over Multiply for *matrix.Dense
// operands. All ranks must see the same shapes: a rank that fails
// validation returns before the collective calls and strands its peers.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrDimensionMismatch
//     (wrapped with "hypercube.MultiplyDense").
func MultiplyDense(a, b, c *matrix.Dense, g comm.Group, opts ...Option) error {
	for _, m := range []*matrix.Dense{a, b, c} {
		if err := matrix.ValidateSquare(m); err != nil {
			return fmt.Errorf("%s: %w", opMultiplyDense, err)
		}
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return fmt.Errorf("%s: %w", opMultiplyDense, err)
	}
	if err := matrix.ValidateSameShape(a, c); err != nil {
		return fmt.Errorf("%s: %w", opMultiplyDense, err)
	}

	Multiply(a.Rows(), a.Data(), b.Data(), c.Data(), g, opts...)

	return nil
}

// frame carries what stays constant across one top-level call.
type frame struct {
	n    int
	opts options
}

// multiply is one recursion level. The products formed here cover the
// contraction indices [k0, k1): the first product takes [k0, mid), the
// second [mid, k1).
func (f *frame) multiply(a, b, c []float64, g comm.Group, k0, k1, depth int) {
	size, rank := g.Size(), g.Rank()
	if size == 1 {
		f.trace(depth, size, rank, k0, k1, "kernel")
		matrix.MulAddRange(f.n, a, b, c, k0, k1)
		return
	}

	_, mask := dimensions(size)
	nn := f.n * f.n
	exA := make([]float64, nn)
	exB := make([]float64, nn)
	g.Exchange(a, exA, neighbor(rank, dimHorizontal, size), f.opts.tagA)
	g.Exchange(b, exB, neighbor(rank, dimVertical, size), f.opts.tagB)

	mid := k0 + (k1-k0)/2

	if size == quadSize && f.opts.quadrant {
		if rank == 0 || rank == size-1 {
			f.trace(depth, size, rank, k0, k1, "quadrant diagonal")
			matrix.MulAddRange(f.n, a, exB, c, k0, mid)
			matrix.MulAddRange(f.n, exA, b, c, mid, k1)
		} else {
			f.trace(depth, size, rank, k0, k1, "quadrant off-diagonal")
			matrix.MulAddRange(f.n, a, b, c, k0, mid)
			matrix.MulAddRange(f.n, exA, exB, c, mid, k1)
		}
		return
	}

	sub, subRank, lower := splitHalf(g, mask)
	defer sub.Release()

	tempC := make([]float64, nn)
	if lower {
		f.trace(depth, size, rank, k0, k1, "lower half", "subRank", subRank)
		f.multiply(a, exB, c, sub, k0, mid, depth+1)
		f.multiply(exA, b, tempC, sub, mid, k1, depth+1)
	} else {
		f.trace(depth, size, rank, k0, k1, "upper half", "subRank", subRank)
		f.multiply(a, b, c, sub, k0, mid, depth+1)
		f.multiply(exA, exB, tempC, sub, mid, k1, depth+1)
	}
	matrix.AddInPlace(c, tempC)
}

func (f *frame) trace(depth, size, rank, k0, k1 int, step string, kv ...any) {
	if !f.opts.verbose && !klog.V(2).Enabled() {
		return
	}
	kv = append([]any{"depth", depth, "size", size, "rank", rank, "k0", k0, "k1", k1, "step", step}, kv...)
	klog.InfoS("hypercube frame", kv...)
}
