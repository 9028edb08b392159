// SPDX-License-Identifier: MIT
// Package matrix: Local Dense Multiply Kernel.
//
// Purpose:
//   - Sequential O(n³) multiply-accumulate on flat row-major n×n buffers.
//   - Base case of the hypercube recursion and the arithmetic of every combine step.
//
// Contract:
//   - Kernels ADD into c; they never zero it. Callers initialize accumulators.
//   - a and b are read-only; only c is mutated.
//   - Buffer lengths are preconditions and are not checked on the hot path;
//     use ValidateBuffers at a facade when inputs come from outside.
//
// Determinism:
//   - Fixed loop order i→k→j, so a single kernel call is bit-reproducible.

package matrix

import "fmt"

// Operation tags for uniform error wrapping.
const (
	opMul = "Mul"
)

// MulAdd performs c[i*n+j] += Σ_k a[i*n+k]*b[k*n+j] for all i, j.
// It is MulAddRange over the full contraction range [0, n).
// Complexity: Time O(n³), Space O(1).
func MulAdd(n int, a, b, c []float64) {
	MulAddRange(n, a, b, c, 0, n)
}

// MulAddRange accumulates the partial product restricted to contraction
// indices k0 <= k < k1:
//
//	c[i*n+j] += Σ_{k0<=k<k1} a[i*n+k]*b[k*n+j]
//
// Splitting [0,n) into disjoint ranges and calling MulAddRange once per range
// adds up to exactly one A×B. An empty range (k0 >= k1) is a no-op.
//
// Implementation:
//   - Stage 1: return early on an empty range; bounds 0 <= k0 <= k1 <= n are the caller's.
//   - Stage 2: i→k→j loops; the k-th row of b is streamed once per (i,k).
//
// Complexity:
//   - Time O(n²·(k1-k0)), Space O(1).
func MulAddRange(n int, a, b, c []float64, k0, k1 int) {
	if k0 >= k1 {
		return
	}
	var (
		i, k, j int
		row     int
		av      float64
	)
	for i = 0; i < n; i++ {
		row = i * n
		cRow := c[row : row+n]
		for k = k0; k < k1; k++ {
			av = a[row+k]
			bRow := b[k*n : k*n+n]
			for j = 0; j < n; j++ {
				cRow[j] += av * bRow[j]
			}
		}
	}
}

// AddInPlace performs dst[i] += src[i] for every i. Both slices must have
// the same length (precondition, not checked).
// Complexity: O(len(dst)).
func AddInPlace(dst, src []float64) {
	src = src[:len(dst)]
	for i := range dst {
		dst[i] += src[i]
	}
}

// Mul returns a freshly allocated a×b using the kernel on *Dense operands
// and a generic At-based loop otherwise. Operands are never mutated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
//
// Complexity:
//   - Time O(r·k·c), Space O(r·c).
func Mul(a, b Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// Fast-path: square *Dense operands go straight to the kernel.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB && aRows == aCols && aCols == bCols {
			MulAdd(aRows, da.data, db.data, res.data)
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k).
	var av, bv, current float64
	for i := 0; i < aRows; i++ {
		for j := 0; j < bCols; j++ {
			current = 0
			for k := 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			if err = res.Set(i, j, current); err != nil {
				return nil, matrixErrorf(opMul, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return res, nil
}

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
