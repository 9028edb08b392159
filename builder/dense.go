// SPDX-License-Identifier: MIT
// Package: hypermm/builder
//
// dense.go — dense operand constructors.
//
// Contract:
//   - n ≥ 1 (else ErrTooSmall).
//   - Random constructors require cfg.rng (else ErrNeedRandSource).
//   - Elements are drawn in row-major order (i asc, j asc), so a fixed seed
//     yields identical matrices on every process and every run.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hypermm/matrix"
)

// Method tags for error context.
const (
	methodRandomDense = "RandomDense"
	methodRandomPair  = "RandomPair"
	methodIdentity    = "Identity"
	minDenseSize      = 1
)

// RandomDense returns an n×n matrix filled row-major from cfg.valueFn.
// Complexity: O(n²).
func RandomDense(n int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)

	return randomDense(methodRandomDense, n, cfg)
}

// RandomPair draws A and then B from the same stream, mirroring a harness
// that fills A before B with one generator.
// Complexity: O(n²).
func RandomPair(n int, opts ...BuilderOption) (a, b *matrix.Dense, err error) {
	cfg := newBuilderConfig(opts...)
	if a, err = randomDense(methodRandomPair, n, cfg); err != nil {
		return nil, nil, err
	}
	if b, err = randomDense(methodRandomPair, n, cfg); err != nil {
		return nil, nil, err
	}

	return a, b, nil
}

// Identity returns I_n.
// Complexity: O(n²) zeroing + O(n) diagonal writes.
func Identity(n int) (*matrix.Dense, error) {
	if n < minDenseSize {
		return nil, builderErrorf(methodIdentity, fmt.Sprintf("n=%d < min=%d", n, minDenseSize), ErrTooSmall)
	}
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, builderErrorf(methodIdentity, "", err)
	}
	data := m.Data()
	for i := 0; i < n; i++ {
		data[i*n+i] = 1
	}

	return m, nil
}

func randomDense(method string, n int, cfg builderConfig) (*matrix.Dense, error) {
	if n < minDenseSize {
		return nil, builderErrorf(method, fmt.Sprintf("n=%d < min=%d", n, minDenseSize), ErrTooSmall)
	}
	if cfg.rng == nil {
		return nil, builderErrorf(method, "", ErrNeedRandSource)
	}

	vals := make([]float64, n*n)
	for i := range vals {
		vals[i] = cfg.valueFn(cfg.rng)
	}

	// NewDenseFrom applies the numeric policy (rejects NaN/Inf from custom ValueFn).
	m, err := matrix.NewDenseFrom(n, n, vals)
	if err != nil {
		return nil, builderErrorf(method, "", err)
	}

	return m, nil
}
