// SPDX-License-Identifier: MIT

package runner

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSize is returned when the matrix size is below one.
	ErrBadSize = errors.New("runner: matrix size must be >= 1")

	// ErrProcsNotPowerOfTwo is returned when the process count is not 2^d.
	ErrProcsNotPowerOfTwo = errors.New("runner: process count must be a power of two")
)

func runnerErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
