// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"

	"github.com/katalvlaran/hypermm/hypercube"
)

// Harness defaults.
const (
	DefaultN     = 4
	DefaultProcs = 4
	DefaultSeed  = 1
)

// Config describes one harness run.
type Config struct {
	N     int   // matrix dimension
	Procs int   // number of ranks; must be a power of two
	Seed  int64 // operand generator seed

	Timed           bool // measure wall time of the multiply
	Verbose         bool // trace every recursion frame
	QuadrantCombine bool // closed-form combine for groups of four
}

// DefaultConfig returns the configuration of the reference harness:
// 4×4 operands on four ranks.
func DefaultConfig() Config {
	return Config{
		N:               DefaultN,
		Procs:           DefaultProcs,
		Seed:            DefaultSeed,
		QuadrantCombine: hypercube.DefaultQuadrantCombine,
	}
}

// Validate checks N and Procs.
func (c Config) Validate() error {
	if c.N < 1 {
		return runnerErrorf(fmt.Sprintf("Config.Validate: N=%d", c.N), ErrBadSize)
	}
	if !hypercube.PowerOfTwo(c.Procs) {
		return runnerErrorf(fmt.Sprintf("Config.Validate: Procs=%d", c.Procs), ErrProcsNotPowerOfTwo)
	}

	return nil
}

func (c Config) options() []hypercube.Option {
	return []hypercube.Option{
		hypercube.WithQuadrantCombine(c.QuadrantCombine),
		hypercube.WithVerbose(c.Verbose),
	}
}
