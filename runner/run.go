// SPDX-License-Identifier: MIT

package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/hypermm/builder"
	"github.com/katalvlaran/hypermm/comm"
	"github.com/katalvlaran/hypermm/hypercube"
	"github.com/katalvlaran/hypermm/matrix"
)

const rootRank = 0

// Result is what one harness run produced.
type Result struct {
	Config Config

	A, B *matrix.Dense // operands shared by every rank
	C    *matrix.Dense // accumulator of the root rank

	// Agree is true when every rank's C matches the root's within
	// matrix.DefaultEpsilon.
	Agree bool

	Elapsed    time.Duration // zero unless Config.Timed
	Messages   int64         // point-to-point deliveries across all ranks
	OpenGroups int64         // sub-groups still open after the run; 0 when clean
}

// Run validates cfg, builds the operands and multiplies them on cfg.Procs
// ranks.
//
// Implementation:
//   - Stage 1: Validate; draw A then B from one seeded stream.
//   - Stage 2: start a world of Procs ranks; each rank zeroes its own C
//     and calls hypercube.Multiply on shared read-only A and B.
//   - Stage 3: keep the root's C and compare every other rank against it.
//
// Complexity: O(n³) arithmetic per rank.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a, b, err := builder.RandomPair(cfg.N, builder.WithSeed(cfg.Seed))
	if err != nil {
		return nil, runnerErrorf("Run", err)
	}
	w, err := comm.NewWorld(cfg.Procs)
	if err != nil {
		return nil, runnerErrorf("Run", err)
	}

	n, opts := cfg.N, cfg.options()
	cs := make([][]float64, cfg.Procs)

	klog.V(1).InfoS("multiply start", "n", n, "procs", cfg.Procs, "seed", cfg.Seed)
	start := time.Now()
	err = w.Run(func(g comm.Group) error {
		c := make([]float64, n*n)
		hypercube.Multiply(n, a.Data(), b.Data(), c, g, opts...)
		cs[g.Rank()] = c
		return nil
	})
	elapsed := time.Since(start)
	if err != nil {
		return nil, runnerErrorf("Run", err)
	}

	c, err := matrix.NewDenseFrom(n, n, cs[rootRank])
	if err != nil {
		return nil, runnerErrorf("Run", err)
	}
	res := &Result{
		Config:     cfg,
		A:          a,
		B:          b,
		C:          c,
		Agree:      true,
		Messages:   w.Messages(),
		OpenGroups: w.OpenGroups(),
	}
	if cfg.Timed {
		res.Elapsed = elapsed
	}
	for r, other := range cs {
		if !matrix.EqualApprox(cs[rootRank], other) {
			res.Agree = false
			klog.Warningf("runner: rank %d disagrees with root (max diff %g)", r, matrix.MaxAbsDiff(cs[rootRank], other))
		}
	}
	klog.V(1).InfoS("multiply done", "elapsed", elapsed, "messages", res.Messages, "agree", res.Agree)

	return res, nil
}

// Residual returns the largest absolute deviation of the root's C from the
// sequential product of A and B.
func (r *Result) Residual() float64 {
	n := r.Config.N
	want := make([]float64, n*n)
	matrix.MulAdd(n, r.A.Data(), r.B.Data(), want)

	return matrix.MaxAbsDiff(want, r.C.Data())
}

// Dump writes A, B and C in the fixed-width layout of the reference harness.
func (r *Result) Dump(w io.Writer) error {
	for _, m := range []struct {
		name string
		d    *matrix.Dense
	}{
		{"Matrix A", r.A},
		{"Matrix B", r.B},
		{"Matrix C (Result)", r.C},
	} {
		if _, err := io.WriteString(w, Format(m.name, m.d)); err != nil {
			return err
		}
	}

	return nil
}

// Format renders m as "name:" followed by one line per row, each value as
// %6.2f plus a trailing space, and a blank line.
func Format(name string, m *matrix.Dense) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s:\n", name)
	rows, cols := m.Shape()
	data := m.Data()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&sb, "%6.2f ", data[i*cols+j])
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')

	return sb.String()
}
