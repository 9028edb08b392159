package hypercube_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypermm/comm"
	"github.com/katalvlaran/hypermm/hypercube"
)

// run multiplies a×b on p ranks and returns every rank's accumulator.
// It also checks that no sub-group outlived the call.
func run(t testing.TB, n, p int, a, b []float64, opts ...hypercube.Option) ([][]float64, *comm.World) {
	t.Helper()
	w, err := comm.NewWorld(p)
	require.NoError(t, err)

	out := make([][]float64, p)
	require.NoError(t, w.Run(func(g comm.Group) error {
		c := make([]float64, n*n)
		hypercube.Multiply(n, a, b, c, g, opts...)
		out[g.Rank()] = c
		return nil
	}))
	require.Zero(t, w.OpenGroups(), "sub-groups leaked")

	return out, w
}

// reference computes a×b with gonum, independent of the local kernel.
func reference(n int, a, b []float64) []float64 {
	var c mat.Dense
	c.Mul(mat.NewDense(n, n, a), mat.NewDense(n, n, b))

	return c.RawMatrix().Data
}

// randSquare fills an n×n buffer with one-decimal values in [0,10).
func randSquare(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n*n)
	for i := range out {
		out[i] = float64(rng.Intn(100)) / 10
	}

	return out
}
