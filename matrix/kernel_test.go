package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/hypermm/matrix"
)

// randSquare returns an n×n row-major buffer with values in [0,10).
func randSquare(rng *rand.Rand, n int) []float64 {
	out := make([]float64, n*n)
	for i := range out {
		out[i] = float64(rng.Intn(100)) / 10
	}

	return out
}

// TestMulAddScenario is the canonical 2×2 product.
func TestMulAddScenario(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := make([]float64, 4)

	matrix.MulAdd(2, a, b, c)
	require.Equal(t, []float64{19, 22, 43, 50}, c)
}

// TestMulAddAccumulates verifies the kernel adds into c instead of overwriting it.
func TestMulAddAccumulates(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{5, 6, 7, 8}
	c := []float64{1, 1, 1, 1}

	matrix.MulAdd(2, a, b, c)
	require.Equal(t, []float64{20, 23, 44, 51}, c)

	matrix.MulAdd(2, a, b, c) // second pass doubles the product part
	require.Equal(t, []float64{39, 45, 87, 101}, c)
}

// TestMulAddLeavesOperandsUntouched checks purity with respect to a and b.
func TestMulAddLeavesOperandsUntouched(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := randSquare(rng, 5)
	b := randSquare(rng, 5)
	aCopy := append([]float64(nil), a...)
	bCopy := append([]float64(nil), b...)

	matrix.MulAdd(5, a, b, make([]float64, 25))
	require.Equal(t, aCopy, a)
	require.Equal(t, bCopy, b)
}

// TestMulAddRangeSplitsContraction checks that disjoint contraction ranges
// add up to the full product.
func TestMulAddRangeSplitsContraction(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, n := range []int{1, 2, 3, 7, 16} {
		a := randSquare(rng, n)
		b := randSquare(rng, n)

		full := make([]float64, n*n)
		matrix.MulAdd(n, a, b, full)

		parts := make([]float64, n*n)
		mid := n / 2
		matrix.MulAddRange(n, a, b, parts, 0, mid)
		matrix.MulAddRange(n, a, b, parts, mid, n)

		assert.True(t, matrix.EqualApprox(full, parts), "n=%d", n)
	}
}

// TestMulAddRangeEmpty verifies an empty range leaves c untouched.
func TestMulAddRangeEmpty(t *testing.T) {
	c := []float64{1, 2, 3, 4}
	matrix.MulAddRange(2, []float64{1, 1, 1, 1}, []float64{1, 1, 1, 1}, c, 1, 1)
	require.Equal(t, []float64{1, 2, 3, 4}, c)
	matrix.MulAddRange(2, []float64{1, 1, 1, 1}, []float64{1, 1, 1, 1}, c, 2, 0)
	require.Equal(t, []float64{1, 2, 3, 4}, c)
}

// TestMulAddMatchesGonum cross-checks the kernel against gonum's Dense.Mul.
func TestMulAddMatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(1337))
	for _, n := range []int{1, 4, 9, 32} {
		a := randSquare(rng, n)
		b := randSquare(rng, n)

		got := make([]float64, n*n)
		matrix.MulAdd(n, a, b, got)

		var want mat.Dense
		want.Mul(mat.NewDense(n, n, a), mat.NewDense(n, n, b))

		require.True(t, matrix.EqualApprox(want.RawMatrix().Data, got), "n=%d", n)
	}
}

// TestAddInPlace covers the elementwise combine.
func TestAddInPlace(t *testing.T) {
	dst := []float64{1, 2, 3}
	matrix.AddInPlace(dst, []float64{10, 20, 30})
	require.Equal(t, []float64{11, 22, 33}, dst)
}

// TestMulFacade validates the allocating facade on Dense operands.
func TestMulFacade(t *testing.T) {
	a, err := matrix.NewDenseFrom(2, 2, []float64{1, 2, 3, 4})
	require.NoError(t, err)
	b, err := matrix.NewDenseFrom(2, 2, []float64{5, 6, 7, 8})
	require.NoError(t, err)

	res, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, []float64{19, 22, 43, 50}, res.(*matrix.Dense).Data())

	// Non-square operands take the generic path.
	r, err := matrix.NewDenseFrom(1, 2, []float64{1, 1})
	require.NoError(t, err)
	res, err = matrix.Mul(r, b)
	require.NoError(t, err)
	require.Equal(t, []float64{12, 14}, res.(*matrix.Dense).Data())

	_, err = matrix.Mul(b, r)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Mul(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}
