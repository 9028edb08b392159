package hypercube

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermm/comm"
)

func TestPowerOfTwo(t *testing.T) {
	for _, p := range []int{1, 2, 4, 8, 1024} {
		require.True(t, PowerOfTwo(p), "p=%d", p)
	}
	for _, p := range []int{-4, 0, 3, 6, 12, 1023} {
		require.False(t, PowerOfTwo(p), "p=%d", p)
	}
}

func TestDimensions(t *testing.T) {
	tests := []struct{ size, d, mask int }{
		{2, 1, 1},
		{4, 2, 2},
		{8, 3, 4},
		{64, 6, 32},
	}
	for _, tc := range tests {
		d, mask := dimensions(tc.size)
		require.Equal(t, tc.d, d, "size=%d", tc.size)
		require.Equal(t, tc.mask, mask, "size=%d", tc.size)
	}
}

func TestNeighbor(t *testing.T) {
	// Group of four: bit 0 pairs (0,1),(2,3); bit 1 pairs (0,2),(1,3).
	require.Equal(t, []int{1, 0, 3, 2}, []int{
		neighbor(0, dimHorizontal, 4), neighbor(1, dimHorizontal, 4),
		neighbor(2, dimHorizontal, 4), neighbor(3, dimHorizontal, 4),
	})
	require.Equal(t, []int{2, 3, 0, 1}, []int{
		neighbor(0, dimVertical, 4), neighbor(1, dimVertical, 4),
		neighbor(2, dimVertical, 4), neighbor(3, dimVertical, 4),
	})

	// Group of two has no bit 1: the vertical neighbour is the rank itself.
	require.Equal(t, 0, neighbor(0, dimVertical, 2))
	require.Equal(t, 1, neighbor(1, dimVertical, 2))
	require.Equal(t, 1, neighbor(0, dimHorizontal, 2))
}

func TestSplitHalfPreservesOrder(t *testing.T) {
	const p = 8
	w, err := comm.NewWorld(p)
	require.NoError(t, err)

	type result struct {
		size, rank int
		lower      bool
	}
	got := make([]result, p)
	require.NoError(t, w.Run(func(g comm.Group) error {
		_, mask := dimensions(g.Size())
		sub, rank, lower := splitHalf(g, mask)
		defer sub.Release()
		got[g.Rank()] = result{sub.Size(), rank, lower}
		return nil
	}))

	for r, res := range got {
		require.Equal(t, 4, res.size)
		require.Equal(t, r%4, res.rank)
		require.Equal(t, r < 4, res.lower)
	}
	require.Zero(t, w.OpenGroups())
}

func TestWithTagsPanics(t *testing.T) {
	require.PanicsWithValue(t, panicTagsInvalid, func() { WithTags(1, 1) })
	require.PanicsWithValue(t, panicTagsInvalid, func() { WithTags(-1, 2) })
	require.NotPanics(t, func() { WithTags(3, 4) })
}

func TestGatherOptions(t *testing.T) {
	o := gatherOptions()
	require.Equal(t, defaultOptions(), o)

	o = gatherOptions(WithQuadrantCombine(false), WithVerbose(true), WithTags(5, 6), nil)
	require.False(t, o.quadrant)
	require.True(t, o.verbose)
	require.Equal(t, 5, o.tagA)
	require.Equal(t, 6, o.tagB)
}
