package runner_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypermm/matrix"
	"github.com/katalvlaran/hypermm/runner"
)

func TestDefaultConfig(t *testing.T) {
	cfg := runner.DefaultConfig()
	assert.Equal(t, 4, cfg.N)
	assert.Equal(t, 4, cfg.Procs)
	assert.True(t, cfg.QuadrantCombine)
	assert.False(t, cfg.Timed)
	require.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		n, procs int
		wantErr  error
	}{
		{"ok single", 1, 1, nil},
		{"ok eight", 5, 8, nil},
		{"zero size", 0, 4, runner.ErrBadSize},
		{"negative size", -3, 4, runner.ErrBadSize},
		{"three procs", 4, 3, runner.ErrProcsNotPowerOfTwo},
		{"six procs", 4, 6, runner.ErrProcsNotPowerOfTwo},
		{"zero procs", 4, 0, runner.ErrProcsNotPowerOfTwo},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := runner.DefaultConfig()
			cfg.N, cfg.Procs = tc.n, tc.procs
			err := cfg.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRunRejectsBeforeStarting(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.Procs = 3
	res, err := runner.Run(cfg)
	require.ErrorIs(t, err, runner.ErrProcsNotPowerOfTwo)
	require.Nil(t, res)
}

func TestRunMatchesSequential(t *testing.T) {
	for _, procs := range []int{1, 2, 4, 8, 16} {
		for _, quadrant := range []bool{true, false} {
			cfg := runner.DefaultConfig()
			cfg.N, cfg.Procs, cfg.QuadrantCombine = 10, procs, quadrant

			res, err := runner.Run(cfg)
			require.NoError(t, err)
			assert.True(t, res.Agree, "procs=%d", procs)
			assert.Zero(t, res.OpenGroups, "procs=%d", procs)
			assert.LessOrEqual(t, res.Residual(), 1e-9, "procs=%d", procs)
			assert.Zero(t, res.Elapsed)
		}
	}
}

func TestRunIsDeterministic(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.Seed = 42

	first, err := runner.Run(cfg)
	require.NoError(t, err)
	second, err := runner.Run(cfg)
	require.NoError(t, err)

	require.Equal(t, first.A.Data(), second.A.Data())
	require.Equal(t, first.B.Data(), second.B.Data())
	require.Equal(t, first.C.Data(), second.C.Data())
	require.NotEqual(t, first.A.Data(), first.B.Data(), "A and B come from one stream")

	cfg.Seed = 43
	third, err := runner.Run(cfg)
	require.NoError(t, err)
	require.NotEqual(t, first.A.Data(), third.A.Data())
}

func TestRunTimed(t *testing.T) {
	cfg := runner.DefaultConfig()
	cfg.N, cfg.Timed = 16, true
	res, err := runner.Run(cfg)
	require.NoError(t, err)
	assert.Positive(t, res.Elapsed)
	assert.EqualValues(t, 8, res.Messages)
}

func TestFormat(t *testing.T) {
	m, err := matrix.NewDenseFrom(2, 2, []float64{1, 2.5, 10, 0.125})
	require.NoError(t, err)

	want := "M:\n" +
		"  1.00   2.50 \n" +
		" 10.00   0.12 \n" +
		"\n"
	assert.Equal(t, want, runner.Format("M", m))
}

func TestDump(t *testing.T) {
	res, err := runner.Run(runner.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, res.Dump(&buf))
	out := buf.String()
	for _, name := range []string{"Matrix A:", "Matrix B:", "Matrix C (Result):"} {
		assert.Contains(t, out, name)
	}
	// three headers, four rows each, three blank lines
	assert.Equal(t, 3*(1+4+1), strings.Count(out, "\n"))
}
