package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolver/tsp"
)

func TestTourLength_ThreeCity(t *testing.T) {
	in := threeCity(t)

	got, err := tsp.TourLength(in, []int{1, 0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 15.04, got, 1e-9)

	c, err := tsp.NewCandidate(in, []int{1, 0, 2})
	require.NoError(t, err)
	assert.InDelta(t, 15.04, c.Length, 1e-9)
}

func TestTourLength_Degenerate(t *testing.T) {
	in := mustInstance(t, []tsp.Point{{ID: 1, X: 4, Y: 4}})
	got, err := tsp.TourLength(in, []int{0})
	require.NoError(t, err)
	assert.Zero(t, got)

	empty := mustInstance(t, nil)
	got, err = tsp.TourLength(empty, nil)
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = tsp.TourLength(in, []int{1})
	require.ErrorIs(t, err, tsp.ErrDimensionMismatch)

	_, err = tsp.TourLength(nil, []int{0})
	require.ErrorIs(t, err, tsp.ErrNilInstance)
}

func TestValidatePermutation(t *testing.T) {
	require.NoError(t, tsp.ValidatePermutation([]int{2, 0, 1}, 3))
	require.NoError(t, tsp.ValidatePermutation(nil, 0))

	for name, order := range map[string][]int{
		"short":    {0, 1},
		"repeated": {0, 1, 1},
		"range":    {0, 1, 3},
		"negative": {0, -1, 2},
	} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, tsp.ValidatePermutation(order, 3), tsp.ErrNotPermutation)
		})
	}
}

func TestCandidate_CloneIndependent(t *testing.T) {
	in := threeCity(t)
	c, err := tsp.NewCandidate(in, []int{0, 1, 2})
	require.NoError(t, err)

	cp := c.Clone()
	cp.Order[0] = 2
	assert.Equal(t, []int{0, 1, 2}, c.Order)
	assert.Equal(t, c.Length, cp.Length)
}

func TestCandidate_Validate(t *testing.T) {
	in := threeCity(t)
	c, err := tsp.NewCandidate(in, []int{2, 1, 0})
	require.NoError(t, err)
	require.NoError(t, c.Validate(in))

	c.Length += 1
	require.ErrorIs(t, c.Validate(in), tsp.ErrLengthMismatch)

	c.Recompute(in)
	require.NoError(t, c.Validate(in))

	c.Order[1] = 2
	require.ErrorIs(t, c.Validate(in), tsp.ErrNotPermutation)

	_, err = tsp.NewCandidate(in, []int{0, 0, 1})
	require.ErrorIs(t, err, tsp.ErrNotPermutation)
}

func TestCandidate_String(t *testing.T) {
	in := threeCity(t)
	c, err := tsp.NewCandidate(in, []int{1, 0, 2})
	require.NoError(t, err)
	assert.Contains(t, c.String(), "len=15.040000")
}
