// Package tsp_test holds shared fixtures for the tsp tests.
package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolver/matrix"
	"github.com/katalvlaran/tspsolver/tsp"
)

// seedDet is the fixed seed used wherever a test needs an RNG.
const seedDet = int64(42)

// denseFrom builds a square matrix from rows.
func denseFrom(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewSquare(len(rows))
	require.NoError(t, err)
	for i, row := range rows {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}

	return m
}

// circle returns n points on a slightly rippled circle, IDs 1..n.
func circle(n int) []tsp.Point {
	pts := make([]tsp.Point, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 10 + 0.25*float64(i%3)
		pts[i] = tsp.Point{ID: i + 1, X: r * math.Cos(th), Y: r * math.Sin(th)}
	}

	return pts
}

// mustInstance builds an instance or fails the test.
func mustInstance(t *testing.T, pts []tsp.Point) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstance(pts)
	require.NoError(t, err)

	return in
}

// threeCity is the 3×3 table [[0,3.9,6.44],[3.9,0,4.7],[6.44,4.7,0]].
func threeCity(t *testing.T) *tsp.Instance {
	t.Helper()
	in, err := tsp.NewInstanceFromMatrix(denseFrom(t, [][]float64{
		{0, 3.9, 6.44},
		{3.9, 0, 4.7},
		{6.44, 4.7, 0},
	}))
	require.NoError(t, err)

	return in
}
