// Package tsp - distance matrix builder.
//
// BuildDistanceMatrix precomputes every pairwise Euclidean distance once per
// instance. Lookups everywhere else are by position in the point slice, never
// by Point.ID, so the row/column order here defines the index space used by
// tours, constructors and the mutation operator.
//
// Design:
//   - Upper triangle is computed, lower triangle mirrored: symmetry holds by
//     construction, not by floating-point luck.
//   - Diagonal stays at the zero written by matrix.NewDense.
//
// Complexity: O(N²) time and space; no approximation.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/tspsolver/matrix"
)

// BuildDistanceMatrix returns the N×N Euclidean distance table for points.
// N==0 yields an empty 0×0 matrix and N==1 yields [[0]].
//
// Errors: ErrNonFiniteCoord when a coordinate is NaN/±Inf (wrapped with the index).
func BuildDistanceMatrix(points []Point) (*matrix.Dense, error) {
	var (
		n   = len(points)
		i   int
		j   int
		d   float64
		err error
	)
	for i = 0; i < n; i++ {
		if !points[i].finite() {
			return nil, fmt.Errorf("point %d (id %d): %w", i, points[i].ID, ErrNonFiniteCoord)
		}
	}

	m, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = Distance(points[i], points[j])
			if err = m.Set(i, j, d); err != nil {
				return nil, err
			}
			if err = m.Set(j, i, d); err != nil {
				return nil, err
			}
		}
	}

	return m, nil
}
