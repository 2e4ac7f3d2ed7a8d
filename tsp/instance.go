// Package tsp - problem instance.
//
// An Instance owns the point sequence and the distance table derived from it.
// It is built once, before any search starts, and is never mutated afterwards:
// every accessor either returns a value or a copy. Concurrent readers need no
// locking.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/tspsolver/matrix"
)

// Instance is a read-only TSP problem: points plus their distance table.
type Instance struct {
	points []Point       // nil when built from a bare distance table
	dist   *matrix.Dense // N×N, symmetric, zero diagonal
	w      []float64     // row-major prefetch of dist for unchecked hot-path reads
	n      int           // number of points
}

// NewInstance validates points and builds their distance table.
//
// Contracts:
//   - IDs are unique (ErrDuplicateID otherwise).
//   - Coordinates are finite (ErrNonFiniteCoord otherwise).
//   - Duplicate coordinates are allowed; such points stay distinct.
//
// Complexity: O(N²).
func NewInstance(points []Point) (*Instance, error) {
	seen := make(map[int]int, len(points))

	var (
		i  int
		p  Point
		at int
		ok bool
	)
	for i, p = range points {
		if at, ok = seen[p.ID]; ok {
			return nil, fmt.Errorf("points %d and %d share id %d: %w", at, i, p.ID, ErrDuplicateID)
		}
		seen[p.ID] = i
	}

	dist, err := BuildDistanceMatrix(points)
	if err != nil {
		return nil, err
	}

	own := make([]Point, len(points))
	copy(own, points)

	return &Instance{points: own, dist: dist, w: dist.Flat(), n: len(points)}, nil
}

// NewInstanceFromMatrix wraps a precomputed distance table. The table must be
// square, symmetric, zero on the diagonal, finite and non-negative. The
// resulting instance carries no coordinates.
//
// Complexity: O(N²).
func NewInstanceFromMatrix(dist matrix.Matrix) (*Instance, error) {
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return nil, err
	}
	if err := matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return nil, err
	}

	n := dist.Rows()
	own, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = dist.At(i, j) // shape already validated
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, matrix.ErrNaNInf)
			}
			if v < 0 {
				return nil, fmt.Errorf("entry (%d,%d): %w", i, j, ErrNegativeWeight)
			}
			if err = own.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return &Instance{dist: own, w: own.Flat(), n: n}, nil
}

// Len returns the number of points N.
func (in *Instance) Len() int { return in.n }

// Point returns the point at index i and whether it exists. Instances built
// from a bare distance table have no points.
func (in *Instance) Point(i int) (Point, bool) {
	if i < 0 || i >= len(in.points) {
		return Point{}, false
	}

	return in.points[i], true
}

// Matrix returns an independent copy of the distance table.
func (in *Instance) Matrix() *matrix.Dense {
	return in.dist.Clone().(*matrix.Dense)
}

// Distance returns the distance between indices i and j without bounds
// checks beyond the slice's own. Callers index within [0, Len()).
//
// Complexity: O(1).
func (in *Instance) Distance(i, j int) float64 {
	return in.w[i*in.n+j]
}
