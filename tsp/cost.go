// Package tsp - cost utilities.
//
// TourLength computes the total length of a closed tour given as an order of
// point indices: the sum of consecutive edges plus the closing edge from the
// last index back to the first.
//
// Design:
//   - Strict index validation on the public entry point; the unexported
//     tourLength is the unchecked hot-path variant for already-validated orders.
//   - Stable summation: rounded to 1e-9 to avoid cross-platform FP noise.
//
// Complexity:
//   - O(n) time, O(1) extra space.
package tsp

import (
	"fmt"
	"math"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourLength returns the closed-tour length of order over in.
// An empty order has length 0; a single index has length 0 (self loop).
//
// Errors: ErrNilInstance, ErrDimensionMismatch (index outside [0, N)).
func TourLength(in *Instance, order []int) (float64, error) {
	if in == nil {
		return 0, ErrNilInstance
	}

	var (
		i int
		v int
	)
	for i, v = range order {
		if v < 0 || v >= in.n {
			return 0, fmt.Errorf("order[%d]=%d outside [0,%d): %w", i, v, in.n, ErrDimensionMismatch)
		}
	}

	return tourLength(in, order), nil
}

// tourLength sums the cycle edges order[k]→order[k+1] plus order[last]→order[0].
// Indices are assumed valid.
func tourLength(in *Instance, order []int) float64 {
	var n = len(order)
	if n < 2 {
		return 0
	}

	var (
		sum float64
		k   int
	)
	for k = 0; k < n-1; k++ {
		sum += in.Distance(order[k], order[k+1])
	}
	sum += in.Distance(order[n-1], order[0])

	return round1e9(sum)
}

// lengthsAgree compares two tour lengths with the relative LengthTol.
func lengthsAgree(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return math.Abs(a-b) <= LengthTol*scale
}

// round1e9 returns x rounded to 1e-9 absolute precision.
//
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
