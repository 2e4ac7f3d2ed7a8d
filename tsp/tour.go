// Package tsp - tour utilities operating purely on index orders.
//
// Provided helpers:
//   - ValidatePermutation: verify an order is a permutation of {0..n-1}.
//   - reverseSegmentInPlace: in-place segment reversal (2-opt core).
//   - CopyOrder: independent copy of an order slice.
//   - DebugString: compact printable representation for tests/debug.
//
// Design:
//   - No logging, no panics on user input - only sentinel errors from types.go.
//   - O(n) time for most helpers; in-place mutations avoid extra allocations.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that order is a permutation of {0..n-1} of length n.
// n==0 accepts only the empty order.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(order []int, n int) error {
	if len(order) != n {
		return fmt.Errorf("len %d, want %d: %w", len(order), n, ErrNotPermutation)
	}
	seen := make([]bool, n)

	var (
		i int
		v int
	)
	for i = 0; i < n; i++ {
		v = order[i]
		if v < 0 || v >= n {
			return fmt.Errorf("order[%d]=%d out of range: %w", i, v, ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("order[%d]=%d repeated: %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// reverseSegmentInPlace reverses order[lo..hi] (inclusive) by swapping
// positions lo+k and hi-k for k = 0..floor((hi-lo)/2). When the segment has
// odd length the middle element is swapped with itself.
//
// Contracts: 0 ≤ lo ≤ hi < len(order).
//
// Complexity: O(hi-lo) time, O(1) space.
func reverseSegmentInPlace(order []int, lo, hi int) {
	var (
		k     int
		pairs = (hi - lo) / 2
	)
	for k = 0; k <= pairs; k++ {
		order[lo+k], order[hi-k] = order[hi-k], order[lo+k]
	}
}

// CopyOrder returns an independent copy of the input order.
//
// Complexity: O(n) time, O(n) space.
func CopyOrder(order []int) []int {
	if order == nil {
		return nil
	}
	out := make([]int, len(order))
	copy(out, order)

	return out
}

// DebugString returns a compact printable representation of a closed tour,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closing edge.
//
// Complexity: O(n).
func DebugString(order []int) string {
	if len(order) == 0 {
		return "[]"
	}
	var (
		sb strings.Builder
		i  int
	)
	sb.WriteString("[")
	for i = range order {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(strconv.Itoa(order[i]))
	}
	sb.WriteString(" | ")
	sb.WriteString(strconv.Itoa(order[0]))
	sb.WriteString("]")

	return sb.String()
}
