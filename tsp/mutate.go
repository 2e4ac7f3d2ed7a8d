// Package tsp - neighbour generation (2-opt segment reversal).
//
// Tweak picks two positions a, b uniformly in [0, N) with replacement and
// reverses order[min(a,b)..max(a,b)] on a copy of the tour. Only the two
// boundary edges of the segment change, so the length is updated in O(1):
//
//	p = order[lo-1], f = order[lo], l = order[hi], s = order[hi+1] (cyclic)
//	Δ = w(p,l) + w(f,s) − w(p,f) − w(l,s)
//
// Reversing the whole tour (lo==0, hi==N-1) and the degenerate a==b move
// keep the length unchanged. The input candidate is never mutated and every
// call returns a fresh candidate.
//
// Complexity: O(hi-lo) for the reversal, O(1) for the length update.
package tsp

import (
	"fmt"
	"math/rand"
)

// Tweak returns a neighbour of c produced by one random segment reversal.
// Tours with N ≤ 1 have no neighbours; a clone is returned.
func Tweak(in *Instance, c *Candidate, rng *rand.Rand) *Candidate {
	var n = len(c.Order)
	if n <= 1 {
		return c.Clone()
	}
	a := rng.Intn(n)
	b := rng.Intn(n)

	return tweakAt(in, c, a, b)
}

// TweakAt applies the segment reversal between positions a and b
// deterministically. a==b is a legal no-op that still returns a clone.
//
// Errors: ErrNilInstance, ErrDimensionMismatch (position outside [0, N)).
func TweakAt(in *Instance, c *Candidate, a, b int) (*Candidate, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	var n = len(c.Order)
	if n != in.n {
		return nil, fmt.Errorf("candidate has %d stops, instance %d: %w", n, in.n, ErrDimensionMismatch)
	}
	if a < 0 || a >= n || b < 0 || b >= n {
		return nil, fmt.Errorf("positions (%d,%d) outside [0,%d): %w", a, b, n, ErrDimensionMismatch)
	}

	return tweakAt(in, c, a, b), nil
}

// tweakAt is the unchecked core shared by Tweak and TweakAt.
func tweakAt(in *Instance, c *Candidate, a, b int) *Candidate {
	out := c.Clone()

	lo, hi := min(a, b), max(a, b)
	if lo == hi {
		return out
	}

	var n = len(out.Order)
	if lo == 0 && hi == n-1 {
		// Full reversal walks the same cycle backwards.
		reverseSegmentInPlace(out.Order, lo, hi)
		return out
	}

	var (
		p = out.Order[(lo-1+n)%n]
		f = out.Order[lo]
		l = out.Order[hi]
		s = out.Order[(hi+1)%n]
	)
	delta := in.Distance(p, l) + in.Distance(f, s) - in.Distance(p, f) - in.Distance(l, s)

	reverseSegmentInPlace(out.Order, lo, hi)
	out.Length += delta

	return out
}
