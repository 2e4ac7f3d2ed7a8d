// Package tsp - tour candidate.
//
// A Candidate is a permutation of point indices together with its cached
// closed-tour length. Every operation that changes Order also refreshes Length,
// either from scratch (NewCandidate, Recompute) or incrementally (TweakAt).
// Candidates are never shared between runs.
package tsp

import "fmt"

// Candidate is a tour together with its evaluated cost.
type Candidate struct {
	// Order is a permutation of 0..N-1; Order[k] is the k-th visited point index.
	Order []int

	// Length is the closed-tour length of Order.
	Length float64
}

// NewCandidate copies order, validates it against in and computes its length.
//
// Errors: ErrNilInstance, ErrNotPermutation.
// Complexity: O(n).
func NewCandidate(in *Instance, order []int) (*Candidate, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	if err := ValidatePermutation(order, in.n); err != nil {
		return nil, err
	}
	own := CopyOrder(order)

	return &Candidate{Order: own, Length: tourLength(in, own)}, nil
}

// Clone returns an independent deep copy.
func (c *Candidate) Clone() *Candidate {
	return &Candidate{Order: CopyOrder(c.Order), Length: c.Length}
}

// Recompute refreshes Length from scratch, discarding incremental drift.
// Order must already be a valid permutation for in.
func (c *Candidate) Recompute(in *Instance) {
	c.Length = tourLength(in, c.Order)
}

// Validate checks the permutation invariant and that Length agrees with a
// from-scratch recomputation within LengthTol.
//
// Errors: ErrNilInstance, ErrNotPermutation, ErrLengthMismatch.
func (c *Candidate) Validate(in *Instance) error {
	if in == nil {
		return ErrNilInstance
	}
	if err := ValidatePermutation(c.Order, in.n); err != nil {
		return err
	}
	if want := tourLength(in, c.Order); !lengthsAgree(c.Length, want) {
		return fmt.Errorf("cached %.12g, recomputed %.12g: %w", c.Length, want, ErrLengthMismatch)
	}

	return nil
}

// String implements fmt.Stringer.
func (c *Candidate) String() string {
	return fmt.Sprintf("%s len=%.6f", DebugString(c.Order), c.Length)
}
