package tsp

import "errors"

// Sentinel errors returned by the tsp package. Callers match them with errors.Is;
// functions may wrap them with positional context via %w.
var (
	// ErrNilInstance is returned when a nil *Instance is passed to an operation.
	ErrNilInstance = errors.New("tsp: nil instance")

	// ErrDimensionMismatch signals an index or slice length outside the instance size.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrDuplicateID is returned when two points of one instance share an ID.
	ErrDuplicateID = errors.New("tsp: duplicate point id")

	// ErrNonFiniteCoord is returned when a coordinate is NaN or ±Inf.
	ErrNonFiniteCoord = errors.New("tsp: non-finite coordinate")

	// ErrNegativeWeight is returned when a supplied distance table has a negative entry.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrNotPermutation signals a tour order with repeats or omissions.
	ErrNotPermutation = errors.New("tsp: order is not a permutation")

	// ErrLengthMismatch signals a cached tour length that disagrees with its order.
	ErrLengthMismatch = errors.New("tsp: cached length does not match order")

	// ErrInternalConsistency is returned when a constructor fails its own
	// postcondition (e.g. greedy construction visiting fewer than N points).
	ErrInternalConsistency = errors.New("tsp: internal consistency violation")

	// ErrUnknownConstruction is returned for an unrecognised construction name.
	ErrUnknownConstruction = errors.New("tsp: unknown construction strategy")
)

// LengthTol is the relative tolerance used when comparing a cached tour length
// against a from-scratch recomputation. Incremental 2-opt updates accumulate
// rounding error, so exact equality is not expected.
const LengthTol = 1e-9

// symTol is the structural tolerance for symmetry/diagonal checks on
// caller-supplied distance tables.
const symTol = 1e-12
