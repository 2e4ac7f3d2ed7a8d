package metaheur

// Problem is the capability set a problem adapter exposes to the drivers.
//
// Implementations own whatever randomness they need and are used by exactly
// one driver at a time.
type Problem[T any] interface {
	// Generate produces a fresh initial candidate.
	Generate() T

	// Tweak produces a neighbouring candidate without mutating its input.
	Tweak(T) T

	// Rank scores a candidate; higher is better.
	Rank(T) float64

	// Clone returns an independent deep copy.
	Clone(T) T
}
