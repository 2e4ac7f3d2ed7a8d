package metaheur

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

var (
	// ErrUnknownAlgorithm is returned for an algorithm name with no driver.
	ErrUnknownAlgorithm = errors.New("metaheur: unknown algorithm")

	// ErrInvalidBudget is returned for a non-positive time budget.
	ErrInvalidBudget = errors.New("metaheur: time budget must be positive")
)

// Algorithm names a search driver.
type Algorithm string

const (
	// HillClimbing accepts neighbours that rank at least as high as the current candidate.
	HillClimbing Algorithm = "hill-climbing"
	// SimulatedAnnealing accepts worse neighbours with a cooling probability.
	SimulatedAnnealing Algorithm = "simulated-annealing"
	// RandomSearch samples independent candidates.
	RandomSearch Algorithm = "random-search"
)

// defaultCheckEvery caps how many iterations may pass between deadline/context checks.
const defaultCheckEvery = 64

// Algorithms lists every supported driver in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{HillClimbing, SimulatedAnnealing, RandomSearch}
}

// ParseAlgorithm maps a name to an Algorithm. Matching is case-insensitive.
func ParseAlgorithm(s string) (Algorithm, error) {
	name := Algorithm(strings.ToLower(strings.TrimSpace(s)))
	for _, a := range Algorithms() {
		if a == name {
			return a, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownAlgorithm)
}

// Options configures a driver run.
type Options struct {
	// Budget is the wall-clock time the driver may spend. Must be > 0.
	Budget time.Duration

	// RNG drives annealing acceptance. Nil means a fixed-seed stream.
	RNG *rand.Rand

	// Schedule controls the annealing temperature. Nil, or an
	// ExponentialSchedule with Start 0, means the starting temperature is
	// calibrated from sampled neighbour deltas.
	Schedule Schedule

	// CheckEvery caps the stride between deadline and context checks.
	// 0 means 64. The stride shrinks on its own when iterations are slow.
	CheckEvery int

	// Hook, when set, is called each time a new best candidate is found.
	Hook func(iter int, rank float64)
}

// Stats summarises one driver run.
type Stats struct {
	Iterations   int
	Improvements int
	BestRank     float64
	Elapsed      time.Duration
}

// Solve runs the named driver and returns a clone of the best candidate found.
//
// Errors: ErrUnknownAlgorithm, ErrInvalidBudget. Context cancellation is not
// an error: the driver stops early and still returns its best candidate.
func Solve[T any](ctx context.Context, alg Algorithm, p Problem[T], opts Options) (T, Stats, error) {
	var zero T
	if opts.Budget <= 0 {
		return zero, Stats{}, fmt.Errorf("%v: %w", opts.Budget, ErrInvalidBudget)
	}

	switch alg {
	case HillClimbing:
		best, st := HillClimb(ctx, p, opts)
		return best, st, nil
	case SimulatedAnnealing:
		best, st := Anneal(ctx, p, opts)
		return best, st, nil
	case RandomSearch:
		best, st := Sample(ctx, p, opts)
		return best, st, nil
	default:
		return zero, Stats{}, fmt.Errorf("%q: %w", string(alg), ErrUnknownAlgorithm)
	}
}
