// Package tsp - initial-tour constructors.
//
// Two interchangeable strategies seed a search run:
//
//   - RandomShuffle: a uniformly random permutation (Fisher–Yates) drawn from
//     the run's private RNG. Every permutation is reachable.
//   - GreedyNearest: nearest-unvisited-neighbour path from index 0. Ties go to
//     the lowest index. Deterministic for a given instance; the RNG is unused.
//
// Visited status is tracked by index, never by coordinates: two points at
// the same location are still two stops.
package tsp

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// Construction selects an initial-tour strategy.
type Construction int

const (
	// RandomShuffle builds a uniformly random permutation.
	RandomShuffle Construction = iota
	// GreedyNearest builds a nearest-neighbour path from index 0.
	GreedyNearest
)

// String returns the canonical flag value of the construction.
func (c Construction) String() string {
	switch c {
	case RandomShuffle:
		return "random"
	case GreedyNearest:
		return "greedy"
	default:
		return fmt.Sprintf("construction(%d)", int(c))
	}
}

// ParseConstruction maps a flag value ("random", "greedy") to a Construction.
// Matching is case-insensitive; "shuffle" and "nearest" are accepted aliases.
//
// Errors: ErrUnknownConstruction.
func ParseConstruction(s string) (Construction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random", "shuffle", "random-shuffle":
		return RandomShuffle, nil
	case "greedy", "nearest", "greedy-nearest":
		return GreedyNearest, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownConstruction)
	}
}

// Construct builds an initial candidate for in using the selected strategy.
// rng is only consulted by RandomShuffle.
//
// Errors: ErrNilInstance, ErrUnknownConstruction, ErrInternalConsistency.
// Complexity: RandomShuffle O(n); GreedyNearest O(n²).
func Construct(in *Instance, kind Construction, rng *rand.Rand) (*Candidate, error) {
	if in == nil {
		return nil, ErrNilInstance
	}

	var (
		order []int
		err   error
	)
	switch kind {
	case RandomShuffle:
		order, err = permRange(in.n, rng)
	case GreedyNearest:
		order, err = greedyNearestOrder(in)
	default:
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownConstruction)
	}
	if err != nil {
		return nil, err
	}

	return &Candidate{Order: order, Length: tourLength(in, order)}, nil
}

// greedyNearestOrder walks from index 0, always stepping to the closest
// unvisited index (lowest index on ties), until every index is visited.
//
// Complexity: O(n²) time, O(n) space.
func greedyNearestOrder(in *Instance) ([]int, error) {
	var n = in.n
	order := make([]int, 0, n)
	if n == 0 {
		return order, nil
	}
	visited := make([]bool, n)

	var (
		cur   = 0
		next  int
		best  float64
		d     float64
		v     int
		steps int
	)
	visited[cur] = true
	order = append(order, cur)

	for steps = 1; steps < n; steps++ {
		next, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			// Strict < keeps the lowest index among equal distances.
			if d = in.Distance(cur, v); d < best {
				next, best = v, d
			}
		}
		if next < 0 {
			break
		}
		visited[next] = true
		order = append(order, next)
		cur = next
	}

	if len(order) != n {
		return nil, fmt.Errorf("greedy visited %d of %d points: %w", len(order), n, ErrInternalConsistency)
	}

	return order, nil
}
