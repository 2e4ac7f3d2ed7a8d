// Package tsp - search adapter.
//
// Adapter binds an Instance, a construction strategy and one private RNG to
// the metaheur.Problem capability set {Generate, Tweak, Rank, Clone}. Each
// run owns exactly one Adapter; adapters are not safe for concurrent use
// because the RNG is not.
package tsp

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/tspsolver/metaheur"
)

var _ metaheur.Problem[*Candidate] = (*Adapter)(nil)

// Adapter implements metaheur.Problem for TSP tours.
type Adapter struct {
	in   *Instance
	kind Construction
	rng  *rand.Rand
}

// NewAdapter validates its inputs and returns a ready adapter.
// A nil rng is replaced by the deterministic default stream.
//
// Errors: ErrNilInstance, ErrUnknownConstruction.
func NewAdapter(in *Instance, kind Construction, rng *rand.Rand) (*Adapter, error) {
	if in == nil {
		return nil, ErrNilInstance
	}
	if kind != RandomShuffle && kind != GreedyNearest {
		return nil, fmt.Errorf("%s: %w", kind, ErrUnknownConstruction)
	}
	if rng == nil {
		rng = NewRand(0)
	}

	return &Adapter{in: in, kind: kind, rng: rng}, nil
}

// Generate builds a fresh initial candidate.
// The driver contract has no error path, so a constructor failure (only
// ErrInternalConsistency is possible after NewAdapter) panics; the batch
// orchestrator recovers it as that run's failure.
func (a *Adapter) Generate() *Candidate {
	c, err := Construct(a.in, a.kind, a.rng)
	if err != nil {
		panic(err)
	}

	return c
}

// Tweak returns a random 2-opt neighbour of c.
func (a *Adapter) Tweak(c *Candidate) *Candidate {
	return Tweak(a.in, c, a.rng)
}

// Rank scores c; higher is better.
func (a *Adapter) Rank(c *Candidate) float64 {
	return Rank(c)
}

// Clone returns an independent copy of c.
func (a *Adapter) Clone(c *Candidate) *Candidate {
	return c.Clone()
}
