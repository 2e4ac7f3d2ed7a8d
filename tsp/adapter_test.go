package tsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspsolver/metaheur"
	"github.com/katalvlaran/tspsolver/tsp"
)

func TestNewAdapter_Errors(t *testing.T) {
	_, err := tsp.NewAdapter(nil, tsp.RandomShuffle, nil)
	require.ErrorIs(t, err, tsp.ErrNilInstance)

	_, err = tsp.NewAdapter(mustInstance(t, circle(4)), tsp.Construction(7), nil)
	require.ErrorIs(t, err, tsp.ErrUnknownConstruction)
}

func TestAdapter_Capabilities(t *testing.T) {
	in := mustInstance(t, circle(12))
	a, err := tsp.NewAdapter(in, tsp.RandomShuffle, tsp.NewRand(seedDet))
	require.NoError(t, err)

	c := a.Generate()
	require.NoError(t, c.Validate(in))
	assert.Equal(t, tsp.Rank(c), a.Rank(c))

	n := a.Tweak(c)
	require.NoError(t, n.Validate(in))

	cp := a.Clone(c)
	assert.Equal(t, c.Order, cp.Order)
	assert.NotSame(t, c, cp)
}

func TestAdapter_HillClimbImprovesOnGreedy(t *testing.T) {
	in := mustInstance(t, circle(30))
	greedy, err := tsp.Construct(in, tsp.GreedyNearest, nil)
	require.NoError(t, err)

	a, err := tsp.NewAdapter(in, tsp.GreedyNearest, tsp.NewRand(seedDet))
	require.NoError(t, err)
	best, st, err := metaheur.Solve[*tsp.Candidate](context.Background(), metaheur.HillClimbing, a,
		metaheur.Options{Budget: 50 * time.Millisecond})
	require.NoError(t, err)
	require.NoError(t, best.Validate(in))
	assert.LessOrEqual(t, best.Length, greedy.Length+tsp.LengthTol)
	assert.Positive(t, st.Iterations)
}

func TestSpanningTreeBound(t *testing.T) {
	assert.Zero(t, tsp.SpanningTreeBound(nil))
	assert.Zero(t, tsp.SpanningTreeBound(mustInstance(t, []tsp.Point{{ID: 1}})))

	// Unit square: MST = 3, optimal tour = 4.
	sq := mustInstance(t, []tsp.Point{{ID: 1}, {ID: 2, X: 1}, {ID: 3, X: 1, Y: 1}, {ID: 4, Y: 1}})
	assert.InDelta(t, 3.0, tsp.SpanningTreeBound(sq), 1e-9)

	in := mustInstance(t, circle(20))
	bound := tsp.SpanningTreeBound(in)
	rng := tsp.NewRand(seedDet)
	for i := 0; i < 10; i++ {
		c, err := tsp.Construct(in, tsp.RandomShuffle, rng)
		require.NoError(t, err)
		assert.LessOrEqual(t, bound, c.Length)
	}
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, tsp.DeriveSeed(99, 3), tsp.DeriveSeed(99, 3))
	assert.NotEqual(t, tsp.DeriveSeed(99, 3), tsp.DeriveSeed(99, 4))
	assert.NotEqual(t, tsp.DeriveSeed(99, 3), tsp.DeriveSeed(98, 3))

	a, b := tsp.NewRand(0), tsp.NewRand(1)
	assert.Equal(t, a.Int63(), b.Int63(), "seed 0 maps to the default stream")
}
