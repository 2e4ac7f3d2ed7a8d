package metaheur

import (
	"context"
	"time"
)

// checkSlices is how many clock checks a run aims for across its budget.
const checkSlices = 200

// budget tracks the wall-clock allowance of one run.
//
// The first call to expired always consults the clock. After that the stride
// between checks adapts to the measured iteration cost: it halves while the
// gap between checks exceeds budget/checkSlices and doubles, up to the
// CheckEvery cap, while the gap stays well under it. An expensive iteration
// therefore drives the stride to 1 and a run overshoots by at most one
// iteration.
type budget struct {
	ctx       context.Context
	start     time.Time
	deadline  time.Time
	lastCheck time.Time
	total     time.Duration
	slice     time.Duration
	every     int // current stride
	maxEvery  int
	step      int
	checked   bool // the last expired call read the clock
	done      bool
}

func newBudget(ctx context.Context, opts Options) *budget {
	maxEvery := opts.CheckEvery
	if maxEvery <= 0 {
		maxEvery = defaultCheckEvery
	}
	now := time.Now()

	return &budget{
		ctx:       ctx,
		start:     now,
		deadline:  now.Add(opts.Budget),
		lastCheck: now,
		total:     opts.Budget,
		slice:     opts.Budget / checkSlices,
		every:     1,
		maxEvery:  maxEvery,
	}
}

// expired reports whether the run must stop. Once true it stays true.
func (b *budget) expired() bool {
	b.checked = false
	if b.done {
		return true
	}
	b.step++
	if b.step < b.every {
		return false
	}
	b.step = 0
	b.checked = true

	now := time.Now()
	if b.ctx.Err() != nil || !now.Before(b.deadline) {
		b.done = true
		return true
	}

	gap := now.Sub(b.lastCheck)
	b.lastCheck = now
	switch {
	case gap > b.slice && b.every > 1:
		b.every /= 2
	case gap < b.slice/4 && b.every < b.maxEvery:
		b.every = min(2*b.every, b.maxEvery)
	}

	return false
}

// fraction returns the elapsed share of the budget in [0, 1] as of the
// latest clock check.
func (b *budget) fraction() float64 {
	f := float64(b.lastCheck.Sub(b.start)) / float64(b.total)
	if f > 1 {
		return 1
	}

	return f
}

func (b *budget) elapsed() time.Duration {
	return time.Since(b.start)
}
