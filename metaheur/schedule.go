package metaheur

import "math"

// DefaultEndRatio is the final/initial temperature ratio used when an
// ExponentialSchedule leaves EndRatio unset.
const DefaultEndRatio = 1e-3

// Schedule provides the annealing temperature for an elapsed fraction of the
// budget, frac ∈ [0, 1].
type Schedule interface {
	Temperature(frac float64) float64
}

// ExponentialSchedule cools geometrically from Start to Start·EndRatio.
// EndRatio outside (0, 1) falls back to DefaultEndRatio.
type ExponentialSchedule struct {
	Start    float64
	EndRatio float64
}

// Temperature implements Schedule.
func (e ExponentialSchedule) Temperature(frac float64) float64 {
	if e.Start <= 0 {
		return 0
	}
	ratio := e.EndRatio
	if ratio <= 0 || ratio >= 1 {
		ratio = DefaultEndRatio
	}

	return e.Start * math.Pow(ratio, clamp01(frac))
}

// LinearSchedule cools linearly from Start to End.
type LinearSchedule struct {
	Start float64
	End   float64
}

// Temperature implements Schedule.
func (l LinearSchedule) Temperature(frac float64) float64 {
	return l.Start + clamp01(frac)*(l.End-l.Start)
}

func clamp01(x float64) float64 {
	return math.Max(0, math.Min(1, x))
}
