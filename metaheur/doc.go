// Package metaheur implements generic time-budgeted metaheuristic search
// drivers over any candidate type T.
//
// A problem adapter supplies the capability set {Generate, Tweak, Rank, Clone}
// (see Problem). The driver repeatedly asks for neighbours and keeps the best
// candidate seen until the budget elapses or the context is cancelled:
//
//   - hill-climbing: move to the neighbour whenever it ranks at least as high.
//   - simulated-annealing: also accept worse neighbours with probability
//     exp(Δrank / T), T cooling over the elapsed fraction of the budget.
//   - random-search: sample fresh candidates from Generate and keep the best.
//
// Ranking convention: higher Rank is better. Drivers never mutate candidates;
// they rely on Tweak returning a fresh value.
//
// Determinism: all driver randomness comes from Options.RNG. The wall-clock
// budget makes iteration counts, and therefore results, timing-dependent.
package metaheur
