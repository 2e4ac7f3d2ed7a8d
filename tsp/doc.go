// Package tsp provides the Travelling Salesman Problem search machinery used
// by the batch solver: problem instances over 2-D points, tour candidates,
// initial-tour constructors, the 2-opt mutation operator and the ranking
// adapter consumed by package metaheur.
//
// The building blocks, leaf first:
//
//   - Point - immutable location with identity (ID) and Euclidean distance.
//   - BuildDistanceMatrix - all pairwise distances, computed once, O(N²).
//   - Instance - read-only points + distance table, shared by concurrent runs.
//   - Candidate - permutation of point indices with its cached tour length.
//   - Construct - RandomShuffle or GreedyNearest initial tours.
//   - Tweak - random segment reversal with O(1) length update.
//   - Rank - maps length to a score where higher is better.
//   - Adapter - binds the above to metaheur.Problem for one run.
//   - SpanningTreeBound - MST lower bound used to report optimality gaps.
//
// All randomness is passed explicitly as *rand.Rand; there is no package-level
// generator. Same seed ⇒ same tours.
//
// Use this package for approximate tours on instances of any size; there is
// no exact solver here.
package tsp
