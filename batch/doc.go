// Package batch runs a configured number of independent search runs over one
// TSP instance and aggregates their outcomes.
//
// Runs execute either one after another or in bounded-parallel batches:
// runs are split into consecutive batches of at most W (see Partition), each
// batch runs with one goroutine per run, and the next batch starts only when
// every run of the current one has finished.
//
// The instance is shared read-only. Every run owns its adapter, its RNG
// (seeded from the batch seed and the run number) and its candidates, so the
// only synchronisation point is the per-batch join.
//
// A run that fails (unknown algorithm, unknown construction, panic, invalid
// result) is recorded in its Result and never affects sibling runs.
package batch
