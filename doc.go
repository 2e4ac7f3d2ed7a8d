// Package tspsolver finds short closed tours through a set of 2-D points
// with time-budgeted local search.
//
// Layout:
//
//	matrix/     - dense row-major distance table + validators
//	tsp/        - instance, tour candidates, constructors, 2-opt mutation, ranking, lower bound
//	metaheur/   - generic drivers: hill climbing, simulated annealing, random search
//	batch/      - multi-run orchestrator (sequential or bounded-parallel), report, metrics
//	reader/     - coordinate and TSPLIB NODE_COORD_SECTION parsing
//	config/     - YAML settings
//	common/     - context-carried logger
//	cli/        - cobra command
//	cmd/tspsolver - binary entry point
//
// Quick start:
//
//	tspsolver -f berlin52.tsp -d 5 -a simulated-annealing -r 8 -p
//
// prints one "#<run> score <length>" line per run and the best score with
// its spanning-tree lower bound.
package tspsolver
