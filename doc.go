// Package antcolony implements a parallel Ant Colony Optimization engine
// for approximating solutions to the Traveling Salesman Problem.
//
// An AntColonyParameters run spreads a colony of ants across a weighted
// graph over a number of iterations. Each ant builds a tour by sampling
// edges in proportion to pheromone strength and inverse edge weight; once
// every ant has finished, pheromone evaporates and is redeposited along
// the tours found, biasing future ants toward shorter routes.
//
// Subpackages:
//
//	tourgraph/  — graph ingestion (Graphviz-like text) and tour canonicalization
//	pheromone/  — the pheromone field and its per-iteration delta
//	antwalk/    — a single ant's probabilistic tour construction
//	besttrack/  — best-tour bookkeeping across ants and iterations
//	solver/     — sequential and parallel colony orchestration
//	runconfig/  — TOML parameter profiles for the CLI
//	genbench/   — synthetic benchmark graph generation
//	cmd/antcolony/ — the command-line frontend (run, bench)
//
// The sequential and parallel solvers draw from different random streams
// (one stream for a sequential run, one seed per worker and iteration for
// a parallel run), so their tours are not bit-identical; each mode is
// deterministic on its own, and both converge on the same best tour
// length on graphs whose optimum the colony can find.
package antcolony
