// Package solver orchestrates the ant colony optimization loop: running
// ants sequentially or fanned out across worker goroutines, merging
// per-worker pheromone deltas, and returning a TourResult describing the
// best tour(s) found.
package solver
