// Package pheromone implements the PheromoneField: a dense matrix of
// pheromone levels with the evaporation/deposit update rule and a lower
// clamp floor, shared read-only within an iteration and updated once
// between iterations.
package pheromone
