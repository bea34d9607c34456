// Package antwalk implements one ant's stochastic tour construction: given
// a pheromone snapshot, a graph, (alpha, beta) parameters and a private
// random source, produce a Hamiltonian AntPath or declare failure.
//
// Construction proceeds through the state machine
// Start -> Extending -> (Closed | Failed) described in the solver's
// design notes; this package exposes only the entry point, Walk, since the
// intermediate states are not observable from outside one call.
package antwalk
