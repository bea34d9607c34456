// Package genbench generates synthetic benchmark graphs with a guaranteed
// Hamiltonian base cycle plus random extra out-edges, the same shape the
// original benchmark harness used to stress-test the solver at scale.
//
// Vertex bookkeeping (IDs, degree tracking) goes through a core.Graph
// built with builder's ID-scheme helpers; edge existence and the actual
// floating-point edge weights are kept in a local map and then written
// into the matrix.Dense handed to tourgraph.FromDense, since core.Graph's edge
// weights are integral and would truncate the continuous [1,100) range.
package genbench
