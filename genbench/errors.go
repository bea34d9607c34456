package genbench

import "errors"

// ErrTooFewVertices indicates Synthetic was asked for fewer than two
// vertices, which cannot host a Hamiltonian cycle.
var ErrTooFewVertices = errors.New("genbench: need at least two vertices")
