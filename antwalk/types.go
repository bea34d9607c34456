package antwalk

import "math"

// AntPath is the result of one ant's tour construction: either a
// Hamiltonian cycle of n+1 vertex indices with a finite Length, or an
// empty Path with Length == +Inf on failure.
type AntPath struct {
	Path   []int
	Length float64
}

// Failed reports whether this path represents a failed construction.
func (p AntPath) Failed() bool {
	return len(p.Path) == 0 || math.IsInf(p.Length, 1)
}

// failedPath is the canonical zero-value failure result.
func failedPath() AntPath {
	return AntPath{Path: nil, Length: math.Inf(1)}
}
