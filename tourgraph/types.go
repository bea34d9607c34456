package tourgraph

import (
	"fmt"
	"math"

	"github.com/brindlewood/antcolony/matrix"
)

// Graph is an immutable dense weighted directed graph with string vertex
// labels. W[i][i] is always 0; an absent directed edge is +Inf. Built once
// at ingestion time and never mutated afterward.
type Graph struct {
	labels []string
	index  map[string]int
	w      *matrix.Dense
}

// VertexCount returns the number of vertices n.
func (g *Graph) VertexCount() int {
	return len(g.labels)
}

// Label returns the string label for vertex index i. Panics if i is out of
// range: callers within this module only ever pass indices produced by the
// Graph itself.
func (g *Graph) Label(i int) string {
	return g.labels[i]
}

// Weight returns W[i][j]: the directed edge weight from i to j, or +Inf if
// no such edge exists. Panics on out-of-range indices (programmer error,
// never a data-dependent condition).
func (g *Graph) Weight(i, j int) float64 {
	v, err := g.w.At(i, j)
	if err != nil {
		panic(fmt.Errorf("tourgraph: Weight(%d,%d): %w", i, j, err))
	}
	return v
}

// FromDense constructs a Graph from an explicit label slice and an n×n
// weight matrix. labels must be unique (ErrDuplicateLabel otherwise); vertex
// i is labels[i], so the slice order fixes the indexing and FromDense does
// not sort it (ParseGraphviz passes its labels already sorted). w must be
// n×n with a zero diagonal. Absent edges must already be encoded as +Inf
// in w.
func FromDense(labels []string, w *matrix.Dense) (*Graph, error) {
	n := len(labels)
	if n == 0 {
		return nil, ErrEmptyGraph
	}
	rows, cols := w.Shape()
	if rows != n || cols != n {
		return nil, ErrDimensionMismatch
	}
	seen := make(map[string]int, n)
	for i, label := range labels {
		if _, dup := seen[label]; dup {
			return nil, ErrDuplicateLabel
		}
		seen[label] = i
	}

	return &Graph{labels: labels, index: seen, w: w}, nil
}

// newWeightMatrix allocates the n×n weight table used by ingestion: zero
// diagonal, +Inf everywhere else. The NaN/Inf validation policy is
// disabled because +Inf is the sentinel for "no edge", not an error.
func newWeightMatrix(n int) (*matrix.Dense, error) {
	w, err := matrix.NewDenseWithPolicy(n, n, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if err := w.Set(i, j, math.Inf(1)); err != nil {
				return nil, err
			}
		}
	}
	return w, nil
}
