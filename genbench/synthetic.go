package genbench

import (
	"math"
	"math/rand"

	"github.com/brindlewood/antcolony/builder"
	"github.com/brindlewood/antcolony/core"
	"github.com/brindlewood/antcolony/matrix"
	"github.com/brindlewood/antcolony/tourgraph"
)

const (
	minWeight = 1.0
	maxWeight = 100.0
)

// Synthetic builds a directed graph on n vertices: a guaranteed
// Hamiltonian base cycle v(i) -> v((i+1) mod n), plus, per vertex, random
// extra out-edges up to maxOutDegree, with weights drawn uniformly from
// [1,100). seed makes the generated topology and weights reproducible.
func Synthetic(vertices int, seed uint32, maxOutDegree int) (*tourgraph.Graph, error) {
	if vertices < 2 {
		return nil, ErrTooFewVertices
	}
	if maxOutDegree < 1 {
		maxOutDegree = 1
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	labels := make([]string, vertices)
	for i := 0; i < vertices; i++ {
		labels[i] = "v" + builder.DefaultIDFn(i)
		if err := g.AddVertex(labels[i]); err != nil {
			return nil, err
		}
	}

	weights := make(map[[2]int]float64)
	addEdge := func(i, j int) error {
		if i == j {
			return nil
		}
		key := [2]int{i, j}
		if _, exists := weights[key]; exists {
			return nil
		}
		w := minWeight + rng.Float64()*(maxWeight-minWeight)
		weights[key] = w
		_, err := g.AddEdge(labels[i], labels[j], int64(math.Round(w)))
		return err
	}

	for i := 0; i < vertices; i++ {
		if err := addEdge(i, (i+1)%vertices); err != nil {
			return nil, err
		}
	}

	for i := 0; i < vertices; i++ {
		desired := 1
		if maxOutDegree > 1 {
			desired += rng.Intn(maxOutDegree)
			if desired > maxOutDegree {
				desired = maxOutDegree
			}
		}
		if desired > vertices-1 {
			desired = vertices - 1
		}
		for {
			_, out, _, err := g.Degree(labels[i])
			if err != nil {
				return nil, err
			}
			if out >= desired {
				break
			}
			candidate := rng.Intn(vertices)
			if err := addEdge(i, candidate); err != nil {
				return nil, err
			}
		}
	}

	w, err := matrix.NewDenseWithPolicy(vertices, vertices, false)
	if err != nil {
		return nil, err
	}
	for i := 0; i < vertices; i++ {
		for j := 0; j < vertices; j++ {
			v := math.Inf(1)
			if i == j {
				v = 0
			} else if weight, ok := weights[[2]int{i, j}]; ok {
				v = weight
			}
			if err := w.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return tourgraph.FromDense(labels, w)
}
