package tourgraph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brindlewood/antcolony/matrix"
	"github.com/brindlewood/antcolony/tourgraph"
)

func quadGraph(t *testing.T) *tourgraph.Graph {
	t.Helper()
	w, err := matrix.NewDenseWithPolicy(4, 4, false)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v := 1.0
			if i == j {
				v = 0
			}
			require.NoError(t, w.Set(i, j, v))
		}
	}
	g, err := tourgraph.FromDense([]string{"A", "B", "C", "D"}, w)
	require.NoError(t, err)
	return g
}

func TestCanonicalizeEquivalence(t *testing.T) {
	g := quadGraph(t)

	base := g.Canonicalize([]int{0, 1, 2, 3, 0})
	rotated := g.Canonicalize([]int{2, 3, 0, 1, 2})
	reversed := g.Canonicalize([]int{0, 3, 2, 1, 0})

	require.Equal(t, base, rotated)
	require.Equal(t, base, reversed)
}

func TestCanonicalizeIdempotent(t *testing.T) {
	g := quadGraph(t)

	once := g.Canonicalize([]int{3, 1, 0, 2, 3})
	twice := g.Canonicalize(once)

	require.Equal(t, once, twice)
}

func TestCanonicalizeTrivial(t *testing.T) {
	g := quadGraph(t)

	require.Equal(t, []int{}, g.Canonicalize([]int{}))
	require.Equal(t, []int{0}, g.Canonicalize([]int{0}))
}
