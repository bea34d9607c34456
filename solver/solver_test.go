package solver_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brindlewood/antcolony/matrix"
	"github.com/brindlewood/antcolony/solver"
	"github.com/brindlewood/antcolony/tourgraph"
)

func buildGraph(t *testing.T, labels []string, weights [][]float64) *tourgraph.Graph {
	t.Helper()
	n := len(labels)
	w, err := matrix.NewDenseWithPolicy(n, n, false)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, w.Set(i, j, weights[i][j]))
		}
	}
	g, err := tourgraph.FromDense(labels, w)
	require.NoError(t, err)
	return g
}

func TestTriangleSequentialFindsOptimum(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][]float64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})
	s := solver.New(g)
	result := s.RunSequential(context.Background(), solver.AntColonyParameters{
		Ants: 30, Iterations: 50, Alpha: 1, Beta: 5, Evaporation: 0.3, Q: 50, Seed: 2024,
	})

	require.False(t, math.IsInf(result.BestLength, 1))
	require.Equal(t, 8.0, result.BestLength)
	require.NotEmpty(t, result.BestPaths)
	require.NotEmpty(t, result.BestPathsLabels)
}

func TestTriangleAsymmetricSequentialAndParallelAgree(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][]float64{
		{0, 4, 1},
		{4, 0, 3},
		{1, 3, 0},
	})
	params := solver.AntColonyParameters{
		Ants: 40, Iterations: 80, Alpha: 1, Beta: 3, Evaporation: 0.5, Q: 100, Seed: 1337,
	}

	seq := solver.New(g).RunSequential(context.Background(), params)
	par := solver.New(g).RunParallel(context.Background(), params, 4)

	require.InDelta(t, seq.BestLength, par.BestLength, 1e-3)
	require.Equal(t, 8.0, seq.BestLength)
	require.Equal(t, 8.0, par.BestLength)
}

func TestUnreachableYieldsInfiniteBestLength(t *testing.T) {
	inf := math.Inf(1)
	g := buildGraph(t, []string{"A", "B", "C"}, [][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	})
	s := solver.New(g)
	result := s.RunSequential(context.Background(), solver.AntColonyParameters{
		Ants: 20, Iterations: 20, Alpha: 1, Beta: 3, Evaporation: 0.5, Q: 100, Seed: 1,
	})

	require.True(t, math.IsInf(result.BestLength, 1))
	require.Empty(t, result.BestPaths)
}

func TestSequentialDeterministic(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][]float64{
		{0, 1, 5},
		{1, 0, 2},
		{5, 2, 0},
	})
	params := solver.AntColonyParameters{
		Ants: 30, Iterations: 50, Alpha: 1, Beta: 5, Evaporation: 0.3, Q: 50, Seed: 2024,
	}

	first := solver.New(g).RunSequential(context.Background(), params)
	second := solver.New(g).RunSequential(context.Background(), params)

	require.Equal(t, first.BestPathsLabels, second.BestPathsLabels)
	require.Equal(t, first.BestLength, second.BestLength)
}

func TestParallelZeroThreadsReturnsEmptyResult(t *testing.T) {
	g := buildGraph(t, []string{"A", "B"}, [][]float64{{0, 1}, {1, 0}})
	result := solver.New(g).RunParallel(context.Background(), solver.AntColonyParameters{Ants: 5, Iterations: 5, Seed: 1}, 0)

	require.True(t, math.IsInf(result.BestLength, 1))
	require.Empty(t, result.BestPaths)
}

func TestParallelDeterministicGivenSameThreadCount(t *testing.T) {
	g := buildGraph(t, []string{"A", "B", "C"}, [][]float64{
		{0, 4, 1},
		{4, 0, 3},
		{1, 3, 0},
	})
	params := solver.AntColonyParameters{
		Ants: 40, Iterations: 80, Alpha: 1, Beta: 3, Evaporation: 0.5, Q: 100, Seed: 1337,
	}

	first := solver.New(g).RunParallel(context.Background(), params, 4)
	second := solver.New(g).RunParallel(context.Background(), params, 4)

	require.Equal(t, first.BestPathsLabels, second.BestPathsLabels)
	require.Equal(t, first.BestLength, second.BestLength)
}
