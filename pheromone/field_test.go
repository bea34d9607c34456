package pheromone_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brindlewood/antcolony/pheromone"
)

func TestNewFieldInitialValue(t *testing.T) {
	f, err := pheromone.New(3)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, 1.0, f.At(i, j))
		}
	}
}

func TestUpdateClampsToFloor(t *testing.T) {
	f, err := pheromone.New(2)
	require.NoError(t, err)
	delta, err := f.NewDelta()
	require.NoError(t, err)

	// evaporation=1 with no deposit drives every cell to zero, then the
	// floor clamp must bring it back up to pheromone.Floor.
	require.NoError(t, f.Update(1.0, delta))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			require.Equal(t, pheromone.Floor, f.At(i, j))
		}
	}
}

func TestDepositProportionality(t *testing.T) {
	// Two-vertex graph {A<->B, w=1}, one deposit per iteration along the
	// single edge A->B with path length 1, verifying τ[0][1] after k
	// iterations equals
	// (1-evap)^k * tau0 + q * sum_{i=0}^{k-1} (1-evap)^i.
	const evap = 0.3
	const q = 50.0
	const k = 5
	const length = 1.0

	f, err := pheromone.New(2)
	require.NoError(t, err)

	for iter := 0; iter < k; iter++ {
		delta, err := f.NewDelta()
		require.NoError(t, err)
		require.NoError(t, delta.Deposit([]int{0, 1}, q, length))
		require.NoError(t, f.Update(evap, delta))
	}

	expected := math.Pow(1-evap, k) * 1.0
	sum := 0.0
	for i := 0; i < k; i++ {
		sum += math.Pow(1-evap, float64(i))
	}
	expected += q * sum

	require.InDelta(t, expected, f.At(0, 1), 1e-9)
}

func TestMergeIntoSumsDeltas(t *testing.T) {
	f, err := pheromone.New(2)
	require.NoError(t, err)

	a, err := f.NewDelta()
	require.NoError(t, err)
	b, err := f.NewDelta()
	require.NoError(t, err)
	require.NoError(t, a.Deposit([]int{0, 1}, 10, 1))
	require.NoError(t, b.Deposit([]int{0, 1}, 20, 1))

	require.NoError(t, a.MergeInto(b))
	require.NoError(t, f.Update(0, a))
	require.Equal(t, 1.0+30.0, f.At(0, 1))
}
