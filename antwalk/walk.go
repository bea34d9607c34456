package antwalk

import (
	"math"
	"math/rand"

	"github.com/brindlewood/antcolony/pheromone"
	"github.com/brindlewood/antcolony/tourgraph"
)

// Graph is the subset of *tourgraph.Graph a Walker needs: vertex count and
// per-edge weight lookup. Declared as an interface so tests can supply a
// minimal stand-in without building a full tourgraph.Graph.
type Graph interface {
	VertexCount() int
	Weight(i, j int) float64
}

var _ Graph = (*tourgraph.Graph)(nil)

// Params holds the exponents that weigh pheromone against heuristic
// distance during candidate scoring.
type Params struct {
	Alpha float64
	Beta  float64
}

// Walk constructs one AntPath over g using the pheromone snapshot tau, the
// exponents in params, and rng as the sole source of randomness. rng must
// not be shared concurrently with another call to Walk.
func Walk(g Graph, tau *pheromone.Field, params Params, rng *rand.Rand) AntPath {
	n := g.VertexCount()
	if n == 0 {
		return failedPath()
	}

	visited := make([]bool, n)
	current := rng.Intn(n)
	visited[current] = true
	path := make([]int, 1, n+1)
	path[0] = current

	for step := 1; step < n; step++ {
		candidates, values, sum := scoreCandidates(g, tau, params, current, visited)
		if len(candidates) == 0 {
			return failedPath()
		}
		next := selectCandidate(candidates, values, sum, rng)
		visited[next] = true
		path = append(path, next)
		current = next
	}
	path = append(path, path[0])

	length := pathLength(g, path)
	if math.IsInf(length, 0) {
		return failedPath()
	}
	return AntPath{Path: path, Length: length}
}

// heuristic returns 1/w when w is finite and positive, else 0.
func heuristic(w float64) float64 {
	if w <= 0 || math.IsInf(w, 0) {
		return 0
	}
	return 1 / w
}

// scoreCandidates enumerates every unvisited vertex reachable from u with a
// strictly positive value = tau[u][v]^alpha * eta(w)^beta, in ascending
// vertex-index order (the fixed enumeration order the strict '>' tie-break
// in selectCandidate relies on).
func scoreCandidates(g Graph, tau *pheromone.Field, params Params, u int, visited []bool) ([]int, []float64, float64) {
	n := g.VertexCount()
	candidates := make([]int, 0, n)
	values := make([]float64, 0, n)
	sum := 0.0
	for v := 0; v < n; v++ {
		if visited[v] {
			continue
		}
		w := g.Weight(u, v)
		eta := heuristic(w)
		value := math.Pow(tau.At(u, v), params.Alpha) * math.Pow(eta, params.Beta)
		if value <= 0 {
			continue
		}
		candidates = append(candidates, v)
		values = append(values, value)
		sum += value
	}
	return candidates, values, sum
}

// selectCandidate samples x uniformly in [0, sum) and returns the candidate
// whose cumulative prefix first meets or exceeds x. At exact boundaries the
// earlier candidate wins: the scan advances only while x is strictly
// greater than the running cumulative sum.
func selectCandidate(candidates []int, values []float64, sum float64, rng *rand.Rand) int {
	x := rng.Float64() * sum
	cumulative := values[0]
	index := 0
	for x > cumulative && index+1 < len(values) {
		index++
		cumulative += values[index]
	}
	return candidates[index]
}

// pathLength sums consecutive edge weights along path, returning +Inf if
// any edge is non-finite.
func pathLength(g Graph, path []int) float64 {
	total := 0.0
	for i := 0; i+1 < len(path); i++ {
		w := g.Weight(path[i], path[i+1])
		if math.IsInf(w, 0) {
			return math.Inf(1)
		}
		total += w
	}
	return total
}
