package solver

import (
	"context"
	"math/rand"
	"time"

	"github.com/brindlewood/antcolony/antwalk"
	"github.com/brindlewood/antcolony/besttrack"
	"github.com/brindlewood/antcolony/pheromone"
)

// Graph is the subset of *tourgraph.Graph the solver and its Walker need:
// vertex count, edge weights, and cycle canonicalization.
type Graph interface {
	antwalk.Graph
	besttrack.Canonicalizer
}

// Solver runs ant colony simulations against one immutable Graph.
type Solver struct {
	graph Graph
}

// New binds a Solver to graph. The graph is never mutated afterward.
func New(graph Graph) *Solver {
	return &Solver{graph: graph}
}

// clampParams applies the documented clamp policy: zero Ants or
// Iterations are boundary-level parameter errors, clamped to 1 rather
// than surfaced as an error.
func clampParams(params AntColonyParameters) AntColonyParameters {
	if params.Ants < 1 {
		params.Ants = 1
	}
	if params.Iterations < 1 {
		params.Iterations = 1
	}
	return params
}

// RunSequential runs the full iteration loop on a single goroutine.
//
// ctx is checked once per iteration boundary; a cancelled ctx stops the
// loop before the next iteration starts and returns whatever best tour
// has been tracked so far. No ant's walk is interrupted mid-iteration.
func (s *Solver) RunSequential(ctx context.Context, params AntColonyParameters) TourResult {
	params = clampParams(params)
	start := time.Now()

	n := s.graph.VertexCount()
	tau, err := pheromone.New(n)
	if err != nil {
		return emptyResult()
	}
	tracker := besttrack.New(s.graph)
	rng := rand.New(rand.NewSource(int64(params.Seed)))
	walkParams := antwalk.Params{Alpha: params.Alpha, Beta: params.Beta}

	for iter := 0; iter < params.Iterations; iter++ {
		if ctx.Err() != nil {
			break
		}
		delta, err := tau.NewDelta()
		if err != nil {
			return emptyResult()
		}
		for ant := 0; ant < params.Ants; ant++ {
			path := antwalk.Walk(s.graph, tau, walkParams, rng)
			if path.Failed() {
				continue
			}
			_ = delta.Deposit(path.Path, params.Q, path.Length)
			tracker.Update(path)
		}
		if err := tau.Update(params.Evaporation, delta); err != nil {
			return emptyResult()
		}
	}

	return s.assembleResult(tracker, start)
}

// RunParallel fans each iteration's ants out across threadCount worker
// goroutines, merges their private pheromone deltas, and updates the
// shared pheromone field once per iteration. threadCount == 0 returns an
// empty result immediately.
//
// ctx is checked once per iteration boundary, same as RunSequential;
// workers within an iteration are never interrupted mid-run.
func (s *Solver) RunParallel(ctx context.Context, params AntColonyParameters, threadCount int) TourResult {
	if threadCount == 0 {
		return emptyResult()
	}
	params = clampParams(params)
	start := time.Now()

	n := s.graph.VertexCount()
	tau, err := pheromone.New(n)
	if err != nil {
		return emptyResult()
	}
	tracker := besttrack.New(s.graph)
	walkParams := antwalk.Params{Alpha: params.Alpha, Beta: params.Beta}

	base := params.Ants / threadCount
	remainder := params.Ants % threadCount

	for iter := 0; iter < params.Iterations; iter++ {
		if ctx.Err() != nil {
			break
		}
		merged, err := tau.NewDelta()
		if err != nil {
			return emptyResult()
		}

		localDeltas := make([]*pheromone.Delta, threadCount)
		localBests := make([][]antwalk.AntPath, threadCount)

		done := make(chan int, threadCount)
		for t := 0; t < threadCount; t++ {
			assigned := base
			if t < remainder {
				assigned++
			}
			go func(t, assigned, iter int) {
				localDeltas[t], localBests[t] = s.runWorker(tau, walkParams, params, t, iter, assigned)
				done <- t
			}(t, assigned, iter)
		}
		for i := 0; i < threadCount; i++ {
			<-done
		}

		for t := 0; t < threadCount; t++ {
			tracker.UpdateBatch(localBests[t])
			if localDeltas[t] != nil {
				_ = merged.MergeInto(localDeltas[t])
			}
		}

		if err := tau.Update(params.Evaporation, merged); err != nil {
			return emptyResult()
		}
	}

	return s.assembleResult(tracker, start)
}

// runWorker constructs assigned ant paths against the iteration-start
// pheromone snapshot tau, depositing into a private delta and tracking a
// local best set without touching any shared state. Returns nil, nil if
// assigned == 0.
func (s *Solver) runWorker(tau *pheromone.Field, walkParams antwalk.Params, params AntColonyParameters, t, iter, assigned int) (*pheromone.Delta, []antwalk.AntPath) {
	if assigned == 0 {
		return nil, nil
	}

	delta, err := tau.NewDelta()
	if err != nil {
		return nil, nil
	}
	seed := params.Seed + uint32(t)*seedMixPrime + uint32(iter)*iterationMixPrime
	rng := rand.New(rand.NewSource(int64(seed)))

	var localBest []antwalk.AntPath
	bestLength := pheromoneBestInit()

	for ant := 0; ant < assigned; ant++ {
		path := antwalk.Walk(s.graph, tau, walkParams, rng)
		if path.Failed() {
			continue
		}
		_ = delta.Deposit(path.Path, params.Q, path.Length)

		switch {
		case path.Length+besttrack.Epsilon < bestLength:
			bestLength = path.Length
			localBest = []antwalk.AntPath{path}
		case abs(path.Length-bestLength) <= besttrack.Epsilon:
			localBest = append(localBest, path)
		}
	}

	return delta, localBest
}

func (s *Solver) assembleResult(tracker *besttrack.Tracker, start time.Time) TourResult {
	return TourResult{
		BestLength:      tracker.BestLength(),
		BestPaths:       tracker.BestPaths(),
		BestPathsLabels: tracker.BestPathsLabels(),
		ElapsedMS:       float64(time.Since(start).Microseconds()) / 1000.0,
	}
}
