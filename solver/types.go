package solver

import "math"

// seedMixPrime and iterationMixPrime are the fixed constants used to derive
// each parallel worker's per-iteration RNG seed. Kept as named constants
// rather than inline literals because their values are load-bearing: any
// change breaks reproducibility of existing seeds.
const (
	seedMixPrime      = 9973
	iterationMixPrime = 7919
)

// AntColonyParameters configures one solver run. Ants and Iterations are
// clamped to a minimum of 1 by clampParams before a run starts; Seed is a
// 32-bit value mixed per worker per iteration in parallel mode.
type AntColonyParameters struct {
	Ants        int
	Iterations  int
	Alpha       float64
	Beta        float64
	Evaporation float64
	Q           float64
	Seed        uint32
}

// TourResult is the outcome of one RunSequential or RunParallel call.
type TourResult struct {
	BestLength      float64
	BestPaths       [][]int
	BestPathsLabels []string
	ElapsedMS       float64
}

// emptyResult returns a TourResult representing "no feasible tour found",
// the zero-ant-throughput result for thread_count == 0 and the starting
// point before any ant succeeds.
func emptyResult() TourResult {
	return TourResult{BestLength: math.Inf(1)}
}
