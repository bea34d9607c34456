package solver

import "math"

// pheromoneBestInit returns the starting "no candidate yet" length used by
// a parallel worker's local-best tracking, matching the global tracker's
// convention of +Inf meaning "empty".
func pheromoneBestInit() float64 {
	return math.Inf(1)
}

func abs(x float64) float64 {
	return math.Abs(x)
}
