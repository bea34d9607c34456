package pheromone

import (
	"fmt"
	"math"

	"github.com/brindlewood/antcolony/matrix"
)

// initialValue is τ[i][j] at construction, including the (unread) diagonal.
const initialValue = 1.0

// Floor is the lower clamp applied after every update: τ[i][j] never drops
// below it, keeping every edge selectable with nonzero probability.
const Floor = 1e-12

// Field is an n×n matrix of pheromone levels, initialized to 1.0
// everywhere. It is read-only for the duration of one solver iteration and
// written only by Update, once per iteration, by the orchestrating
// goroutine.
type Field struct {
	n   int
	tau *matrix.Dense
}

// New allocates a Field for n vertices, seeded to initialValue everywhere.
func New(n int) (*Field, error) {
	tau, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if err := tau.Set(i, j, initialValue); err != nil {
				return nil, err
			}
		}
	}
	return &Field{n: n, tau: tau}, nil
}

// At returns τ[i][j]. Panics on out-of-range indices: callers within this
// module only ever pass indices in [0,n).
func (f *Field) At(i, j int) float64 {
	v, err := f.tau.At(i, j)
	if err != nil {
		panic(fmt.Errorf("pheromone: At(%d,%d): %w", i, j, err))
	}
	return v
}

// NewDelta allocates a fresh n×n zero delta matrix for one iteration's
// deposits, disjoint from the pheromone field itself so every ant in the
// iteration observes an identical τ snapshot.
func (f *Field) NewDelta() (*Delta, error) {
	d, err := matrix.NewDense(f.n, f.n)
	if err != nil {
		return nil, err
	}
	return &Delta{n: f.n, d: d}, nil
}

// Update applies τ[i][j] ← (1−evaporation)·τ[i][j] + delta[i][j], then
// clamps every entry to Floor. Called once per iteration after every
// ant (sequential mode) or every worker's merged delta (parallel mode)
// has been folded in.
func (f *Field) Update(evaporation float64, delta *Delta) error {
	for i := 0; i < f.n; i++ {
		for j := 0; j < f.n; j++ {
			cur, err := f.tau.At(i, j)
			if err != nil {
				return err
			}
			add, err := delta.d.At(i, j)
			if err != nil {
				return err
			}
			next := (1-evaporation)*cur + add
			if next < Floor {
				next = Floor
			}
			if err := f.tau.Set(i, j, next); err != nil {
				return err
			}
		}
	}
	return nil
}

// Delta is a per-iteration accumulator for pheromone deposits, disjoint
// from the Field it will eventually be merged into.
type Delta struct {
	n int
	d *matrix.Dense
}

// Deposit adds q/length to delta[u][v] for one successful ant path,
// following the path's consecutive directed edges.
func (d *Delta) Deposit(path []int, q, length float64) error {
	if len(path) < 2 || !(length > 0) || math.IsInf(length, 1) {
		return nil
	}
	amount := q / length
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]
		cur, err := d.d.At(u, v)
		if err != nil {
			return err
		}
		if err := d.d.Set(u, v, cur+amount); err != nil {
			return err
		}
	}
	return nil
}

// MergeInto adds every entry of other into d, element-wise. Used by the
// parallel solver to combine per-worker local deltas into the single
// delta passed to Update.
func (d *Delta) MergeInto(other *Delta) error {
	for i := 0; i < d.n; i++ {
		for j := 0; j < d.n; j++ {
			a, err := d.d.At(i, j)
			if err != nil {
				return err
			}
			b, err := other.d.At(i, j)
			if err != nil {
				return err
			}
			if err := d.d.Set(i, j, a+b); err != nil {
				return err
			}
		}
	}
	return nil
}
