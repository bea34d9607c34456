package besttrack

import (
	"math"
	"sync"

	"github.com/brindlewood/antcolony/antwalk"
)

// Epsilon is the tolerance used to treat two floating-point tour lengths
// as equal. Pheromone-driven lengths for the same integer-weighted cycle
// may differ only by rounding, so exact equality would under-deduplicate.
const Epsilon = 1e-9

// Canonicalizer is the subset of *tourgraph.Graph a Tracker needs to
// dedupe candidate paths by cycle identity rather than by slice identity.
type Canonicalizer interface {
	Canonicalize(path []int) []int
	CanonicalLabelKey(canonical []int) string
}

// Tracker holds the current best tour length and every canonically
// distinct tour tied at that length. Update and UpdateBatch are safe for
// concurrent use: Tracker guards its state with its own mutex. The
// parallel solver calls UpdateBatch once per worker batch from the
// orchestrating goroutine, after the iteration's workers have joined.
type Tracker struct {
	mu     sync.Mutex
	graph  Canonicalizer
	length float64
	paths  [][]int
	labels []string
}

// New creates an empty Tracker bound to graph's canonicalization.
func New(graph Canonicalizer) *Tracker {
	return &Tracker{graph: graph, length: math.Inf(1)}
}

// Update folds one candidate AntPath into the tracked best set following
// the dedup/replace rule: strictly shorter replaces the set; within
// Epsilon of the current best adds to the set if its canonical key is
// not already present; anything else is discarded. Empty or non-finite
// candidates are skipped.
func (t *Tracker) Update(candidate antwalk.AntPath) {
	if candidate.Failed() {
		return
	}

	canonical := t.graph.Canonicalize(candidate.Path)
	key := t.graph.CanonicalLabelKey(canonical)

	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case len(t.paths) == 0 || candidate.Length+Epsilon < t.length:
		t.length = candidate.Length
		t.paths = [][]int{canonical}
		t.labels = []string{key}
	case math.Abs(candidate.Length-t.length) <= Epsilon:
		for _, existing := range t.labels {
			if existing == key {
				return
			}
		}
		t.paths = append(t.paths, canonical)
		t.labels = append(t.labels, key)
	}
}

// UpdateBatch folds a worker's locally-best candidates into the tracked
// best set under a single lock acquisition, matching the parallel
// solver's merge-phase contract (one lock per worker batch rather than
// one lock per candidate).
func (t *Tracker) UpdateBatch(candidates []antwalk.AntPath) {
	if len(candidates) == 0 {
		return
	}

	type scored struct {
		canonical []int
		key       string
		length    float64
	}
	batch := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		if c.Failed() {
			continue
		}
		canonical := t.graph.Canonicalize(c.Path)
		batch = append(batch, scored{canonical: canonical, key: t.graph.CanonicalLabelKey(canonical), length: c.Length})
	}
	if len(batch) == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	for _, s := range batch {
		switch {
		case len(t.paths) == 0 || s.length+Epsilon < t.length:
			t.length = s.length
			t.paths = [][]int{s.canonical}
			t.labels = []string{s.key}
		case math.Abs(s.length-t.length) <= Epsilon:
			dup := false
			for _, existing := range t.labels {
				if existing == s.key {
					dup = true
					break
				}
			}
			if !dup {
				t.paths = append(t.paths, s.canonical)
				t.labels = append(t.labels, s.key)
			}
		}
	}
}

// BestLength returns the current best tour length, or +Inf if no feasible
// tour has been recorded yet.
func (t *Tracker) BestLength() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.length
}

// BestPaths returns a copy of the canonically-distinct tours tied at
// BestLength.
func (t *Tracker) BestPaths() [][]int {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([][]int, len(t.paths))
	copy(out, t.paths)
	return out
}

// BestPathsLabels returns a copy of the label-joined dedup keys, one per
// BestPaths entry, in the same order.
func (t *Tracker) BestPathsLabels() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.labels))
	copy(out, t.labels)
	return out
}
