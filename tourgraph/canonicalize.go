package tourgraph

import "strings"

// keySeparator joins labels when building a canonicalization key. Vertex
// labels are never allowed to contain it in practice (Graphviz tokens and
// generated IDs are alphanumeric), which is what makes it safe as a
// separator rather than an escaped delimiter.
const keySeparator = '>'

// Canonicalize takes a closed cycle t of length n+1 (t[0] == t[n]) and
// returns the lexicographically smallest rotation/reflection of t, keyed
// by vertex labels, with the closing vertex re-appended.
//
// Cycles that differ only by starting vertex or traversal direction
// describe the same undirected cycle and must collapse to the same
// canonical form so BestTracker can deduplicate them.
//
// len(t) <= 1 is returned unchanged.
func (g *Graph) Canonicalize(t []int) []int {
	if len(t) <= 1 {
		out := make([]int, len(t))
		copy(out, t)
		return out
	}

	cycle := t
	if cycle[0] == cycle[len(cycle)-1] {
		cycle = cycle[:len(cycle)-1]
	}
	n := len(cycle)

	buildKey := func(shift int, reverse bool) string {
		var sb strings.Builder
		if !reverse {
			for i := 0; i < n; i++ {
				if i != 0 {
					sb.WriteByte(keySeparator)
				}
				sb.WriteString(g.Label(cycle[(shift+i)%n]))
			}
			return sb.String()
		}
		idx := shift % n
		for i := 0; i < n; i++ {
			if i != 0 {
				sb.WriteByte(keySeparator)
			}
			sb.WriteString(g.Label(cycle[idx]))
			if idx == 0 {
				idx = n - 1
			} else {
				idx--
			}
		}
		return sb.String()
	}

	bestShift := 0
	bestReverse := false
	bestKey := buildKey(0, false)
	for shift := 0; shift < n; shift++ {
		if forward := buildKey(shift, false); forward < bestKey {
			bestKey, bestShift, bestReverse = forward, shift, false
		}
		if reverse := buildKey(shift, true); reverse < bestKey {
			bestKey, bestShift, bestReverse = reverse, shift, true
		}
	}

	result := make([]int, 0, n+1)
	if !bestReverse {
		for i := 0; i < n; i++ {
			result = append(result, cycle[(bestShift+i)%n])
		}
	} else {
		idx := bestShift % n
		for i := 0; i < n; i++ {
			result = append(result, cycle[idx])
			if idx == 0 {
				idx = n - 1
			} else {
				idx--
			}
		}
	}
	result = append(result, result[0])

	return result
}

// CanonicalLabelKey joins the labels of an already-canonical cycle with
// keySeparator, producing the BestTracker deduplication key.
func (g *Graph) CanonicalLabelKey(canonical []int) string {
	var sb strings.Builder
	for i, idx := range canonical {
		if i != 0 {
			sb.WriteByte(keySeparator)
		}
		sb.WriteString(g.Label(idx))
	}
	return sb.String()
}
