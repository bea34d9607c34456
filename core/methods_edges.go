// File: methods_edges.go
// Role: Edge creation and unique ID generation.
//
// Determinism:
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
//
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
package core

import (
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Byte form is intentional to allow append to a []byte buffer without fmt.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically.
//  5. Build Edge struct (global g.directed default), apply opts.
//  6. Store in g.edges.
//  7. ensureAdjacency(from,to); add.
//  8. If !e.Directed && from!=to ⇒ ensureAdjacency(to,from); add (mirror).
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if !g.weighted && weight != 0 {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)

	e := &Edge{ID: eid, From: from, To: to, Weight: weight, Directed: g.directed}
	for _, opt := range opts {
		opt(e)
	}
	if e.From == e.To && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	g.edges[eid] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][eid] = struct{}{}

	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][eid] = struct{}{}
	}

	return eid, nil
}

// nextEdgeID returns a new unique textual edge ID.
//
// Uses a monotonic uint64 counter (g.nextEdgeID) incremented atomically,
// producing "e" + decimal digits without fmt allocations.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
