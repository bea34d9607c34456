// SPDX-License-Identifier: MIT
package core_test

import (
	"errors"
	"testing"

	"github.com/brindlewood/antcolony/core"
)

func TestAddVertex(t *testing.T) {
	g := core.NewGraph()

	if err := g.AddVertex(""); !errors.Is(err, core.ErrEmptyVertexID) {
		t.Fatalf("AddVertex(\"\"): expected ErrEmptyVertexID, got %v", err)
	}

	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a): unexpected error %v", err)
	}
	// Idempotent re-add.
	if err := g.AddVertex("a"); err != nil {
		t.Fatalf("AddVertex(a) again: unexpected error %v", err)
	}
}

func TestAddEdgeDirectedWeighted(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true), core.WithWeighted())

	id, err := g.AddEdge("a", "b", 7)
	if err != nil {
		t.Fatalf("AddEdge(a,b,7): unexpected error %v", err)
	}
	if id == "" {
		t.Fatal("AddEdge returned empty edge ID")
	}

	in, out, undirected, err := g.Degree("a")
	if err != nil {
		t.Fatalf("Degree(a): unexpected error %v", err)
	}
	if out != 1 || in != 0 || undirected != 0 {
		t.Fatalf("Degree(a) = in=%d out=%d undirected=%d, want in=0 out=1 undirected=0", in, out, undirected)
	}

	in, out, undirected, err = g.Degree("b")
	if err != nil {
		t.Fatalf("Degree(b): unexpected error %v", err)
	}
	if in != 1 || out != 0 || undirected != 0 {
		t.Fatalf("Degree(b) = in=%d out=%d undirected=%d, want in=1 out=0 undirected=0", in, out, undirected)
	}
}

func TestAddEdgeBadWeightOnUnweighted(t *testing.T) {
	g := core.NewGraph()

	if _, err := g.AddEdge("a", "b", 5); !errors.Is(err, core.ErrBadWeight) {
		t.Fatalf("AddEdge with nonzero weight on unweighted graph: expected ErrBadWeight, got %v", err)
	}
}

func TestDegreeUnknownVertex(t *testing.T) {
	g := core.NewGraph()

	if _, _, _, err := g.Degree("missing"); !errors.Is(err, core.ErrVertexNotFound) {
		t.Fatalf("Degree(missing): expected ErrVertexNotFound, got %v", err)
	}
}

func TestAddEdgeRejectsSelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	g.AddVertex("a")

	// Default graph disallows loops, so AddEdge must reject a self-loop.
	if _, err := g.AddEdge("a", "a", 0); !errors.Is(err, core.ErrLoopNotAllowed) {
		t.Fatalf("AddEdge(a,a): expected ErrLoopNotAllowed, got %v", err)
	}
}
