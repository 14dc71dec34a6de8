package fsa

import "testing"

func TestGraphNodeDeduplication(t *testing.T) {
	g := newGraph([]Transition{
		{"q0", "a", "q1"},
		{"q0", "b", "q1"},
		{"q1", "a", "q0"},
	})
	if len(g.labels) != 2 {
		t.Errorf("Expected 2 nodes, got %d", len(g.labels))
	}
	// Parallel transitions collapse to a single edge.
	if n := len(g.adj[g.index["q0"]]); n != 1 {
		t.Errorf("Expected 1 edge from q0, got %d", n)
	}
}

func TestGraphReachabilityWithCycle(t *testing.T) {
	g := newGraph([]Transition{
		{"q0", "a", "q1"},
		{"q1", "a", "q2"},
		{"q2", "a", "q0"},
	})
	reached := g.reachableFrom("q0")
	if len(reached) != 3 {
		t.Errorf("Expected 3 reached states, got %d", len(reached))
	}
}

func TestGraphDirectedness(t *testing.T) {
	// q1 reaches q0 but not the other way round.
	g := newGraph([]Transition{
		{"q1", "a", "q0"},
	})
	if reached := g.reachableFrom("q0"); len(reached) != 1 {
		t.Errorf("Expected q0 to reach only itself, got %d states", len(reached))
	}
	if reached := g.reachableFrom("q1"); len(reached) != 2 {
		t.Errorf("Expected q1 to reach both states, got %d", len(reached))
	}
}

func TestGraphMissingStart(t *testing.T) {
	// A start label absent from every transition reaches exactly itself.
	g := newGraph(nil)
	reached := g.reachableFrom("q0")
	if len(reached) != 1 || !reached["q0"] {
		t.Errorf("Expected lone start state to reach itself, got %v", reached)
	}
}

func TestGraphSelfLoop(t *testing.T) {
	g := newGraph([]Transition{
		{"q0", "a", "q0"},
	})
	reached := g.reachableFrom("q0")
	if len(reached) != 1 {
		t.Errorf("Expected 1 reached state, got %d", len(reached))
	}
}
