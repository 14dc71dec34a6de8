package fsa

// graph is the reachability view of a transition set: one node per distinct
// state label, one directed edge per distinct (source, dest) pair. Symbols
// are irrelevant to connectivity and are discarded. A graph is built fresh
// per check and never reused.
type graph struct {
	index  map[string]int
	labels []string
	adj    [][]int
}

// newGraph builds the reachability graph for a set of transitions.
// Only states that appear in at least one transition become nodes.
func newGraph(transitions []Transition) *graph {
	g := &graph{index: make(map[string]int)}
	for _, t := range transitions {
		s := g.node(t.From)
		d := g.node(t.To)
		g.addEdge(s, d)
	}
	return g
}

// node returns the index for a label, creating the node on first sight.
// Labels are deduplicated: a label seen before reuses its node.
func (g *graph) node(label string) int {
	if i, ok := g.index[label]; ok {
		return i
	}
	i := len(g.labels)
	g.index[label] = i
	g.labels = append(g.labels, label)
	g.adj = append(g.adj, nil)
	return i
}

func (g *graph) addEdge(s, d int) {
	for _, n := range g.adj[s] {
		if n == d {
			return
		}
	}
	g.adj[s] = append(g.adj[s], d)
}

// reachableFrom returns the labels reachable from start, start included.
// The traversal is an iterative depth-first search with a visited set, so
// cycles terminate and recursion depth is not a function of the input.
// A start label absent from the graph has no transitions at all; it reaches
// exactly itself.
func (g *graph) reachableFrom(start string) map[string]bool {
	reached := map[string]bool{start: true}
	root, ok := g.index[start]
	if !ok {
		return reached
	}

	visited := make([]bool, len(g.labels))
	visited[root] = true
	stack := []int{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reached[g.labels[n]] = true
		for _, m := range g.adj[n] {
			if !visited[m] {
				visited[m] = true
				stack = append(stack, m)
			}
		}
	}
	return reached
}
