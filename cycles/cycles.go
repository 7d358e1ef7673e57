package cycles

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// From returns every cycle the naive depth-first walk from 'start'
// discovers. Each cycle is the walk's full path at detection time with the
// repeated node appended, so a triangle 1→2→3→1 explored from 1 is
// recorded as [1 2 3 1]. Returns nil when the walk meets no cycle.
// Panics if start is not a member of g.
func From[N comparable, E core.Edge[N]](g core.Graph[N, E], start N) [][]N {
	if !g.ContainsNode(start) {
		panic(fmt.Sprintf("cycles: From: start node %v not in graph", start))
	}
	w := &walker[N, E]{
		graph:  g,
		onPath: make(map[N]struct{}),
	}
	w.visit(start)

	return w.found
}

// walker tracks the current depth-first path and the cycles recorded so far.
type walker[N comparable, E core.Edge[N]] struct {
	graph  core.Graph[N, E]
	path   []N
	onPath map[N]struct{}
	found  [][]N
}

// visit extends the path by n, records a cycle for every successor already
// on the path, and recurses into the rest. Branches that closed a cycle are
// not descended further. Recursion depth is bounded by the longest simple
// path from the start node, so graphs with pathologically long paths
// consume stack proportionally.
func (w *walker[N, E]) visit(n N) {
	w.path = append(w.path, n)
	w.onPath[n] = struct{}{}

	for _, succ := range core.NodesConnectedFrom(w.graph, n) {
		if _, repeat := w.onPath[succ]; repeat {
			cycle := append(slices.Clone(w.path), succ)
			w.found = append(w.found, cycle)
			continue
		}
		w.visit(succ)
	}

	delete(w.onPath, n)
	w.path = w.path[:len(w.path)-1]
}
