package build

import "github.com/katalvlaran/digraph/core"

// Path adds the given nodes and chains each to its successor:
// nodes[0]→nodes[1]→…→nodes[len-1]. A single node yields no edges.
func Path[N comparable](g core.Mutable[N, core.Simple[N]], nodes ...N) {
	core.AddNodes(g, nodes...)
	for i := 0; i+1 < len(nodes); i++ {
		g.AddEdge(core.Simple[N]{From: nodes[i], To: nodes[i+1]})
	}
}

// Cycle adds the given nodes as a Path and closes it with an edge from the
// last node back to the first. Two nodes yield a 2-cycle; a single node
// yields a self-loop.
func Cycle[N comparable](g core.Mutable[N, core.Simple[N]], nodes ...N) {
	if len(nodes) == 0 {
		return
	}
	Path(g, nodes...)
	g.AddEdge(core.Simple[N]{From: nodes[len(nodes)-1], To: nodes[0]})
}

// Star adds the center and its leaves, with an edge from the center to
// every leaf.
func Star[N comparable](g core.Mutable[N, core.Simple[N]], center N, leaves ...N) {
	g.AddNode(center)
	core.AddNodes(g, leaves...)
	for _, leaf := range leaves {
		g.AddEdge(core.Simple[N]{From: center, To: leaf})
	}
}

// Complete adds the given nodes and an edge for every ordered pair of
// distinct nodes.
func Complete[N comparable](g core.Mutable[N, core.Simple[N]], nodes ...N) {
	core.AddNodes(g, nodes...)
	for _, from := range nodes {
		for _, to := range nodes {
			if from == to {
				continue
			}
			g.AddEdge(core.Simple[N]{From: from, To: to})
		}
	}
}
