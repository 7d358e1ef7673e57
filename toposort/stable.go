package toposort

import (
	"github.com/tidwall/btree"

	"github.com/katalvlaran/digraph/core"
)

// frontierItem pairs a zero-indegree node with its insertion sequence
// number; the sequence breaks ties between nodes the caller ordering
// considers equal, keeping insertion stable.
type frontierItem[N comparable] struct {
	node N
	seq  int
}

// SortStableFunc returns the topological order of g with ties broken
// deterministically by less: whenever several nodes are simultaneously
// free of unprocessed predecessors, the least under the caller ordering is
// emitted first. On a graph with no edges the result is exactly the nodes
// sorted by less. Returns ErrCycleDetected when edges remain after the
// frontier is exhausted.
//
// The frontier is a B-tree keyed by (less, insertion sequence), so each
// newly freed node is placed at its stable insertion point in O(log V)
// rather than re-sorting the frontier.
func SortStableFunc[N comparable, E core.Edge[N]](g core.Graph[N, E], less func(a, b N) bool) ([]N, error) {
	nodes := g.Nodes()
	edges := g.Edges()

	// Working edge multiset scoped per node, plus indegree counts.
	indegree := make(map[N]int, len(nodes))
	successors := make(map[N][]N, len(nodes))
	for _, e := range edges {
		indegree[e.End()]++
		successors[e.Start()] = append(successors[e.Start()], e.End())
	}

	frontier := btree.NewBTreeG[frontierItem[N]](func(a, b frontierItem[N]) bool {
		if less(a.node, b.node) {
			return true
		}
		if less(b.node, a.node) {
			return false
		}
		return a.seq < b.seq
	})

	seq := 0
	for _, n := range nodes {
		if indegree[n] == 0 {
			frontier.Set(frontierItem[N]{node: n, seq: seq})
			seq++
		}
	}

	order := make([]N, 0, len(nodes))
	remaining := len(edges)
	for {
		item, ok := frontier.PopMin()
		if !ok {
			break
		}
		order = append(order, item.node)
		// Erase the node's outgoing edges; successors reaching indegree
		// zero enter the frontier at their stable position.
		for _, succ := range successors[item.node] {
			remaining--
			indegree[succ]--
			if indegree[succ] == 0 {
				frontier.Set(frontierItem[N]{node: succ, seq: seq})
				seq++
			}
		}
		delete(successors, item.node)
	}

	if remaining > 0 {
		return nil, ErrCycleDetected
	}

	return order, nil
}
