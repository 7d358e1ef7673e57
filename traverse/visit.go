package traverse

import "github.com/katalvlaran/digraph/core"

// Visit is one step of a traversal: a node plus a backward-linked chain of
// the steps that led to it, back to the traversal root. Visits are
// immutable once yielded; path prefixes are shared between visits, never
// copied. Nodes and Edges walk the chain iteratively, so pathological
// depths cannot overflow the stack.
type Visit[N comparable, E core.Edge[N]] struct {
	parent  *Visit[N, E]
	node    N
	edge    E // inbound edge; zero and meaningless at the root
	depth   int
	hasEdge bool
}

// Node returns the node this visit reached.
func (v *Visit[N, E]) Node() N { return v.node }

// Depth returns the number of edges between the root and this visit.
func (v *Visit[N, E]) Depth() int { return v.depth }

// Len returns the number of nodes on the path, root included.
func (v *Visit[N, E]) Len() int { return v.depth + 1 }

// Parent returns the preceding visit, or nil at the root.
func (v *Visit[N, E]) Parent() *Visit[N, E] { return v.parent }

// Edge returns the edge this visit arrived through. The second result is
// false at the root, which has no inbound edge.
func (v *Visit[N, E]) Edge() (E, bool) { return v.edge, v.hasEdge }

// Nodes returns the full node chain from the root to this visit.
func (v *Visit[N, E]) Nodes() []N {
	nodes := make([]N, v.depth+1)
	for cur := v; cur != nil; cur = cur.parent {
		nodes[cur.depth] = cur.node
	}

	return nodes
}

// Edges returns the edge chain from the root to this visit; empty at the
// root.
func (v *Visit[N, E]) Edges() []E {
	edges := make([]E, v.depth)
	for cur := v; cur.hasEdge; cur = cur.parent {
		edges[cur.depth-1] = cur.edge
	}

	return edges
}
