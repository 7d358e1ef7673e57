// Package core: MapGraph, the insertion-ordered reference implementation of
// the Mutable contract.
//
// Storage is a pair of ordered sets (slice + position map) for nodes and
// edges. Membership checks are O(1); adjacency queries scan the edge list,
// which keeps the implementation minimal and makes it the honest baseline
// that cached.Graph accelerates. Enumeration follows insertion order, so
// traversal among siblings is deterministic.
package core

import (
	"fmt"
	"slices"
)

// MapGraph is a mutable in-memory graph with insertion-ordered enumeration
// and linear adjacency scans. The zero value is not usable; construct with
// NewMapGraph or NewSimpleGraph.
type MapGraph[N comparable, E Edge[N]] struct {
	nodePos  map[N]int // node → index in nodeList
	nodeList []N
	edgePos  map[E]int // edge → index in edgeList
	edgeList []E
}

// NewMapGraph creates an empty MapGraph for the given node and edge types.
// Complexity: O(1).
func NewMapGraph[N comparable, E Edge[N]]() *MapGraph[N, E] {
	return &MapGraph[N, E]{
		nodePos: make(map[N]int),
		edgePos: make(map[E]int),
	}
}

// NewSimpleGraph creates an empty MapGraph over Simple edges, the common
// case of at most one edge per ordered node pair.
func NewSimpleGraph[N comparable]() *MapGraph[N, Simple[N]] {
	return NewMapGraph[N, Simple[N]]()
}

// Nodes returns every node in insertion order. O(V).
func (g *MapGraph[N, E]) Nodes() []N { return slices.Clone(g.nodeList) }

// Edges returns every edge in insertion order. O(E).
func (g *MapGraph[N, E]) Edges() []E { return slices.Clone(g.edgeList) }

// NodeCount returns the number of nodes. O(1).
func (g *MapGraph[N, E]) NodeCount() int { return len(g.nodeList) }

// EdgeCount returns the number of edges. O(1).
func (g *MapGraph[N, E]) EdgeCount() int { return len(g.edgeList) }

// ContainsNode reports membership of n. O(1).
func (g *MapGraph[N, E]) ContainsNode(n N) bool {
	_, ok := g.nodePos[n]
	return ok
}

// ContainsEdge reports membership of e. O(1).
func (g *MapGraph[N, E]) ContainsEdge(e E) bool {
	_, ok := g.edgePos[e]
	return ok
}

// EdgesFrom returns the edges leaving n in insertion order. O(E).
func (g *MapGraph[N, E]) EdgesFrom(n N) []E {
	return g.scan(func(e E) bool { return e.Start() == n })
}

// EdgesTowards returns the edges entering n in insertion order. O(E).
func (g *MapGraph[N, E]) EdgesTowards(n N) []E {
	return g.scan(func(e E) bool { return e.End() == n })
}

// EdgesBetween returns the edges leading from 'from' to 'to'. O(E).
func (g *MapGraph[N, E]) EdgesBetween(from, to N) []E {
	return g.scan(func(e E) bool { return e.Start() == from && e.End() == to })
}

// AddNode inserts n; inserting a present node is a no-op. O(1) amortized.
func (g *MapGraph[N, E]) AddNode(n N) {
	if _, ok := g.nodePos[n]; ok {
		return
	}
	g.nodePos[n] = len(g.nodeList)
	g.nodeList = append(g.nodeList, n)
}

// RemoveNode deletes n and every incident edge.
// Panics if n is not a member. O(V + E).
func (g *MapGraph[N, E]) RemoveNode(n N) {
	pos, ok := g.nodePos[n]
	if !ok {
		panic(fmt.Sprintf("core: RemoveNode: node %v not in graph", n))
	}
	// Incident edges go first so the endpoint invariant never breaks.
	for _, e := range g.scan(func(e E) bool { return e.Start() == n || e.End() == n }) {
		g.RemoveEdge(e)
	}
	delete(g.nodePos, n)
	g.nodeList = slices.Delete(g.nodeList, pos, pos+1)
	for i := pos; i < len(g.nodeList); i++ {
		g.nodePos[g.nodeList[i]] = i
	}
}

// AddEdge inserts e and returns the stored instance; inserting a present
// edge returns the existing instance unchanged. Panics unless both
// endpoints are members. O(1) amortized.
func (g *MapGraph[N, E]) AddEdge(e E) E {
	if _, ok := g.edgePos[e]; ok {
		return e
	}
	if !g.ContainsNode(e.Start()) {
		panic(fmt.Sprintf("core: AddEdge: start node %v not in graph", e.Start()))
	}
	if !g.ContainsNode(e.End()) {
		panic(fmt.Sprintf("core: AddEdge: end node %v not in graph", e.End()))
	}
	g.edgePos[e] = len(g.edgeList)
	g.edgeList = append(g.edgeList, e)

	return e
}

// RemoveEdge deletes e. Panics if e is not a member. O(E).
func (g *MapGraph[N, E]) RemoveEdge(e E) {
	pos, ok := g.edgePos[e]
	if !ok {
		panic(fmt.Sprintf("core: RemoveEdge: edge %v not in graph", e))
	}
	delete(g.edgePos, e)
	g.edgeList = slices.Delete(g.edgeList, pos, pos+1)
	for i := pos; i < len(g.edgeList); i++ {
		g.edgePos[g.edgeList[i]] = i
	}
}

// CloneEmpty returns a fresh empty MapGraph of the same kind. O(1).
func (g *MapGraph[N, E]) CloneEmpty() Mutable[N, E] {
	return NewMapGraph[N, E]()
}

// Clone returns a deep copy: nodes, edges, and enumeration order. O(V + E).
func (g *MapGraph[N, E]) Clone() *MapGraph[N, E] {
	clone := &MapGraph[N, E]{
		nodePos:  make(map[N]int, len(g.nodePos)),
		nodeList: slices.Clone(g.nodeList),
		edgePos:  make(map[E]int, len(g.edgePos)),
		edgeList: slices.Clone(g.edgeList),
	}
	for n, i := range g.nodePos {
		clone.nodePos[n] = i
	}
	for e, i := range g.edgePos {
		clone.edgePos[e] = i
	}

	return clone
}

// scan collects the edges satisfying keep, in insertion order.
func (g *MapGraph[N, E]) scan(keep func(E) bool) []E {
	var out []E
	for _, e := range g.edgeList {
		if keep(e) {
			out = append(out, e)
		}
	}

	return out
}
