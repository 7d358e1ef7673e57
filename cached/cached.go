package cached

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/digraph/core"
)

// record is the shared cache: the backing graph plus the incremental
// per-node adjacency lists, behind a reference count. Wrappers share one
// record until a mutation forces a private clone.
type record[N comparable, E core.Edge[N]] struct {
	refs    int
	backing core.Mutable[N, E]
	out     map[N][]E // node → edges leaving it, insertion-ordered
	in      map[N][]E // node → edges entering it, insertion-ordered
}

// Graph is a caching adjacency index over a mutable backing graph, with
// copy-on-write value semantics via Clone. The zero value is not usable;
// construct with New or NewSimple.
type Graph[N comparable, E core.Edge[N]] struct {
	rec *record[N, E]
}

// New wraps backing in a caching index, seeding the adjacency lists from
// its current content. The wrapper takes ownership of backing; mutate it
// only through the wrapper afterwards. Complexity: O(V + E).
func New[N comparable, E core.Edge[N]](backing core.Mutable[N, E]) *Graph[N, E] {
	rec := &record[N, E]{
		refs:    1,
		backing: backing,
		out:     make(map[N][]E),
		in:      make(map[N][]E),
	}
	for _, n := range backing.Nodes() {
		rec.out[n] = nil
		rec.in[n] = nil
	}
	for _, e := range backing.Edges() {
		rec.out[e.Start()] = append(rec.out[e.Start()], e)
		rec.in[e.End()] = append(rec.in[e.End()], e)
	}

	return &Graph[N, E]{rec: rec}
}

// NewSimple returns a caching index over a fresh empty core.MapGraph of
// Simple edges — the common starting point.
func NewSimple[N comparable]() *Graph[N, core.Simple[N]] {
	return New[N, core.Simple[N]](core.NewSimpleGraph[N]())
}

// Clone returns a copy that shares storage with g until either side
// mutates. O(1). Single-threaded: see the package documentation.
func (g *Graph[N, E]) Clone() *Graph[N, E] {
	g.rec.refs++
	return &Graph[N, E]{rec: g.rec}
}

// ensureUnique makes g the sole referent of its record, deep-cloning the
// shared one first when needed. Every mutator calls this before touching
// state.
func (g *Graph[N, E]) ensureUnique() {
	if g.rec.refs == 1 {
		return
	}
	g.rec.refs--
	g.rec = g.rec.deepClone()
}

// deepClone copies the backing graph and both adjacency maps into a fresh
// record with a reference count of one. O(V + E).
func (r *record[N, E]) deepClone() *record[N, E] {
	backing := r.backing.CloneEmpty()
	core.AddNodes(backing, r.backing.Nodes()...)
	core.AddEdges(backing, r.backing.Edges()...)

	clone := &record[N, E]{
		refs:    1,
		backing: backing,
		out:     make(map[N][]E, len(r.out)),
		in:      make(map[N][]E, len(r.in)),
	}
	for n, es := range r.out {
		clone.out[n] = slices.Clone(es)
	}
	for n, es := range r.in {
		clone.in[n] = slices.Clone(es)
	}

	return clone
}

// Nodes returns every node, in the backing graph's order.
func (g *Graph[N, E]) Nodes() []N { return g.rec.backing.Nodes() }

// Edges returns every edge, in the backing graph's order.
func (g *Graph[N, E]) Edges() []E { return g.rec.backing.Edges() }

// ContainsNode reports membership of n. O(1).
func (g *Graph[N, E]) ContainsNode(n N) bool { return g.rec.backing.ContainsNode(n) }

// ContainsEdge reports membership of e. O(1).
func (g *Graph[N, E]) ContainsEdge(e E) bool { return g.rec.backing.ContainsEdge(e) }

// EdgesFrom returns the edges leaving n straight from the index.
// O(outdegree(n)) for the copy; no edge-set scan.
func (g *Graph[N, E]) EdgesFrom(n N) []E { return slices.Clone(g.rec.out[n]) }

// EdgesTowards returns the edges entering n straight from the index.
// O(indegree(n)) for the copy; no edge-set scan.
func (g *Graph[N, E]) EdgesTowards(n N) []E { return slices.Clone(g.rec.in[n]) }

// EdgesBetween returns the edges leading from 'from' to 'to', filtered
// from the outgoing index entry. O(outdegree(from)).
func (g *Graph[N, E]) EdgesBetween(from, to N) []E {
	var between []E
	for _, e := range g.rec.out[from] {
		if e.End() == to {
			between = append(between, e)
		}
	}

	return between
}

// OutDegree returns the number of edges leaving n. O(1).
func (g *Graph[N, E]) OutDegree(n N) int { return len(g.rec.out[n]) }

// InDegree returns the number of edges entering n. O(1).
func (g *Graph[N, E]) InDegree(n N) int { return len(g.rec.in[n]) }

// AddNode inserts n into the backing graph and seeds its empty index
// entries. Inserting a present node is a no-op.
func (g *Graph[N, E]) AddNode(n N) {
	if g.rec.backing.ContainsNode(n) {
		return
	}
	g.ensureUnique()
	g.rec.backing.AddNode(n)
	g.rec.out[n] = nil
	g.rec.in[n] = nil
}

// RemoveNode deletes n: incident edges first, routed through the single
// edge-removal path so the index stays consistent, then the node itself
// from both index maps and the backing graph. Panics if n is not a member.
func (g *Graph[N, E]) RemoveNode(n N) {
	if !g.rec.backing.ContainsNode(n) {
		panic(fmt.Sprintf("cached: RemoveNode: node %v not in graph", n))
	}
	g.ensureUnique()
	for _, e := range incident(g.rec, n) {
		g.removeEdge(e)
	}
	delete(g.rec.out, n)
	delete(g.rec.in, n)
	g.rec.backing.RemoveNode(n)
}

// RemoveNodes deletes a batch of nodes. Every incident edge is removed
// from the backing edge set and from BOTH endpoints' index entries before
// its node goes away, so surviving nodes keep no dangling adjacency
// references. Panics if any node is not a member (checked up front, before
// any mutation).
func (g *Graph[N, E]) RemoveNodes(nodes ...N) {
	for _, n := range nodes {
		if !g.rec.backing.ContainsNode(n) {
			panic(fmt.Sprintf("cached: RemoveNodes: node %v not in graph", n))
		}
	}
	g.ensureUnique()
	for _, n := range nodes {
		for _, e := range incident(g.rec, n) {
			g.removeEdge(e)
		}
		delete(g.rec.out, n)
		delete(g.rec.in, n)
		g.rec.backing.RemoveNode(n)
	}
}

// AddEdge inserts e into the backing edge set and registers it in the
// start node's outgoing entry and the end node's incoming entry. If an
// equal edge already exists, the existing instance is returned unchanged
// with no duplicate bookkeeping. Panics unless both endpoints are members.
func (g *Graph[N, E]) AddEdge(e E) E {
	if g.rec.backing.ContainsEdge(e) {
		return e
	}
	g.ensureUnique()
	stored := g.rec.backing.AddEdge(e)
	g.rec.out[stored.Start()] = append(g.rec.out[stored.Start()], stored)
	g.rec.in[stored.End()] = append(g.rec.in[stored.End()], stored)

	return stored
}

// RemoveEdge deletes e from the backing edge set and from both endpoint
// index entries. Panics if e is not a member.
func (g *Graph[N, E]) RemoveEdge(e E) {
	if !g.rec.backing.ContainsEdge(e) {
		panic(fmt.Sprintf("cached: RemoveEdge: edge %v not in graph", e))
	}
	g.ensureUnique()
	g.removeEdge(e)
}

// removeEdge is the single internal edge-removal path: backing edge set
// plus both endpoint entries. The record must already be unique.
func (g *Graph[N, E]) removeEdge(e E) {
	g.rec.backing.RemoveEdge(e)
	g.rec.out[e.Start()] = drop(g.rec.out[e.Start()], e)
	g.rec.in[e.End()] = drop(g.rec.in[e.End()], e)
}

// CloneEmpty returns a fresh caching index over an empty backing graph of
// the same kind, satisfying core.Mutable.
func (g *Graph[N, E]) CloneEmpty() core.Mutable[N, E] {
	return New(g.rec.backing.CloneEmpty())
}

// incident collects n's outgoing and incoming edges once each; a self-loop
// appears a single time.
func incident[N comparable, E core.Edge[N]](rec *record[N, E], n N) []E {
	edges := slices.Clone(rec.out[n])
	for _, e := range rec.in[n] {
		if e.Start() == n && e.End() == n {
			continue // self-loop already listed via out
		}
		edges = append(edges, e)
	}

	return edges
}

// drop removes the first occurrence of e from list, in place.
func drop[E comparable](list []E, e E) []E {
	for i, x := range list {
		if x == e {
			return slices.Delete(list, i, i+1)
		}
	}

	return list
}
