// Package core: compound mutation operations derived from the Mutable
// contract. Pointwise bulk helpers first, then structural operations.
// Operations that must construct new edges (redirects, Prepend, EnsureEdge)
// are defined over Simple-edged graphs, since an arbitrary edge type cannot
// be synthesized from endpoints alone.
package core

import "fmt"

// Clear removes every edge, then every node. The graph keeps its kind and
// configuration. Complexity: O(V + E) primitive removals.
func Clear[N comparable, E Edge[N]](g Mutable[N, E]) {
	for _, e := range g.Edges() {
		g.RemoveEdge(e)
	}
	for _, n := range g.Nodes() {
		g.RemoveNode(n)
	}
}

// AddNodes inserts each node in order. Present nodes are no-ops.
func AddNodes[N comparable, E Edge[N]](g Mutable[N, E], nodes ...N) {
	for _, n := range nodes {
		g.AddNode(n)
	}
}

// AddEdges inserts each edge in order and returns the stored instances.
// Panics on the first edge whose endpoints are not members.
func AddEdges[N comparable, E Edge[N]](g Mutable[N, E], edges ...E) []E {
	stored := make([]E, len(edges))
	for i, e := range edges {
		stored[i] = g.AddEdge(e)
	}

	return stored
}

// RemoveNodes removes each node in order, incident edges included.
// Panics on the first non-member.
func RemoveNodes[N comparable, E Edge[N]](g Mutable[N, E], nodes ...N) {
	for _, n := range nodes {
		g.RemoveNode(n)
	}
}

// RemoveEdges removes each edge in order. Panics on the first non-member.
func RemoveEdges[N comparable, E Edge[N]](g Mutable[N, E], edges ...E) {
	for _, e := range edges {
		g.RemoveEdge(e)
	}
}

// RemoveEdgesBetween removes and returns every edge leading from 'from' to
// 'to'. Returns nil when none exist.
func RemoveEdgesBetween[N comparable, E Edge[N]](g Mutable[N, E], from, to N) []E {
	removed := g.EdgesBetween(from, to)
	for _, e := range removed {
		g.RemoveEdge(e)
	}

	return removed
}

// Subgraph returns a new graph of the same kind containing the given nodes
// and every edge of g whose both endpoints lie in the subset. Nodes absent
// from g are added to the result as isolated members, matching AddNode's
// idempotent contract. Complexity: O(V + E).
func Subgraph[N comparable, E Edge[N]](g Mutable[N, E], nodes ...N) Mutable[N, E] {
	sub := g.CloneEmpty()
	keep := make(map[N]struct{}, len(nodes))
	for _, n := range nodes {
		sub.AddNode(n)
		keep[n] = struct{}{}
	}
	for _, e := range g.Edges() {
		if _, ok := keep[e.Start()]; !ok {
			continue
		}
		if _, ok := keep[e.End()]; !ok {
			continue
		}
		sub.AddEdge(e)
	}

	return sub
}

// RemoveEntryEdges removes and returns the edges entering n.
func RemoveEntryEdges[N comparable, E Edge[N]](g Mutable[N, E], n N) []E {
	removed := g.EdgesTowards(n)
	for _, e := range removed {
		g.RemoveEdge(e)
	}

	return removed
}

// RemoveExitEdges removes and returns the edges leaving n.
func RemoveExitEdges[N comparable, E Edge[N]](g Mutable[N, E], n N) []E {
	removed := g.EdgesFrom(n)
	for _, e := range removed {
		g.RemoveEdge(e)
	}

	return removed
}

// RedirectEntries moves the edges entering 'node' so that they enter 'to'
// instead. A redirection whose target edge already exists is skipped (the
// original is still removed). Returns the newly created edges.
func RedirectEntries[N comparable](g Mutable[N, Simple[N]], node, to N) []Simple[N] {
	var created []Simple[N]
	for _, e := range RemoveEntryEdges(g, node) {
		moved := Simple[N]{From: e.From, To: to}
		if g.ContainsEdge(moved) {
			continue
		}
		created = append(created, g.AddEdge(moved))
	}

	return created
}

// RedirectExits moves the edges leaving 'node' so that they leave 'from'
// instead. A redirection whose target edge already exists is skipped (the
// original is still removed). Returns the newly created edges.
func RedirectExits[N comparable](g Mutable[N, Simple[N]], node, from N) []Simple[N] {
	var created []Simple[N]
	for _, e := range RemoveExitEdges(g, node) {
		moved := Simple[N]{From: from, To: e.To}
		if g.ContainsEdge(moved) {
			continue
		}
		created = append(created, g.AddEdge(moved))
	}

	return created
}

// Prepend splices 'node' immediately upstream of 'next': it ensures 'node'
// exists (clearing its outgoing edges if it already did), redirects every
// edge entering 'next' so that it enters 'node' instead, then adds the edge
// node→next. All of next's external inbound connections are preserved
// through the new node. Panics if 'next' is not a member.
func Prepend[N comparable](g Mutable[N, Simple[N]], node, next N) {
	if !g.ContainsNode(next) {
		panic(fmt.Sprintf("core: Prepend: node %v not in graph", next))
	}
	if g.ContainsNode(node) {
		RemoveExitEdges(g, node)
	} else {
		g.AddNode(node)
	}
	RedirectEntries(g, next, node)
	g.AddEdge(Simple[N]{From: node, To: next})
}

// EnsureEdge returns the existing from→to edge if present, inserting it
// otherwise. Panics unless both endpoints are members.
func EnsureEdge[N comparable](g Mutable[N, Simple[N]], from, to N) Simple[N] {
	return g.AddEdge(Simple[N]{From: from, To: to})
}
