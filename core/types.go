// Package core: graph contracts.
//
// This file declares the Edge constraint, the read-only Graph interface,
// and the Mutable mutation interface. Derived operations live in query.go
// and mutate.go; the concrete MapGraph implementation lives in mapgraph.go.
package core

// Edge is the constraint satisfied by every edge type stored in a graph.
// Edges are plain comparable values: equality is Go's ==, so an edge type
// whose identity is exactly its endpoint pair (see Simple) admits at most
// one edge per ordered pair, while an edge type carrying extra fields may
// hold parallel edges between the same endpoints.
type Edge[N comparable] interface {
	comparable

	// Start returns the node this edge leaves.
	Start() N

	// End returns the node this edge enters.
	End() N
}

// Graph is the minimal read contract every graph implementation satisfies.
//
// Implementations choose their own enumeration order for Nodes, Edges and
// the adjacency queries; the only requirement is that the order is stable
// between mutations. All compound queries and algorithms are derived from
// these seven primitives.
type Graph[N comparable, E Edge[N]] interface {
	// Nodes returns every node. The slice is owned by the caller.
	Nodes() []N

	// Edges returns every edge. The slice is owned by the caller.
	Edges() []E

	// ContainsNode reports whether n is a member of the node set.
	ContainsNode(n N) bool

	// ContainsEdge reports whether e is a member of the edge set.
	ContainsEdge(e E) bool

	// EdgesFrom returns the edges whose Start is n. Empty for non-members.
	EdgesFrom(n N) []E

	// EdgesTowards returns the edges whose End is n. Empty for non-members.
	EdgesTowards(n N) []E

	// EdgesBetween returns the edges leading from 'from' to 'to'.
	EdgesBetween(from, to N) []E
}

// Mutable extends Graph with the four mutation primitives plus CloneEmpty.
// Bulk and structural operations (Clear, Subgraph, redirects, Prepend, …)
// are derived from these in mutate.go.
//
// Failure policy: structural misuse panics. RemoveNode and RemoveEdge
// require membership; AddEdge requires both endpoints to be members.
// These are invariant breaches — caller bugs — never recoverable errors.
type Mutable[N comparable, E Edge[N]] interface {
	Graph[N, E]

	// AddNode inserts n. Inserting a present node is a no-op.
	AddNode(n N)

	// RemoveNode deletes n and every edge incident to it.
	// Panics if n is not a member.
	RemoveNode(n N)

	// AddEdge inserts e and returns the stored instance. If an equal edge
	// already exists, the existing instance is returned unchanged.
	// Panics unless both endpoints are members.
	AddEdge(e E) E

	// RemoveEdge deletes e. Panics if e is not a member.
	RemoveEdge(e E)

	// CloneEmpty returns a fresh, empty graph of the same kind.
	// Derived structural operations (Subgraph) and copy-on-write cloning
	// build new graphs through this.
	CloneEmpty() Mutable[N, E]
}
