// Package core: compound read operations derived from the Graph contract.
//
// Every function here is written purely in terms of the seven primitive
// queries, so it works on any implementation. Enumeration order follows the
// implementation's adjacency order; duplicates are collapsed preserving
// first occurrence.
package core

// AllEdges returns the union of the edges entering and leaving n.
// A self-loop appears once. Complexity: O(deg(n)).
func AllEdges[N comparable, E Edge[N]](g Graph[N, E], n N) []E {
	out := g.EdgesFrom(n)
	in := g.EdgesTowards(n)
	seen := make(map[E]struct{}, len(out)+len(in))
	all := make([]E, 0, len(out)+len(in))
	for _, e := range out {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		all = append(all, e)
	}
	for _, e := range in {
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		all = append(all, e)
	}

	return all
}

// AreConnected reports whether at least one edge leads from 'from' to 'to'.
func AreConnected[N comparable, E Edge[N]](g Graph[N, E], from, to N) bool {
	return len(g.EdgesBetween(from, to)) > 0
}

// NodesConnectedFrom returns the distinct end nodes of the edges leaving n,
// in adjacency order.
func NodesConnectedFrom[N comparable, E Edge[N]](g Graph[N, E], n N) []N {
	return project(g.EdgesFrom(n), func(e E) N { return e.End() })
}

// NodesConnectedTowards returns the distinct start nodes of the edges
// entering n, in adjacency order.
func NodesConnectedTowards[N comparable, E Edge[N]](g Graph[N, E], n N) []N {
	return project(g.EdgesTowards(n), func(e E) N { return e.Start() })
}

// NodesConnected returns the distinct neighbors of n in either direction:
// successors first, then predecessors not already listed.
func NodesConnected[N comparable, E Edge[N]](g Graph[N, E], n N) []N {
	succ := g.EdgesFrom(n)
	pred := g.EdgesTowards(n)
	seen := make(map[N]struct{}, len(succ)+len(pred))
	nodes := make([]N, 0, len(succ)+len(pred))
	for _, e := range succ {
		if _, dup := seen[e.End()]; dup {
			continue
		}
		seen[e.End()] = struct{}{}
		nodes = append(nodes, e.End())
	}
	for _, e := range pred {
		if _, dup := seen[e.Start()]; dup {
			continue
		}
		seen[e.Start()] = struct{}{}
		nodes = append(nodes, e.Start())
	}

	return nodes
}

// InDegree returns the number of edges entering n.
// A self-loop contributes one.
func InDegree[N comparable, E Edge[N]](g Graph[N, E], n N) int {
	return len(g.EdgesTowards(n))
}

// OutDegree returns the number of edges leaving n.
// A self-loop contributes one.
func OutDegree[N comparable, E Edge[N]](g Graph[N, E], n N) int {
	return len(g.EdgesFrom(n))
}

// project maps edges to one endpoint each, collapsing duplicates while
// preserving first occurrence.
func project[N comparable, E Edge[N]](edges []E, endpoint func(E) N) []N {
	seen := make(map[N]struct{}, len(edges))
	nodes := make([]N, 0, len(edges))
	var n N
	for _, e := range edges {
		n = endpoint(e)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		nodes = append(nodes, n)
	}

	return nodes
}
