package traverse

import (
	"errors"

	"github.com/katalvlaran/digraph/core"
)

// ErrNoPath indicates that no directed path exists between the requested
// nodes. Absence of a path is a normal outcome, not an invariant breach;
// branch on it with errors.Is.
var ErrNoPath = errors.New("traverse: no path between nodes")

// HasPath reports whether a directed path leads from 'from' to 'to'.
// A node always has a path to itself. Panics if 'from' is not a member.
func HasPath[N comparable, E core.Edge[N]](g core.Graph[N, E], from, to N) bool {
	found := false
	for v := range DFS(g, from) {
		if v.Node() == to {
			found = true
			break
		}
	}

	return found
}

// ShortestPath returns the minimum edge-count node chain from 'from' to
// 'to'. BFS visits nodes in non-decreasing distance order, so the first
// visit reaching 'to' carries a shortest path; ties between equal-length
// paths are implementation-defined. from == to yields the single-node path.
// Returns ErrNoPath when 'to' is unreachable. Panics if 'from' is not a
// member.
func ShortestPath[N comparable, E core.Edge[N]](g core.Graph[N, E], from, to N) ([]N, error) {
	if from == to {
		mustContain(g, from, "ShortestPath")
		return []N{from}, nil
	}
	for v := range BFS(g, from) {
		if v.Node() == to {
			return v.Nodes(), nil
		}
	}

	return nil, ErrNoPath
}

// ShortestDistance returns the number of edges on a shortest path from
// 'from' to 'to', zero when they are equal. Returns ErrNoPath when 'to' is
// unreachable. Panics if 'from' is not a member.
func ShortestDistance[N comparable, E core.Edge[N]](g core.Graph[N, E], from, to N) (int, error) {
	path, err := ShortestPath(g, from, to)
	if err != nil {
		return 0, err
	}

	return len(path) - 1, nil
}
