package traverse

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/digraph/core"
)

// DFS returns a lazy depth-first sequence of visits starting at 'start'.
// Children are pushed in reverse adjacency order, so on ordered backings
// the first-enumerated child is visited first. Breaking out of the range
// stops the walk immediately; ranging again restarts it.
// Panics if start is not a member of g.
func DFS[N comparable, E core.Edge[N]](g core.Graph[N, E], start N) iter.Seq[*Visit[N, E]] {
	mustContain(g, start, "DFS")
	return func(yield func(*Visit[N, E]) bool) {
		walk(g, start, true, yield)
	}
}

// BFS returns a lazy breadth-first sequence of visits starting at 'start'.
// Visits are yielded in non-decreasing distance from the root. Breaking out
// of the range stops the walk immediately; ranging again restarts it.
// Panics if start is not a member of g.
func BFS[N comparable, E core.Edge[N]](g core.Graph[N, E], start N) iter.Seq[*Visit[N, E]] {
	mustContain(g, start, "BFS")
	return func(yield func(*Visit[N, E]) bool) {
		walk(g, start, false, yield)
	}
}

// walk drives both disciplines over one work list: DFS pops from the end,
// BFS from the front. A node is marked visited when popped; stale work-list
// entries for already-visited nodes are dropped, and edges into visited
// nodes are never pushed.
func walk[N comparable, E core.Edge[N]](g core.Graph[N, E], start N, lifo bool, yield func(*Visit[N, E]) bool) {
	visited := make(map[N]struct{})
	list := []*Visit[N, E]{{node: start}}

	var cur *Visit[N, E]
	for len(list) > 0 {
		if lifo {
			cur = list[len(list)-1]
			list = list[:len(list)-1]
		} else {
			cur = list[0]
			list = list[1:]
		}
		if _, seen := visited[cur.node]; seen {
			continue
		}
		visited[cur.node] = struct{}{}

		if !yield(cur) {
			return
		}

		out := g.EdgesFrom(cur.node)
		if lifo {
			for i := len(out) - 1; i >= 0; i-- {
				list = push(list, cur, out[i], visited)
			}
		} else {
			for _, e := range out {
				list = push(list, cur, e, visited)
			}
		}
	}
}

// push appends the extension of cur by e unless e's end was already visited.
func push[N comparable, E core.Edge[N]](list []*Visit[N, E], cur *Visit[N, E], e E, visited map[N]struct{}) []*Visit[N, E] {
	end := e.End()
	if _, seen := visited[end]; seen {
		return list
	}

	return append(list, &Visit[N, E]{
		parent:  cur,
		node:    end,
		edge:    e,
		depth:   cur.depth + 1,
		hasEdge: true,
	})
}

// mustContain panics with the operation name when start is absent.
func mustContain[N comparable, E core.Edge[N]](g core.Graph[N, E], start N, op string) {
	if !g.ContainsNode(start) {
		panic(fmt.Sprintf("traverse: %s: start node %v not in graph", op, start))
	}
}
