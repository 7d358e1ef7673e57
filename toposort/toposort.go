package toposort

import (
	"errors"

	"github.com/katalvlaran/digraph/core"
)

// ErrCycleDetected indicates that the graph contains a cycle, so no
// topological order exists. Branch on it with errors.Is; a cyclic graph is
// a normal outcome, not a fault.
var ErrCycleDetected = errors.New("toposort: cycle detected")

// Visitation states of the mark-based sort.
const (
	white = iota // not yet visited
	gray         // on the current depth-first stack
	black        // fully explored
)

// frame is one suspended depth-first visit.
type frame[N comparable] struct {
	node N
	succ []N
	next int
}

// Sort returns a topological order of g's nodes: for every edge u→v, u
// appears before v. Implemented as the permanent/temporary-mark depth-first
// algorithm on an explicit frame stack; meeting a temporarily-marked node
// means a back edge, and ErrCycleDetected is returned. Completed nodes are
// prepended, so the result is valid once every node is black.
func Sort[N comparable, E core.Edge[N]](g core.Graph[N, E]) ([]N, error) {
	nodes := g.Nodes()
	state := make(map[N]int, len(nodes))
	order := make([]N, len(nodes))
	fill := len(nodes) // next prepend position, walking backwards

	var stack []frame[N]
	for _, root := range nodes {
		if state[root] != white {
			continue
		}
		state[root] = gray
		stack = append(stack, frame[N]{node: root, succ: core.NodesConnectedFrom(g, root)})

		for len(stack) > 0 {
			f := &stack[len(stack)-1]

			descended := false
			for f.next < len(f.succ) {
				w := f.succ[f.next]
				f.next++
				switch state[w] {
				case gray:
					return nil, ErrCycleDetected
				case white:
					state[w] = gray
					stack = append(stack, frame[N]{node: w, succ: core.NodesConnectedFrom(g, w)})
					descended = true
				}
				if descended {
					break
				}
			}
			if descended {
				continue
			}

			state[f.node] = black
			fill--
			order[fill] = f.node
			stack = stack[:len(stack)-1]
		}
	}

	return order, nil
}
