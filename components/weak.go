package components

import "github.com/katalvlaran/digraph/core"

// Weak returns the weakly connected components of g: reachability classes
// with every edge treated as bidirectional. The result partitions the node
// set exactly; an isolated node is its own component.
func Weak[N comparable, E core.Edge[N]](g core.Graph[N, E]) [][]N {
	nodes := g.Nodes()
	assigned := make(map[N]bool, len(nodes))
	var comps [][]N

	for _, seed := range nodes {
		if assigned[seed] {
			continue
		}
		// Breadth-first sweep over neighbors in either direction.
		var comp []N
		queue := []N{seed}
		assigned[seed] = true
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp = append(comp, cur)
			for _, nb := range core.NodesConnected(g, cur) {
				if !assigned[nb] {
					assigned[nb] = true
					queue = append(queue, nb)
				}
			}
		}
		comps = append(comps, comp)
	}

	return comps
}
