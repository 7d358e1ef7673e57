package components

import "github.com/katalvlaran/digraph/core"

// frame is one suspended Tarjan visit: the node, its successor list, and
// the scan position within it.
type frame[N comparable] struct {
	node N
	succ []N
	next int
}

// sccState carries the Tarjan bookkeeping across roots.
type sccState[N comparable, E core.Edge[N]] struct {
	graph   core.Graph[N, E]
	index   map[N]int
	lowlink map[N]int
	onStack map[N]bool
	stack   []N
	frames  []frame[N]
	counter int
	comps   [][]N
}

// Strong returns the strongly connected components of g: maximal node sets
// that are mutually reachable. Every node appears in exactly one component;
// components are ordered by low-link closure, i.e. reverse topological
// order of the condensation DAG.
func Strong[N comparable, E core.Edge[N]](g core.Graph[N, E]) [][]N {
	nodes := g.Nodes()
	s := &sccState[N, E]{
		graph:   g,
		index:   make(map[N]int, len(nodes)),
		lowlink: make(map[N]int, len(nodes)),
		onStack: make(map[N]bool, len(nodes)),
	}
	for _, root := range nodes {
		if _, seen := s.index[root]; !seen {
			s.connect(root)
		}
	}

	return s.comps
}

// connect runs the low-link computation rooted at 'root' on an explicit
// frame stack, replacing the textbook recursion.
func (s *sccState[N, E]) connect(root N) {
	s.open(root)
	for len(s.frames) > 0 {
		f := &s.frames[len(s.frames)-1]

		descended := false
		for f.next < len(f.succ) {
			w := f.succ[f.next]
			f.next++
			if _, seen := s.index[w]; !seen {
				// Tree edge: suspend f, descend into w.
				s.open(w)
				descended = true
				break
			}
			if s.onStack[w] && s.index[w] < s.lowlink[f.node] {
				// Back edge into the current stack.
				s.lowlink[f.node] = s.index[w]
			}
		}
		if descended {
			continue
		}

		// All successors of f.node explored: close the frame.
		n := f.node
		s.frames = s.frames[:len(s.frames)-1]
		if len(s.frames) > 0 {
			parent := &s.frames[len(s.frames)-1]
			if s.lowlink[n] < s.lowlink[parent.node] {
				s.lowlink[parent.node] = s.lowlink[n]
			}
		}
		if s.lowlink[n] == s.index[n] {
			s.comps = append(s.comps, s.pop(n))
		}
	}
}

// open assigns n its discovery index and pushes it on both stacks.
func (s *sccState[N, E]) open(n N) {
	s.index[n] = s.counter
	s.lowlink[n] = s.counter
	s.counter++
	s.stack = append(s.stack, n)
	s.onStack[n] = true
	s.frames = append(s.frames, frame[N]{node: n, succ: core.NodesConnectedFrom(s.graph, n)})
}

// pop collects the component rooted at n: the stack down to and including n.
func (s *sccState[N, E]) pop(n N) []N {
	var comp []N
	for {
		w := s.stack[len(s.stack)-1]
		s.stack = s.stack[:len(s.stack)-1]
		s.onStack[w] = false
		comp = append(comp, w)
		if w == n {
			return comp
		}
	}
}
