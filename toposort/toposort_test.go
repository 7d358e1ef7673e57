package toposort_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/build"
	"github.com/katalvlaran/digraph/cached"
	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/toposort"
)

// requireTopological asserts that order respects every edge of g and covers
// every node exactly once.
func requireTopological[N comparable, E core.Edge[N]](t *testing.T, g core.Graph[N, E], order []N) {
	t.Helper()
	require.Len(t, order, len(g.Nodes()))
	pos := make(map[N]int, len(order))
	for i, n := range order {
		_, dup := pos[n]
		require.False(t, dup, "node %v listed twice", n)
		pos[n] = i
	}
	for _, e := range g.Edges() {
		require.Less(t, pos[e.Start()], pos[e.End()], "edge %v→%v out of order", e.Start(), e.End())
	}
}

// pipeline builds 1→2, 2→3, 2→4, 3→4, 4→5.
func pipeline() *core.MapGraph[int, core.Simple[int]] {
	g := core.NewSimpleGraph[int]()
	core.AddNodes[int, core.Simple[int]](g, 1, 2, 3, 4, 5)
	g.AddEdge(core.Simple[int]{From: 1, To: 2})
	g.AddEdge(core.Simple[int]{From: 2, To: 3})
	g.AddEdge(core.Simple[int]{From: 2, To: 4})
	g.AddEdge(core.Simple[int]{From: 3, To: 4})
	g.AddEdge(core.Simple[int]{From: 4, To: 5})

	return g
}

// TestSort verifies the order on a small dependency pipeline.
func TestSort(t *testing.T) {
	g := pipeline()

	order, err := toposort.Sort[int, core.Simple[int]](g)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)
	requireTopological[int, core.Simple[int]](t, g, order)
}

// TestSort_Cycle verifies cycle reporting through the sentinel.
func TestSort_Cycle(t *testing.T) {
	g := core.NewSimpleGraph[int]()
	build.Cycle(g, 1, 2, 3)

	_, err := toposort.Sort[int, core.Simple[int]](g)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
	assert.True(t, errors.Is(err, toposort.ErrCycleDetected))
}

// TestSort_SelfLoop verifies that a self-loop counts as a cycle.
func TestSort_SelfLoop(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	g.AddNode("a")
	g.AddEdge(core.Simple[string]{From: "a", To: "a"})

	_, err := toposort.Sort[string, core.Simple[string]](g)
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
}

// TestSort_Disconnected verifies that separate islands all get placed.
func TestSort_Disconnected(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	build.Path(g, "a", "b")
	build.Path(g, "x", "y", "z")

	order, err := toposort.Sort[string, core.Simple[string]](g)
	require.NoError(t, err)
	requireTopological[string, core.Simple[string]](t, g, order)
}

// TestSort_Empty verifies the empty-graph base case.
func TestSort_Empty(t *testing.T) {
	g := core.NewSimpleGraph[int]()

	order, err := toposort.Sort[int, core.Simple[int]](g)
	require.NoError(t, err)
	assert.Empty(t, order)
}

// TestSort_DeepChain verifies the explicit stack against pathological depth.
// The indexed backing keeps the run linear; a plain scan backing would be
// quadratic at this size.
func TestSort_DeepChain(t *testing.T) {
	const length = 200_000
	g := cached.NewSimple[int]()
	g.AddNode(0)
	for i := 1; i < length; i++ {
		g.AddNode(i)
		g.AddEdge(core.Simple[int]{From: i - 1, To: i})
	}

	order, err := toposort.Sort[int, core.Simple[int]](g)
	require.NoError(t, err)
	require.Len(t, order, length)
	assert.Equal(t, 0, order[0])
	assert.Equal(t, length-1, order[length-1])
}

// TestSortStableFunc verifies edge precedence plus deterministic tie-breaks
// under the caller ordering.
func TestSortStableFunc(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "d", "b", "a", "c")
	g.AddEdge(core.Simple[string]{From: "d", To: "a"})

	order, err := toposort.SortStableFunc[string, core.Simple[string]](g, func(a, b string) bool { return a < b })
	require.NoError(t, err)
	// b, c, d free from the start and emitted in order; a waits on d.
	assert.Equal(t, []string{"b", "c", "d", "a"}, order)
	requireTopological[string, core.Simple[string]](t, g, order)
}

// TestSortStableFunc_Edgeless verifies that with no edges the result is the
// node set sorted by less.
func TestSortStableFunc_Edgeless(t *testing.T) {
	g := core.NewSimpleGraph[int]()
	core.AddNodes[int, core.Simple[int]](g, 9, 3, 7, 1)

	order, err := toposort.SortStableFunc[int, core.Simple[int]](g, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 7, 9}, order)
}

// TestSortStableFunc_Ties verifies insertion-stable behavior when the caller
// ordering cannot tell nodes apart.
func TestSortStableFunc_Ties(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "w", "q", "m")

	order, err := toposort.SortStableFunc[string, core.Simple[string]](g, func(a, b string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, []string{"w", "q", "m"}, order)
}

// TestSortStableFunc_Cycle verifies cycle reporting in the frontier variant.
func TestSortStableFunc_Cycle(t *testing.T) {
	g := core.NewSimpleGraph[int]()
	build.Cycle(g, 1, 2)
	core.AddNodes[int, core.Simple[int]](g, 0)

	_, err := toposort.SortStableFunc[int, core.Simple[int]](g, func(a, b int) bool { return a < b })
	assert.ErrorIs(t, err, toposort.ErrCycleDetected)
}

// TestSortStableFunc_Agreement verifies both sorts accept each other's
// problem: the stable order is itself topological, and under the numeric
// ordering the pipeline comes out in numeric order.
func TestSortStableFunc_Agreement(t *testing.T) {
	g := pipeline()

	order, err := toposort.SortStableFunc[int, core.Simple[int]](g, func(a, b int) bool { return a < b })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, order)

	reversed, err := toposort.SortStableFunc[int, core.Simple[int]](g, func(a, b int) bool { return a > b })
	require.NoError(t, err)
	requireTopological[int, core.Simple[int]](t, g, reversed)
}
