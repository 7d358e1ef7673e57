package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/digraph/core"
)

// edge is shorthand for a Simple[string] literal.
func edge(from, to string) core.Simple[string] {
	return core.Simple[string]{From: from, To: to}
}

// TestMapGraph_AddNode verifies insertion, idempotence, and membership.
func TestMapGraph_AddNode(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	g.AddNode("A")
	g.AddNode("B")
	g.AddNode("A") // no-op

	assert.True(t, g.ContainsNode("A"))
	assert.True(t, g.ContainsNode("B"))
	assert.False(t, g.ContainsNode("C"))
	assert.Equal(t, []string{"A", "B"}, g.Nodes())
	assert.Equal(t, 2, g.NodeCount())
}

// TestMapGraph_AddEdge verifies edge insertion, the existing-instance
// return on duplicates, and the endpoint membership invariant.
func TestMapGraph_AddEdge(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "A", "B")

	e := g.AddEdge(edge("A", "B"))
	assert.Equal(t, edge("A", "B"), e)
	assert.True(t, g.ContainsEdge(edge("A", "B")))
	assert.Equal(t, 1, g.EdgeCount())

	// Duplicate insert keeps the edge set unchanged.
	again := g.AddEdge(edge("A", "B"))
	assert.Equal(t, e, again)
	assert.Equal(t, 1, g.EdgeCount())

	// Missing endpoints are invariant breaches.
	assert.Panics(t, func() { g.AddEdge(edge("A", "Z")) })
	assert.Panics(t, func() { g.AddEdge(edge("Z", "B")) })
}

// TestMapGraph_SelfLoop verifies that self-loops are stored once and show
// up in both adjacency directions.
func TestMapGraph_SelfLoop(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	g.AddNode("A")
	g.AddEdge(edge("A", "A"))

	assert.Equal(t, []core.Simple[string]{edge("A", "A")}, g.EdgesFrom("A"))
	assert.Equal(t, []core.Simple[string]{edge("A", "A")}, g.EdgesTowards("A"))
	assert.Equal(t, 1, g.EdgeCount())
}

// TestMapGraph_RemoveNode verifies that removing a node removes every
// incident edge and leaves no dangling adjacency entries.
func TestMapGraph_RemoveNode(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "A", "B", "C")
	g.AddEdge(edge("A", "B"))
	g.AddEdge(edge("B", "C"))
	g.AddEdge(edge("C", "A"))

	g.RemoveNode("B")

	assert.False(t, g.ContainsNode("B"))
	assert.Equal(t, []core.Simple[string]{edge("C", "A")}, g.Edges())
	assert.Empty(t, g.EdgesFrom("A"))
	assert.Empty(t, g.EdgesTowards("C"))

	assert.Panics(t, func() { g.RemoveNode("B") })
}

// TestMapGraph_RemoveEdge verifies edge removal and its precondition.
func TestMapGraph_RemoveEdge(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "A", "B")
	g.AddEdge(edge("A", "B"))

	g.RemoveEdge(edge("A", "B"))
	assert.False(t, g.ContainsEdge(edge("A", "B")))
	assert.Zero(t, g.EdgeCount())

	assert.Panics(t, func() { g.RemoveEdge(edge("A", "B")) })
}

// TestMapGraph_InsertionOrder verifies deterministic enumeration: nodes and
// edges come back in the order they were inserted, also after removals.
func TestMapGraph_InsertionOrder(t *testing.T) {
	g := core.NewSimpleGraph[int]()
	for _, n := range []int{3, 1, 4, 1, 5} {
		g.AddNode(n)
	}
	assert.Equal(t, []int{3, 1, 4, 5}, g.Nodes())

	g.AddEdge(core.Simple[int]{From: 3, To: 1})
	g.AddEdge(core.Simple[int]{From: 3, To: 4})
	g.AddEdge(core.Simple[int]{From: 3, To: 5})
	g.RemoveEdge(core.Simple[int]{From: 3, To: 4})

	assert.Equal(t, []core.Simple[int]{
		{From: 3, To: 1},
		{From: 3, To: 5},
	}, g.EdgesFrom(3))

	g.RemoveNode(1)
	assert.Equal(t, []int{3, 4, 5}, g.Nodes())
}

// TestMapGraph_EdgesBetween verifies the ordered-pair query.
func TestMapGraph_EdgesBetween(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "A", "B")
	g.AddEdge(edge("A", "B"))

	assert.Equal(t, []core.Simple[string]{edge("A", "B")}, g.EdgesBetween("A", "B"))
	assert.Empty(t, g.EdgesBetween("B", "A"))
}

// TestMapGraph_Clone verifies that deep copies evolve independently.
func TestMapGraph_Clone(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "A", "B")
	g.AddEdge(edge("A", "B"))

	clone := g.Clone()
	clone.AddNode("C")
	clone.RemoveEdge(edge("A", "B"))

	assert.True(t, g.ContainsEdge(edge("A", "B")))
	assert.False(t, g.ContainsNode("C"))
	assert.True(t, clone.ContainsNode("C"))
}

// TestMapGraph_CloneEmpty verifies that the empty clone shares kind but no
// content.
func TestMapGraph_CloneEmpty(t *testing.T) {
	g := core.NewSimpleGraph[string]()
	g.AddNode("A")

	empty := g.CloneEmpty()
	require.NotNil(t, empty)
	assert.Empty(t, empty.Nodes())
	assert.True(t, g.ContainsNode("A"))
}

// differentiated is an edge type carrying an extra identity field, so
// parallel edges between the same endpoints may coexist.
type differentiated struct {
	from, to string
	label    string
}

func (e differentiated) Start() string { return e.from }
func (e differentiated) End() string   { return e.to }

// TestMapGraph_DifferentiatedEdges verifies that edges with extra identity
// fields coexist in parallel between one ordered pair.
func TestMapGraph_DifferentiatedEdges(t *testing.T) {
	g := core.NewMapGraph[string, differentiated]()
	core.AddNodes[string, differentiated](g, "A", "B")

	g.AddEdge(differentiated{from: "A", to: "B", label: "x"})
	g.AddEdge(differentiated{from: "A", to: "B", label: "y"})

	assert.Equal(t, 2, g.EdgeCount())
	assert.Len(t, g.EdgesBetween("A", "B"), 2)
	assert.Equal(t, 2, core.OutDegree[string, differentiated](g, "A"))
}

// TestMapGraph_ReferenceIdentityNodes verifies that pointer nodes compare
// by object identity: two distinct pointers to equal payloads are distinct
// nodes.
func TestMapGraph_ReferenceIdentityNodes(t *testing.T) {
	type payload struct{ name string }
	a := &payload{name: "n"}
	b := &payload{name: "n"} // equal payload, distinct identity

	g := core.NewSimpleGraph[*payload]()
	g.AddNode(a)
	g.AddNode(b)

	assert.Equal(t, 2, g.NodeCount())
	g.AddEdge(core.Simple[*payload]{From: a, To: b})
	assert.True(t, core.AreConnected[*payload, core.Simple[*payload]](g, a, b))
	assert.False(t, core.AreConnected[*payload, core.Simple[*payload]](g, b, a))
}
