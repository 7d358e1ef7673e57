package cached_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/cached"
	"github.com/katalvlaran/digraph/core"
)

// ExampleGraph_Clone shows copy-on-write value semantics: the clone costs
// O(1) and the two handles diverge only when one of them mutates.
func ExampleGraph_Clone() {
	g := cached.NewSimple[string]()
	g.AddNode("base")

	snapshot := g.Clone()
	g.AddNode("extra")

	fmt.Println(g.Nodes())
	fmt.Println(snapshot.Nodes())
	// Output:
	// [base extra]
	// [base]
}

// ExampleGraph_OutDegree shows the O(1) degree reads served by the index.
func ExampleGraph_OutDegree() {
	g := cached.NewSimple[string]()
	for _, n := range []string{"hub", "a", "b", "c"} {
		g.AddNode(n)
	}
	for _, leaf := range []string{"a", "b", "c"} {
		g.AddEdge(core.Simple[string]{From: "hub", To: leaf})
	}

	fmt.Println(g.OutDegree("hub"), g.InDegree("a"))
	// Output:
	// 3 1
}
