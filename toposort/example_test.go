package toposort_test

import (
	"fmt"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/toposort"
)

// ExampleSortStableFunc orders build targets: dependencies first, ties
// resolved alphabetically.
func ExampleSortStableFunc() {
	g := core.NewSimpleGraph[string]()
	core.AddNodes[string, core.Simple[string]](g, "app", "liba", "libb", "runtime")
	g.AddEdge(core.Simple[string]{From: "runtime", To: "liba"})
	g.AddEdge(core.Simple[string]{From: "runtime", To: "libb"})
	g.AddEdge(core.Simple[string]{From: "liba", To: "app"})
	g.AddEdge(core.Simple[string]{From: "libb", To: "app"})

	order, err := toposort.SortStableFunc[string, core.Simple[string]](g, func(a, b string) bool { return a < b })
	fmt.Println(order, err)
	// Output:
	// [runtime liba libb app] <nil>
}
