package core

import "fmt"

// Simple is an edge wholly identified by its endpoint pair: two Simple
// values are equal exactly when their From and To match, so a graph of
// Simple edges holds at most one edge per ordered pair. Self-loops
// (From == To) are permitted.
//
// Edge types that need parallel edges between the same endpoints should
// define their own struct with extra identity fields and Start/End methods.
type Simple[N comparable] struct {
	From N
	To   N
}

// Start returns the node the edge leaves.
func (e Simple[N]) Start() N { return e.From }

// End returns the node the edge enters.
func (e Simple[N]) End() N { return e.To }

// String renders the edge as "from→to" for diagnostics.
func (e Simple[N]) String() string { return fmt.Sprintf("%v→%v", e.From, e.To) }
