// Package toposort orders the nodes of a directed acyclic graph so that
// every edge's start precedes its end.
//
// Two variants are provided:
//
//   - Sort: the classic permanent/temporary-mark depth-first algorithm,
//     driven by an explicit frame stack (no recursion, so long chains are
//     safe). Completed nodes are prepended, yielding a valid order in one
//     pass. The order among independent nodes follows the backing graph's
//     node enumeration.
//   - SortStableFunc: Kahn's algorithm with a deterministic frontier — a
//     B-tree ordered by the caller's less function, ties broken by
//     insertion sequence. On a graph with no edges the result is exactly
//     the tie-break order.
//
// Both return ErrCycleDetected when the graph is cyclic; a cyclic input is
// a normal absence-of-order outcome, not a fault.
//
// Complexity: Sort is O(V + E); SortStableFunc is O(V·log V + E·log V).
package toposort
