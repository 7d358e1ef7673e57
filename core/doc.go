// Package core defines the central graph contracts — the read-only Graph
// interface, the Mutable extension, and the Edge constraint — together with
// every compound operation that can be derived from the primitives, the
// Simple edge type, and the insertion-ordered MapGraph backing implementation.
//
// The contracts G = (V,E) are fully generic:
//
//   - N is any comparable node type. Value types (string, int, structs)
//     give value-identity graphs; pointer types give reference-identity
//     graphs, since == on pointers is object identity. The graph never
//     synthesizes node values — it only stores what callers pass in.
//   - E is any comparable edge type exposing Start() and End(). Simple[N]
//     is wholly identified by its endpoint pair, so at most one can exist
//     per ordered pair; caller-defined edge types with extra fields may
//     coexist in parallel between the same endpoints.
//
// Why interfaces plus free functions?
//
//   - Implementations supply only the seven primitive queries; AllEdges,
//     AreConnected, degree counts, subgraph extraction, redirects and the
//     rest are written once, here, against the contract.
//   - Every algorithm in the sibling packages (traverse, components,
//     cycles, toposort) therefore runs unchanged on MapGraph, on
//     cached.Graph, or on any conforming host implementation.
//
// Invariant: every edge's Start and End are members of the node set at all
// times. Structural misuse — adding an edge with absent endpoints, removing
// a non-member node or edge — is a caller bug and panics immediately with a
// "core:"-prefixed message. Idempotent by contract: AddNode of a present
// node and AddEdge of a present edge are no-ops (AddEdge returns the stored
// instance).
//
// MapGraph is the reference backing: node and edge sets with
// insertion-ordered enumeration and linear adjacency scans. It is the
// honest O(E) baseline that cached.Graph accelerates to O(1) amortized.
//
// Concurrency: none. All operations are plain single-threaded in-memory
// computations; wrap externally if you need cross-goroutine sharing.
package core
