// Package digraph is an embeddable toolbox for directed graphs — generic
// node/edge storage, the standard traversal and analysis algorithms, and a
// copy-on-write caching adjacency index.
//
// 🚀 What is digraph?
//
//	A modern, generics-based, dependency-light library that brings together:
//		• Core contracts: a minimal read interface plus a mutation interface,
//		  with every compound query derived from the primitives
//		• Traversals: lazy DFS and BFS sequences with full path recording
//		• Paths: reachability and unweighted shortest paths
//		• Components: strongly connected (Tarjan) and weakly connected
//		• Cycles: simple-cycle enumeration from a start node
//		• Topological sort: plain and deterministically tie-broken
//		• cached.Graph: an O(1)-copy, copy-on-write adjacency accelerator
//		  that wraps any mutable backing graph
//
// ✨ Why choose digraph?
//
//   - Bring your own types — any comparable node, any comparable edge
//   - Algorithms are written once against the read contract and run on
//     every implementation, cached or not
//   - Value-semantics snapshots — Clone() is O(1) until a copy mutates
//   - Pure Go — no cgo, no hidden deps
//
// Everything is organized under flat subpackages:
//
//	core/       — Graph and Mutable contracts, Simple edges, MapGraph backing
//	traverse/   — Visit path records, DFS, BFS, HasPath, ShortestPath
//	components/ — strongly and weakly connected components
//	cycles/     — simple-cycle enumeration
//	toposort/   — topological sort, plain and tie-broken
//	cached/     — the copy-on-write caching adjacency index
//	build/      — deterministic topology generators for tests and examples
//
// Quick ASCII example:
//
//	    1──▶2──▶3
//	         │   │
//	         ▼   ▼
//	         4──▶5
//
//	a five-node DAG; toposort.Sort places 1 first and 5 last, and
//	toposort.SortStableFunc with numeric ordering yields [1 2 3 4 5].
//
// Dive into the per-package documentation for contracts, complexity notes,
// and runnable examples.
//
//	go get github.com/katalvlaran/digraph
package digraph
