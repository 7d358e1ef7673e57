// Package build grows deterministic topologies inside any Simple-edged
// mutable graph: paths, cycles, stars, and complete digraphs. The
// generators are the workhorses of the module's tests, examples, and
// benchmarks, and work identically on core.MapGraph and cached.Graph
// targets.
//
// All generators add their nodes first (AddNode is idempotent, so existing
// nodes are reused) and then their edges, so they compose: build a path,
// then star extra leaves onto one of its nodes.
package build
