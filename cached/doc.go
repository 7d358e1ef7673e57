// Package cached provides a caching adjacency index with copy-on-write
// value semantics around any core.Mutable backing graph.
//
// The wrapper maintains, for every node, the list of edges leaving it and
// the list of edges entering it, updated incrementally by every mutation —
// never recomputed lazily. Degree and adjacency queries are answered
// straight from these lists in O(1) amortized time instead of the O(E)
// scans a plain backing performs, which is the entire reason this package
// exists. The index is an accelerator, not a source of truth: its contents
// are always exactly the partition of the edge set by endpoint, and every
// mutation path keeps it so.
//
// Copy-on-write: all state lives in a single reference-counted cache
// record. Clone is O(1) — it shares the record. Before mutating, a wrapper
// checks whether it is the record's sole referent; if not, it first
// deep-clones the record (backing graph plus both adjacency maps) and
// mutates the private clone. Mutating one copy therefore never changes
// another copy's observable state, while unshared graphs pay no cloning
// cost. This makes cheap logical snapshots for single-threaded callers; it
// is NOT safe for concurrent mutation — the uniqueness check and the
// clone-then-mutate sequence are not atomic across goroutines, so
// cross-goroutine sharing needs external synchronization.
//
// cached.Graph itself satisfies core.Mutable, so every derived operation
// and algorithm in this module runs on it unchanged.
package cached
