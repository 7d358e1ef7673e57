// Package cycles enumerates simple cycles reachable from a start node.
//
// From performs a depth-first walk recording the current path; whenever the
// next node already appears on that path, the walk records path+[node] as
// one cycle and stops descending that branch. This is a best-effort
// enumeration, exponential in the worst case by design — it lists the
// cycles the naive walk encounters, not a minimal cycle basis. On ordered
// backings the output is deterministic.
//
// Recursion depth is bounded by the longest simple path, i.e. the node
// count, since the walk never extends a path onto a node it already holds.
package cycles
