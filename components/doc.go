// Package components partitions the nodes of a directed graph into
// connected components.
//
// Strong computes strongly connected components with Tarjan's
// index/low-link algorithm, driven by an explicit frame stack rather than
// recursion so that long chains cannot overflow the goroutine stack.
// Components are emitted in the order their low-link closes, which is the
// reverse topological order of the SCC-condensation DAG; isolated nodes
// form singleton components.
//
// Weak treats every edge as bidirectional and collects reachability
// classes by repeated breadth-first sweeps; the result partitions the node
// set exactly.
//
// Complexity: O(V + E) time and O(V) memory for both.
package components
