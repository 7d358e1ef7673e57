// Package traverse provides depth-first and breadth-first walks over any
// core.Graph, with full path recording and unweighted path queries.
//
// DFS and BFS return lazy iter.Seq sequences of Visit elements. The range
// body is the visitor: breaking out of the loop stops the walk immediately
// (no further nodes are visited or queued), and ranging the sequence again
// restarts it from scratch. Each Visit carries an immutable backward-linked
// chain to the traversal root, so prefixes are shared across visits instead
// of copied.
//
// Key behaviors:
//   - A node reachable by multiple edges is visited once; later edges into
//     an already-visited node are dropped, so cycles terminate rather than
//     loop.
//   - Sibling order follows the backing graph's adjacency enumeration; DFS
//     pushes children in reverse so that, on ordered backings such as
//     core.MapGraph, first-enumerated children are visited first.
//   - Walking from a non-member start node is a caller bug and panics.
//
// Path queries derive directly from the walks: HasPath is a DFS that stops
// at the target; ShortestPath is a BFS whose first hit is guaranteed the
// minimum edge-count path, with ErrNoPath reporting normal absence. Among
// several shortest paths of equal length, the one BFS discovers first is
// returned; the tie-break is implementation-defined.
//
// Complexity: O(V + E) time per full walk, O(V) memory for the visited set
// and work list.
package traverse
