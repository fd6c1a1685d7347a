// Package digraph provides a small, immutable, generic directed graph:
// build once from an adjacency literal, then query reachability in either
// edge direction.
//
// What
//
//   - Build a Graph[T] from a map of vertex → ordered successors.
//     Every key and every listed target becomes a vertex; every (key, target)
//     pair becomes an edge. Empty input yields an empty graph.
//   - MapVertices renames every vertex through a function; vertices that
//     collapse to the same image have their incoming and outgoing edges
//     unioned onto the single resulting vertex (no edge loss, no duplicates).
//   - Reachable runs a multi-seed breadth-first search following successor
//     (Out) or predecessor (In) edges, returning the seeds plus everything
//     reachable from them. Empty seeds yield an empty result, never the full
//     vertex set.
//   - Vertices, Neighbors, HasVertex, Order and Size expose the structure.
//
// Why
//
//   - Closure computations over small static relations (strength hierarchies,
//     implication tables) need exactly this surface and nothing more: no
//     mutation after construction, no weights, no per-edge identity.
//
// Determinism
//
//	Vertices, Neighbors and Reachable return sorted, deduplicated slices,
//	so every query over the same graph is fully reproducible.
//
// Termination
//
//	Reachable tracks a visited set, so it terminates on cyclic graphs.
//
// Safety
//
//	A Graph is never mutated after Build or MapVertices returns; it may be
//	shared freely across goroutines without locking.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Build:        O(V + E)
//   - MapVertices:  O(V + E)
//   - Reachable:    O(V + E) time, O(V) memory, plus O(V log V) for sorting
//   - Vertices:     O(V log V)
//
// Usage
//
//	g := digraph.Build(map[string][]string{
//	    "strong": {"weak", "weaker"},
//	    "weak":   {"weaker"},
//	})
//	down := g.Reachable([]string{"strong"}, digraph.Out) // [strong weak weaker]
//	up := g.Reachable([]string{"weaker"}, digraph.In)    // [strong weak weaker]
package digraph
