// File: digraph.go
// Role: Construction, vertex renaming, and reachability queries.
//
// Determinism:
//   - Vertices(), Neighbors() and Reachable() return sorted, deduplicated slices.
package digraph

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Build constructs a Graph from an adjacency literal.
// Every key and every listed target becomes a vertex; every (key, target)
// pair becomes an edge. Duplicate pairs collapse to one edge. There are no
// error conditions: an empty or nil mapping yields an empty graph.
// Complexity: O(V + E)
func Build[T constraints.Ordered](adj map[T][]T) *Graph[T] {
	g := &Graph[T]{
		succ: make(map[T]map[T]struct{}, len(adj)),
		pred: make(map[T]map[T]struct{}, len(adj)),
	}
	for from, targets := range adj {
		g.ensure(from)
		for _, to := range targets {
			g.ensure(to)
			g.addEdge(from, to)
		}
	}
	return g
}

// MapVertices renames every vertex of g through f, returning a new graph.
// When two or more vertices map to the same image, their outgoing and
// incoming edge sets are unioned onto the single resulting vertex, so no
// edge is lost and none is duplicated. g is left untouched.
// Complexity: O(V + E)
func MapVertices[T, U constraints.Ordered](g *Graph[T], f func(T) U) *Graph[U] {
	m := &Graph[U]{
		succ: make(map[U]map[U]struct{}, len(g.succ)),
		pred: make(map[U]map[U]struct{}, len(g.pred)),
	}
	// Vertices first, so isolated vertices survive the rename.
	for v := range g.succ {
		m.ensure(f(v))
	}
	// Explicit edge-union merge: adding an edge that already exists on the
	// merged vertex is a no-op, which is exactly the union semantics.
	for from, targets := range g.succ {
		mf := f(from)
		for to := range targets {
			m.addEdge(mf, f(to))
		}
	}
	return m
}

// Vertices returns every vertex, sorted ascending.
// Complexity: O(V log V)
func (g *Graph[T]) Vertices() []T {
	out := make([]T, 0, len(g.succ))
	for v := range g.succ {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// HasVertex reports whether v is a vertex of g.
// Complexity: O(1)
func (g *Graph[T]) HasVertex(v T) bool {
	_, ok := g.succ[v]
	return ok
}

// Neighbors returns the direct successors (Out) or predecessors (In) of v,
// sorted ascending. A vertex absent from g has no neighbors.
// Complexity: O(deg(v) log deg(v))
func (g *Graph[T]) Neighbors(v T, dir Direction) []T {
	adj := g.succ
	if dir == In {
		adj = g.pred
	}
	set, ok := adj[v]
	if !ok {
		return nil
	}
	out := make([]T, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Reachable runs a breadth-first search from every seed simultaneously,
// following outgoing edges (Out) or incoming edges (In), and returns the
// seeds themselves plus every vertex reachable by one or more hops, sorted
// and deduplicated.
//
// Seeds absent from g behave as isolated vertices: they appear in the
// result and contribute nothing else. Empty seeds yield an empty result,
// never the full vertex set. A visited set guarantees termination on
// cyclic graphs.
// Complexity: O(V + E) time, O(V) memory, plus sorting
func (g *Graph[T]) Reachable(seeds []T, dir Direction) []T {
	adj := g.succ
	if dir == In {
		adj = g.pred
	}

	visited := make(map[T]struct{}, len(seeds))
	queue := make([]T, 0, len(seeds))
	for _, s := range seeds {
		if _, seen := visited[s]; seen {
			continue
		}
		visited[s] = struct{}{}
		queue = append(queue, s)
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for next := range adj[cur] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	out := make([]T, 0, len(visited))
	for v := range visited {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Order returns the number of vertices.
// Complexity: O(1)
func (g *Graph[T]) Order() int { return len(g.succ) }

// Size returns the number of distinct edges.
// Complexity: O(1)
func (g *Graph[T]) Size() int { return g.size }

// ensure bootstraps both adjacency entries for v.
func (g *Graph[T]) ensure(v T) {
	if _, ok := g.succ[v]; ok {
		return
	}
	g.succ[v] = make(map[T]struct{})
	g.pred[v] = make(map[T]struct{})
}

// addEdge records from→to in both adjacency maps; idempotent.
// Both endpoints must already be ensured.
func (g *Graph[T]) addEdge(from, to T) {
	if _, ok := g.succ[from][to]; ok {
		return
	}
	g.succ[from][to] = struct{}{}
	g.pred[to][from] = struct{}{}
	g.size++
}
