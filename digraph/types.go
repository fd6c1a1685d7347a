// Package digraph declares the Graph container and the Direction selector
// used by reachability queries.
package digraph

import "golang.org/x/exp/constraints"

// Direction selects which edges a reachability query follows.
type Direction uint8

const (
	// Out follows edges from source to target (successors).
	Out Direction = iota

	// In follows edges from target to source (predecessors).
	In
)

// String returns "out" or "in".
func (d Direction) String() string {
	if d == In {
		return "in"
	}
	return "out"
}

// Graph is an immutable directed graph over ordered vertices of type T.
//
// A Graph is only ever produced by Build or MapVertices and is never
// mutated afterwards; both adjacency maps hold an entry for every vertex,
// including isolated ones.
type Graph[T constraints.Ordered] struct {
	succ map[T]map[T]struct{} // vertex → outgoing neighbor set
	pred map[T]map[T]struct{} // vertex → incoming neighbor set
	size int                  // number of distinct edges
}
