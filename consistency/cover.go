// File: cover.go
// Role: Covering-set reduction over the model hierarchy (antichain
// extraction): report "serializable", not "serializable and everything it
// implies".
package consistency

import (
	"slices"

	"github.com/adyalabs/adya/digraph"
)

// mostExtreme reduces ms to the minimal subset whose closure in dir covers
// the rest: an element is dropped when some other element still retained
// lies within its closure in the given direction. A single left-to-right
// pass re-testing against the current working set suffices — the hierarchy
// is a partial order, so removal order cannot change the fixed point.
// Works in canonical names; empty and singleton inputs pass through.
func mostExtreme(dir digraph.Direction, ms []Model) []Model {
	working := sortedSet(canonicalModels(ms))
	retained := slices.Clone(working)
	for _, m := range working {
		closure := models.Reachable([]Model{m}, dir)
		for _, other := range retained {
			if other != m && slices.Contains(closure, other) {
				retained = subtract(retained, []Model{m})
				break
			}
		}
	}
	return retained
}

// StrongestModels reduces ms to a minimal set of strongest models whose
// downstream (implied-model) closure covers the whole input: m is dropped
// when a strictly stronger input model already implies it. Elements with no
// ordering relation between them are all retained; unknown tags are inert
// and survive. Results render through the friendly registry, sorted.
func StrongestModels(ms []Model) []Model {
	return friendlyModels(mostExtreme(digraph.In, ms))
}

// WeakestModels reduces ms to a minimal set of weakest models whose
// upstream closure covers the whole input: m is dropped when it implies
// some other input model. Same retention rules as StrongestModels.
// Results render through the friendly registry, sorted.
func WeakestModels(ms []Model) []Model {
	return friendlyModels(mostExtreme(digraph.Out, ms))
}
