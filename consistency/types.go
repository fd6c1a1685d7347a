// File: types.go
// Role: Tag families and internal ordered-set helpers.
//
// Determinism:
//   - sortedSet() and subtract() return sorted, deduplicated slices; every
//     public query funnels its result through one of them or through
//     digraph's own sorted surfaces.
package consistency

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// Anomaly names a pattern of consistency violation observable in a recorded
// transaction history, e.g. "G1a" (aborted read) or "G-single".
// Tags outside the published vocabulary are legal and inert.
type Anomaly string

// Model names a consistency guarantee a datastore may provide, e.g.
// "serializable" or its canonical form "PL-3". Models form a strength
// partial order. Tags outside the published vocabulary are legal and inert.
type Model string

// sortedSet returns a sorted copy of in with duplicates removed.
func sortedSet[T constraints.Ordered](in []T) []T {
	out := slices.Clone(in)
	slices.Sort(out)
	return slices.Compact(out)
}

// subtract returns the sorted set of elements of a not present in b.
func subtract[T constraints.Ordered](a, b []T) []T {
	drop := make(map[T]struct{}, len(b))
	for _, x := range b {
		drop[x] = struct{}{}
	}
	out := make([]T, 0, len(a))
	for _, x := range a {
		if _, gone := drop[x]; !gone {
			out = append(out, x)
		}
	}
	return sortedSet(out)
}
