// File: names.go
// Role: Canonical ↔ friendly model-name registry.
//
// Determinism:
//   - The inverse (friendly) table is materialized once over sorted keys,
//     so inversion never depends on map iteration order.
package consistency

import (
	"slices"

	"golang.org/x/exp/maps"
)

// plSerializable is the canonical top of the serializability family; it is
// rendered with the short name rather than its Adya-style code.
const plSerializable Model = "PL-3"

// canonicalModelNames maps each friendly literature synonym to the single
// canonical representative of its model. Several entries share a canonical
// form: conflict-serializable and serializable are both PL-3.
var canonicalModelNames = map[Model]Model{
	"consistent-view":         "PL-2+",
	"conflict-serializable":   "PL-3",
	"cursor-stability":        "PL-CS",
	"forward-consistent-view": "PL-FCV",
	"monotonic-snapshot-read": "PL-MSR",
	"monotonic-view":          "PL-2L",
	"read-committed":          "PL-2",
	"read-uncommitted":        "PL-1",
	"repeatable-read":         "PL-2.99",
	"serializable":            "PL-3",
	"snapshot-isolation":      "PL-SI",
	"strict-serializable":     "PL-SS",
	"update-serializable":     "PL-3U",
}

// friendlyModelNames inverts canonicalModelNames deterministically: friendly
// synonyms are visited in sorted order, the first to claim a canonical form
// wins, and the serializability top is pinned to "serializable" explicitly.
var friendlyModelNames = func() map[Model]Model {
	inv := make(map[Model]Model, len(canonicalModelNames))
	friendly := maps.Keys(canonicalModelNames)
	slices.Sort(friendly)
	for _, f := range friendly {
		c := canonicalModelNames[f]
		if _, claimed := inv[c]; !claimed {
			inv[c] = f
		}
	}
	inv[plSerializable] = "serializable"
	return inv
}()

// CanonicalModel maps a friendly model name to its canonical literature
// form; names with no registered canonical form return unchanged. Pure and
// total; idempotent on canonical forms.
func CanonicalModel(m Model) Model {
	if c, ok := canonicalModelNames[m]; ok {
		return c
	}
	return m
}

// FriendlyModel maps a canonical model name to its friendliest known
// synonym; names with no registered synonym return unchanged. Pure and
// total. The canonical serializability top renders as "serializable".
func FriendlyModel(m Model) Model {
	if f, ok := friendlyModelNames[m]; ok {
		return f
	}
	return m
}

// canonicalModels maps CanonicalModel over ms (order preserved, no dedupe;
// callers funnel through Reachable or sortedSet).
func canonicalModels(ms []Model) []Model {
	out := make([]Model, len(ms))
	for i, m := range ms {
		out[i] = CanonicalModel(m)
	}
	return out
}

// friendlyModels maps FriendlyModel over ms and normalizes the result.
func friendlyModels(ms []Model) []Model {
	out := make([]Model, len(ms))
	for i, m := range ms {
		out[i] = FriendlyModel(m)
	}
	return sortedSet(out)
}
