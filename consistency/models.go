// File: models.go
// Role: The consistency-model strength hierarchy and its closures.
//
// Edge A→B reads "any history satisfying A also satisfies B": edges always
// point from the strictly stronger model to the weaker one. The graph is
// built over raw literature names and then canonicalized with an explicit
// edge-union merge, so synonyms such as serializable / conflict-serializable
// collapse onto one PL-3 vertex without losing edges.
package consistency

import "github.com/adyalabs/adya/digraph"

// models is the strength hierarchy. Transactional sources: Adya's PL-*
// lattice and the snapshot-isolation relatives; single-object and session
// sources: the linearizable → sequential → causal → PRAM decomposition.
// See https://jepsen.io/consistency for the assembled map.
var models = digraph.MapVertices(digraph.Build(map[Model][]Model{
	"causal-cerone":                     {"read-atomic"},
	"consistent-view":                   {"cursor-stability", "monotonic-view"},
	"conflict-serializable":             {"view-serializable"},
	"cursor-stability":                  {"read-committed", "PL-2"},
	"forward-consistent-view":           {"consistent-view", "PL-1"},
	"PL-3":                              {"repeatable-read", "update-serializable"},
	"update-serializable":               {"forward-consistent-view"},
	"monotonic-atomic-view":             {"read-committed"},
	"monotonic-view":                    {"PL-2"},
	"monotonic-snapshot-read":           {"PL-2"},
	"parallel-snapshot-isolation":       {"causal-cerone"},
	"prefix":                            {"causal-cerone"},
	"read-committed":                    {"read-uncommitted"},
	"repeatable-read":                   {"cursor-stability", "monotonic-atomic-view"},
	"serializable":                      {"repeatable-read", "snapshot-isolation", "view-serializable"},
	"session-serializable":              {"1SR"},
	"snapshot-isolation":                {"forward-consistent-view", "monotonic-atomic-view", "monotonic-snapshot-read", "parallel-snapshot-isolation", "prefix"},
	"strict-serializable":               {"PL-3", "serializable", "linearizable", "snapshot-isolation", "strong-session-serializable"},
	"strong-serializable":               {"session-serializable"},
	"strong-session-serializable":       {"serializable"},
	"strong-session-snapshot-isolation": {"snapshot-isolation"},
	"strong-snapshot-isolation":         {"strong-session-snapshot-isolation"},
	"linearizable":                      {"sequential"},
	"sequential":                        {"causal"},
	"causal":                            {"writes-follow-reads", "PRAM"},
	"PRAM":                              {"monotonic-reads", "monotonic-writes", "read-your-writes"},
}), CanonicalModel)

// ImpliedModels expands the given models to every model they guarantee
// (outgoing closure over the hierarchy). Inputs are canonicalized; results
// are canonical, sorted. Empty input yields an empty result.
func ImpliedModels(ms []Model) []Model {
	return models.Reachable(canonicalModels(ms), digraph.Out)
}

// ImpossibleModels expands a set of models known impossible to every model
// that is thereby also impossible (incoming closure): if X guarantees Y and
// Y cannot hold, X cannot hold either. Inputs are canonicalized; results
// are canonical, sorted. Empty input yields an empty result.
func ImpossibleModels(impossible []Model) []Model {
	return models.Reachable(canonicalModels(impossible), digraph.In)
}

// PossibleModels returns every known model not present in impossible.
// No closure is applied: callers pass the already-closed impossible set
// from ImpossibleModels or ModelsRuledOut. Result is canonical, sorted.
func PossibleModels(impossible []Model) []Model {
	return subtract(AllModels(), canonicalModels(impossible))
}

// AllModels returns the full canonical model vocabulary of the hierarchy,
// sorted. Callers wanting strict input validation can test membership here
// before querying.
func AllModels() []Model {
	return models.Vertices()
}
