// File: proscribe.go
// Role: The direct-proscription relation and the caller-facing queries:
// which anomalies a set of models certifies absent, which models a set of
// observed anomalies rules out, and the boundary decomposition of the
// latter.
//
// The table is deliberately non-redundant per model: each model lists only
// the anomalies it forbids beyond what its weaker implied models already
// forbid. Completeness is restored by composing with the hierarchy and
// implication closures, never by widening this table.
package consistency

import "github.com/adyalabs/adya/digraph"

// directProscribed is bipartite: every edge goes from a model to an anomaly
// it directly forbids. It is kept as one string-vertex graph so the reverse
// lookup (anomaly → proscribing models) is the same In-neighbor query as
// everywhere else. Model vertices are canonicalized with edge-union merge,
// so the serializable and PL-3 rows collapse onto one vertex.
var directProscribed = digraph.MapVertices(digraph.Build(map[string][]string{
	"causal-cerone":                     {"internal", "G1a"},
	"cursor-stability":                  {"G1", "G-cursor"},
	"monotonic-view":                    {"G1", "G-monotonic"},
	"monotonic-snapshot-read":           {"G1", "G-MSR"},
	"consistent-view":                   {"G1", "G-single"},
	"forward-consistent-view":           {"G1", "G-SIb"},
	"parallel-snapshot-isolation":       {"internal", "G1a"},
	"PL-3":                              {"G1", "G2"},
	"PL-2":                              {"G1"},
	"PL-1":                              {"G0", "duplicate-elements", "cyclic-versions"},
	"prefix":                            {"internal", "G1a"},
	"serializable":                      {"internal"},
	"snapshot-isolation":                {"internal", "G1", "G-SI"},
	"read-atomic":                       {"internal", "G1a"},
	"repeatable-read":                   {"G1", "G2-item"},
	"strict-serializable":               {"G1", "G1c-realtime", "G2-realtime"},
	"strong-session-snapshot-isolation": {"G-nonadjacent"},
	"strong-session-serializable":       {"G1c-process", "G2-process"},
	"update-serializable":               {"G1", "G-update"},
}), func(name string) string {
	// Only model vertices carry registered canonical forms; anomaly names
	// never collide with the registry, so they map to themselves.
	return string(CanonicalModel(Model(name)))
})

// proscribedAnomalies returns the anomaly side of the bipartite relation:
// exactly the vertices that appear as proscription targets.
func proscribedAnomalies() []Anomaly {
	var out []Anomaly
	for _, v := range directProscribed.Vertices() {
		if len(directProscribed.Neighbors(v, digraph.In)) > 0 {
			out = append(out, Anomaly(v))
		}
	}
	return out
}

// AnomaliesRuledOut returns every anomaly certified absent when all the
// given models hold: the models are canonicalized and expanded to their
// implied-model closure, the direct proscriptions of each are collected,
// and the result is widened with AnomaliesImplying — forbidding a broad
// anomaly family also certifies absent every special case whose presence
// would force membership in that family. Sorted; empty input or unknown
// models yield an empty result.
func AnomaliesRuledOut(ms []Model) []Anomaly {
	var direct []Anomaly
	for _, m := range ImpliedModels(ms) {
		for _, a := range directProscribed.Neighbors(string(m), digraph.Out) {
			direct = append(direct, Anomaly(a))
		}
	}
	return AnomaliesImplying(direct)
}

// ModelsRuledOut returns every model that cannot hold given the observed
// anomalies: the anomalies are expanded with ImpliedAnomalies (observing a
// special case certifies every broader family it belongs to), each entailed
// anomaly is mapped back to the models directly proscribing it, and that
// set is expanded with ImpossibleModels. Canonical names, sorted; empty
// input or unknown anomalies yield an empty result.
func ModelsRuledOut(anomalies []Anomaly) []Model {
	var proscribers []Model
	for _, a := range ImpliedAnomalies(anomalies) {
		for _, m := range directProscribed.Neighbors(string(a), digraph.In) {
			proscribers = append(proscribers, Model(m))
		}
	}
	return ImpossibleModels(proscribers)
}

// Boundary partitions the models ruled out by a set of observed anomalies:
// RuledOut holds the weakest newly violated models ("the system is not even
// X"), AlsoRuledOut the remaining strictly stronger models violated by
// implication ("and therefore also not Y, Z"). The two sets are disjoint
// and together equal ModelsRuledOut for the same input.
type Boundary struct {
	RuledOut     []Model
	AlsoRuledOut []Model
}

// BoundaryOf computes the boundary decomposition in canonical names.
func BoundaryOf(anomalies []Anomaly) Boundary {
	impossible := ModelsRuledOut(anomalies)
	weakest := mostExtreme(digraph.Out, impossible)
	return Boundary{
		RuledOut:     weakest,
		AlsoRuledOut: subtract(impossible, weakest),
	}
}

// FriendlyBoundary is BoundaryOf rendered through the friendly-name
// registry; identical semantics, report-ready spellings.
func FriendlyBoundary(anomalies []Anomaly) Boundary {
	b := BoundaryOf(anomalies)
	return Boundary{
		RuledOut:     friendlyModels(b.RuledOut),
		AlsoRuledOut: friendlyModels(b.AlsoRuledOut),
	}
}
