// File: anomalies.go
// Role: The anomaly-implication relation and its two closures.
//
// Edge A→B reads "any history exhibiting A also exhibits B": the narrower
// phenomenon forces the broader family. The table is not transitively
// closed; closure is computed per query.
package consistency

import "github.com/adyalabs/adya/digraph"

// impliedAnomalies encodes the published implication facts:
//
//   - The Gn sub-phenomena (G1a aborted read, G1b intermediate read, G1c
//     circular information flow) each imply the composite G1.
//   - A -process variant implies both the plain variant's process-wide
//     family and the matching -realtime variant: each process is strictly
//     sequential, so a violation confined to one process is necessarily
//     observable in realtime order too.
//   - G-single (single-anti-dependency cycle) is a special case of both
//     G-nonadjacent and the snapshot-isolation read phenomenon G-SIb.
//   - G2-item is the item-scoped special case of G2. The predicate-scoped
//     counterpart is not modeled separately; the coarse tag is kept as
//     published.
//   - incompatible-order (divergent version orders for one key) and
//     dirty-update (a write observing uncommitted state) both surface as
//     the aborted-read family G1a.
var impliedAnomalies = digraph.Build(map[Anomaly][]Anomaly{
	"G0":                     {"G1c"},
	"G0-process":             {"G1c-process", "G0-realtime"},
	"G0-realtime":            {"G1c-realtime"},
	"G1a":                    {"G1"},
	"G1b":                    {"G1"},
	"G1c":                    {"G1"},
	"G1c-process":            {"G1-process", "G1c-realtime"},
	"G-single":               {"G-nonadjacent", "G-SIb"},
	"G-single-process":       {"G-nonadjacent-process", "G-single-realtime"},
	"G-single-realtime":      {"G-nonadjacent-realtime"},
	"G-nonadjacent":          {"G2"},
	"G-nonadjacent-process":  {"G2-process", "G-nonadjacent-realtime"},
	"G-nonadjacent-realtime": {"G2-realtime"},
	"G2-item":                {"G2"},
	"G2-item-process":        {"G2-process", "G2-item-realtime"},
	"G2-item-realtime":       {"G2-realtime"},
	"G2-process":             {"G2-realtime"},
	"G-SIa":                  {"G-SI"},
	"G-SIb":                  {"G-SI"},
	"incompatible-order":     {"G1a"},
	"dirty-update":           {"G1a"},
})

// AnomaliesImplying returns the given anomalies plus every anomaly whose
// presence would force at least one of them to be present (incoming-edge
// closure): the answer to "what else must the checker search for".
// Empty input yields an empty result. Unknown tags pass through inert.
func AnomaliesImplying(anomalies []Anomaly) []Anomaly {
	return impliedAnomalies.Reachable(anomalies, digraph.In)
}

// ImpliedAnomalies returns the given anomalies plus everything entailed
// once they are present (outgoing-edge closure). Empty input yields an
// empty result. Unknown tags pass through inert.
func ImpliedAnomalies(anomalies []Anomaly) []Anomaly {
	return impliedAnomalies.Reachable(anomalies, digraph.Out)
}

// AllAnomalies returns the full anomaly vocabulary, sorted: every vertex of
// the implication table plus the anomalies that appear only as proscription
// targets (internal, duplicate-elements, cyclic-versions, …). Callers
// wanting strict input validation can test membership here before querying.
func AllAnomalies() []Anomaly {
	return sortedSet(append(impliedAnomalies.Vertices(), proscribedAnomalies()...))
}
