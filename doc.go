// Package adya is the reasoning layer of a consistency checker: it encodes
// the published partial orders between transaction anomalies and consistency
// models, and answers "which guarantees are provably violated by these
// anomalies" and "which anomalies are provably absent under these
// guarantees".
//
// 🧭 What is adya?
//
//	A small, immutable library that brings together:
//		• digraph/     — generic build-once directed graphs with
//		                 bidirectional breadth-first reachability
//		• consistency/ — the anomaly-implication graph, the model strength
//		                 hierarchy, the canonical/friendly name registry,
//		                 the direct-proscription table, covering-set
//		                 reduction, and the boundary decomposition
//
// ✨ Why adya?
//
//   - Total functions only – unknown tags are inert, empty input stays
//     empty, nothing returns an error
//   - Deterministic – every result slice is sorted and deduplicated
//   - Safe to share – all tables are built once at init and never mutated,
//     so concurrent queries need no locking
//
// The name nods to Atul Adya, whose generalized isolation levels (PL-1
// through PL-3, PL-SI and friends) form the canonical vocabulary the
// registry maps onto.
//
// Quick taste:
//
//	b := consistency.FriendlyBoundary([]consistency.Anomaly{"G1a"})
//	// b.RuledOut     → [read-atomic read-committed]
//	// b.AlsoRuledOut → [… serializable snapshot-isolation strict-serializable …]
//
// Upstream detection of anomalies from recorded histories, and downstream
// rendering of reports, live outside this module; it consumes tag sets and
// produces tag sets.
package adya
