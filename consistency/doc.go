// Package consistency encodes the published strength relationships between
// transactional / distributed consistency models and the anomalies that
// witness their violation, and answers closure queries over them.
//
// What
//
//   - A fixed anomaly-implication graph (Adya's G0/G1/G2 phenomena with
//     their per-process and realtime variants, plus snapshot-isolation and
//     version-order anomalies): edge A→B means any history exhibiting A
//     also exhibits B.
//   - A fixed model hierarchy (strict-serializable down to read-uncommitted,
//     the snapshot-isolation relatives, and the single-object chain
//     linearizable → sequential → causal → PRAM): edge A→B means any
//     history satisfying A also satisfies B.
//   - A fixed direct-proscription table: the anomalies each model forbids
//     beyond what its weaker implied models already forbid.
//   - A canonical/friendly name registry for models (e.g. "serializable" ↔
//     "PL-3"), total via identity on unregistered tags.
//   - Closure queries over all of the above, and the boundary decomposition
//     that splits the models ruled out by observed anomalies into the
//     weakest newly violated ones and the stronger ones violated by
//     implication.
//
// Why
//
//   - Checkers that find anomalies in a recorded history need to report
//     which guarantees a system provably lacks — and which it can still
//     claim — without every caller re-deriving the literature's lattice.
//
// Totality
//
//	Every function is pure and total: unknown tags behave as isolated
//	vertices rather than errors, and empty input always yields an empty
//	result, never the full vocabulary. Strict tag validation, when wanted,
//	belongs at the caller's boundary (check membership in AllModels or
//	AllAnomalies first).
//
// Determinism
//
//	All result slices are sorted and deduplicated, so identical queries
//	render identically.
//
// Safety
//
//	The tables are package-level immutable values built once at init;
//	concurrent readers need no locking.
//
// Sources
//
//	Adya, "Weak Consistency: A Generalized Theory and Optimistic
//	Implementations for Distributed Transactions" (1999);
//	Bailis et al., "Highly Available Transactions: Virtues and Limitations"
//	(2014); https://jepsen.io/consistency.
//
// Usage
//
//	b := consistency.FriendlyBoundary([]consistency.Anomaly{"G1a"})
//	// b.RuledOut:     the weakest models the history already violates
//	// b.AlsoRuledOut: the stronger models violated by implication
package consistency
