package consistency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adyalabs/adya/consistency"
)

func TestImpliedAnomalies_AbortedReadFamily(t *testing.T) {
	// G1a is a special case of the composite G1 and nothing further.
	got := consistency.ImpliedAnomalies([]consistency.Anomaly{"G1a"})
	require.Equal(t, []consistency.Anomaly{"G1", "G1a"}, got)
}

func TestImpliedAnomalies_ProcessVariantReachesRealtime(t *testing.T) {
	// A per-process write-cycle violation entails the per-process G1c family
	// and the realtime variants: each process is strictly sequential.
	got := consistency.ImpliedAnomalies([]consistency.Anomaly{"G0-process"})
	require.Subset(t, got, []consistency.Anomaly{
		"G0-process", "G1c-process", "G0-realtime", "G1c-realtime", "G1-process",
	})
	require.NotContains(t, got, consistency.Anomaly("G0"))
}

func TestImpliedAnomalies_VersionOrderAnomaliesSurfaceAsG1a(t *testing.T) {
	for _, a := range []consistency.Anomaly{"incompatible-order", "dirty-update"} {
		got := consistency.ImpliedAnomalies([]consistency.Anomaly{a})
		require.Subset(t, got, []consistency.Anomaly{"G1a", "G1"}, "%s must entail the aborted-read family", a)
	}
}

func TestImpliedAnomalies_SnapshotFamily(t *testing.T) {
	// G-single is a special case of both G-nonadjacent and G-SIb.
	got := consistency.ImpliedAnomalies([]consistency.Anomaly{"G-single"})
	require.Subset(t, got, []consistency.Anomaly{"G-single", "G-nonadjacent", "G-SIb", "G-SI", "G2"})
}

func TestAnomaliesImplying_ReverseClosure(t *testing.T) {
	// Everything that would force G1 into existence.
	got := consistency.AnomaliesImplying([]consistency.Anomaly{"G1"})
	require.Subset(t, got, []consistency.Anomaly{
		"G1", "G1a", "G1b", "G1c", "G0", "incompatible-order", "dirty-update",
	})
	// Nothing from the G2 side.
	require.NotContains(t, got, consistency.Anomaly("G2-item"))
}

func TestAnomalyClosures_EmptyInput(t *testing.T) {
	require.Empty(t, consistency.ImpliedAnomalies(nil))
	require.Empty(t, consistency.ImpliedAnomalies([]consistency.Anomaly{}))
	require.Empty(t, consistency.AnomaliesImplying(nil))
}

func TestAnomalyClosures_UnknownTagInert(t *testing.T) {
	got := consistency.ImpliedAnomalies([]consistency.Anomaly{"heisenbug"})
	require.Equal(t, []consistency.Anomaly{"heisenbug"}, got)
	got = consistency.AnomaliesImplying([]consistency.Anomaly{"heisenbug"})
	require.Equal(t, []consistency.Anomaly{"heisenbug"}, got)
}

func TestAllAnomalies_CoversBothTables(t *testing.T) {
	all := consistency.AllAnomalies()
	// From the implication table.
	require.Subset(t, all, []consistency.Anomaly{"G0", "G1a", "G2-item", "G-single", "dirty-update"})
	// Only ever proscription targets.
	require.Subset(t, all, []consistency.Anomaly{"internal", "duplicate-elements", "cyclic-versions", "G-cursor", "G-update"})
}
