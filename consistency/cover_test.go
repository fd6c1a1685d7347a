package consistency_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adyalabs/adya/consistency"
)

func TestStrongestModels_DropsImplied(t *testing.T) {
	got := consistency.StrongestModels([]consistency.Model{"serializable", "strict-serializable"})
	require.Equal(t, []consistency.Model{"strict-serializable"}, got)
}

func TestWeakestModels_DropsImplying(t *testing.T) {
	got := consistency.WeakestModels([]consistency.Model{"serializable", "strict-serializable"})
	require.Equal(t, []consistency.Model{"serializable"}, got)
}

func TestCover_ChainCollapsesToEndpoint(t *testing.T) {
	chain := []consistency.Model{"read-uncommitted", "read-committed", "repeatable-read", "serializable"}
	require.Equal(t, []consistency.Model{"serializable"}, consistency.StrongestModels(chain))
	require.Equal(t, []consistency.Model{"read-uncommitted"}, consistency.WeakestModels(chain))
}

func TestCover_IncomparableElementsAllRetained(t *testing.T) {
	// Snapshot isolation and repeatable read are incomparable; linearizable
	// sits in a different family entirely.
	in := []consistency.Model{"snapshot-isolation", "repeatable-read", "linearizable"}
	require.Equal(t,
		[]consistency.Model{"linearizable", "repeatable-read", "snapshot-isolation"},
		consistency.StrongestModels(in))
	require.Equal(t,
		[]consistency.Model{"linearizable", "repeatable-read", "snapshot-isolation"},
		consistency.WeakestModels(in))
}

func TestCover_EmptyAndSingleton(t *testing.T) {
	require.Empty(t, consistency.StrongestModels(nil))
	require.Empty(t, consistency.WeakestModels(nil))
	require.Equal(t, []consistency.Model{"causal"}, consistency.StrongestModels([]consistency.Model{"causal"}))
	require.Equal(t, []consistency.Model{"causal"}, consistency.WeakestModels([]consistency.Model{"causal"}))
}

func TestCover_SynonymsCollapseFirst(t *testing.T) {
	// Both spellings of serializability reduce to the one canonical vertex,
	// rendered with the friendly short name.
	got := consistency.StrongestModels([]consistency.Model{"serializable", "conflict-serializable", "PL-3"})
	require.Equal(t, []consistency.Model{"serializable"}, got)
}

func TestCover_UnknownTagsRetained(t *testing.T) {
	got := consistency.WeakestModels([]consistency.Model{"serializable", "vaporware-consistency"})
	require.Equal(t, []consistency.Model{"serializable", "vaporware-consistency"}, got)
}
