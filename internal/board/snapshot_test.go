package board

import (
	"testing"

	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCards() []domain.Opportunity {
	return []domain.Opportunity{
		{ID: "a", Name: "Acme", StageID: "new", Value: 1000, Probability: 20},
		{ID: "b", Name: "Beta", StageID: "new", Value: 2000, Probability: 50},
		{ID: "c", Name: "Gamma", StageID: "proposal", Value: 500, Probability: 80},
	}
}

func ids(cards []domain.Opportunity) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestSnapshotAdoptReplacesWholesale(t *testing.T) {
	snap := NewSnapshot(testCards())
	require.Equal(t, 3, snap.Len())

	snap.Adopt([]domain.Opportunity{{ID: "z", StageID: "won", Value: 10}})
	require.Equal(t, 1, snap.Len())
	_, ok := snap.Find("a")
	assert.False(t, ok)
}

func TestSnapshotTotals(t *testing.T) {
	snap := NewSnapshot(testCards())

	newTotals := snap.Totals("new")
	assert.Equal(t, 2, newTotals.Count)
	assert.InDelta(t, 3000.0, newTotals.Value, 0.001)
	assert.InDelta(t, 1200.0, newTotals.Weighted, 0.001) // 1000*0.2 + 2000*0.5

	empty := snap.Totals("won")
	assert.Zero(t, empty.Count)
	assert.Zero(t, empty.Value)
}

func TestSnapshotTotalsReflectSpeculativeState(t *testing.T) {
	snap := NewSnapshot(testCards())

	require.NoError(t, snap.MoveToStageEnd("a", "proposal"))

	assert.Equal(t, 1, snap.Totals("new").Count)
	assert.Equal(t, 2, snap.Totals("proposal").Count)
	assert.InDelta(t, 1500.0, snap.Totals("proposal").Value, 0.001)
}

func TestSnapshotMoveToStageEnd(t *testing.T) {
	snap := NewSnapshot(testCards())

	require.NoError(t, snap.MoveToStageEnd("a", "proposal"))

	got, ok := snap.Find("a")
	require.True(t, ok)
	assert.Equal(t, "proposal", got.StageID)
	assert.Equal(t, []string{"c", "a"}, ids(snap.CardsInStage("proposal")))

	require.ErrorIs(t, snap.MoveToStageEnd("missing", "won"), domain.ErrOpportunityNotFound)
}

func TestSnapshotInsertBefore(t *testing.T) {
	snap := NewSnapshot(testCards())

	// Move c in front of a: c joins "new" at a's slot.
	require.NoError(t, snap.InsertBefore("c", "a"))

	got, ok := snap.Find("c")
	require.True(t, ok)
	assert.Equal(t, "new", got.StageID)
	assert.Equal(t, []string{"c", "a", "b"}, ids(snap.CardsInStage("new")))
	assert.Empty(t, snap.CardsInStage("proposal"))
}

func TestSnapshotInsertBeforeSelfIsNoop(t *testing.T) {
	snap := NewSnapshot(testCards())
	require.NoError(t, snap.InsertBefore("a", "a"))
	assert.Equal(t, []string{"a", "b", "c"}, ids(snap.Cards()))
}

func TestSnapshotReorderWithinStage(t *testing.T) {
	snap := NewSnapshot(testCards())

	// Reorder b before a inside "new".
	require.NoError(t, snap.InsertBefore("b", "a"))
	assert.Equal(t, []string{"b", "a"}, ids(snap.CardsInStage("new")))
}

func TestSnapshotInsertAtStageIndex(t *testing.T) {
	snap := NewSnapshot(testCards())

	// Send c into "new" at position 1 (between a and b).
	require.NoError(t, snap.InsertAtStageIndex("c", "new", 1))
	assert.Equal(t, []string{"a", "c", "b"}, ids(snap.CardsInStage("new")))

	// Out-of-range index clamps to the end of the stage.
	require.NoError(t, snap.InsertAtStageIndex("a", "proposal", 99))
	assert.Equal(t, []string{"a"}, ids(snap.CardsInStage("proposal")))
}

func TestSnapshotStageIndexOf(t *testing.T) {
	snap := NewSnapshot(testCards())

	assert.Equal(t, 0, snap.StageIndexOf("a"))
	assert.Equal(t, 1, snap.StageIndexOf("b"))
	assert.Equal(t, 0, snap.StageIndexOf("c"))
	assert.Equal(t, -1, snap.StageIndexOf("missing"))
}

func TestSnapshotUnassignedBucket(t *testing.T) {
	cards := testCards()
	cards = append(cards, domain.Opportunity{ID: "d", Name: "Orphan", StageID: "deleted-stage", Value: 50})
	snap := NewSnapshot(cards)

	stages := []domain.Stage{{ID: "new"}, {ID: "proposal"}, {ID: "won"}}
	orphans := snap.Unassigned(stages)
	require.Len(t, orphans, 1)
	assert.Equal(t, "d", orphans[0].ID)
}

func TestSnapshotReplace(t *testing.T) {
	snap := NewSnapshot(testCards())

	normalized := domain.Opportunity{ID: "a", Name: "Acme", StageID: "proposal", Value: 1000, Probability: 100}
	require.NoError(t, snap.Replace(normalized))

	got, ok := snap.Find("a")
	require.True(t, ok)
	assert.Equal(t, normalized, got)
	assert.Equal(t, []string{"a", "b", "c"}, ids(snap.Cards()), "position is preserved")

	err := snap.Replace(domain.Opportunity{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrOpportunityNotFound)
}
