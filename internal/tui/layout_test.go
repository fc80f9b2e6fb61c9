package tui

import (
	"testing"

	"github.com/pipeboard/pipeboard/internal/board"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStages() []domain.Stage {
	return []domain.Stage{
		{ID: "new", Title: "New", Category: domain.CategoryOpen},
		{ID: "proposal", Title: "Proposal", Category: domain.CategoryActive},
		{ID: "won", Title: "Won", Category: domain.CategoryWon},
	}
}

func testSnapshot() *board.Snapshot {
	return board.NewSnapshot([]domain.Opportunity{
		{ID: "A", Name: "Deal A", StageID: "new", Value: 1000},
		{ID: "B", Name: "Deal B", StageID: "proposal", Value: 500},
		{ID: "C", Name: "Deal C", StageID: "proposal", Value: 250},
	})
}

func TestLayout_ColumnAt(t *testing.T) {
	// 120 wide, 3 columns: width 38, span 40.
	lay := newLayout(testStages(), 120)
	require.Equal(t, 38, lay.colWidth)

	tests := []struct {
		name string
		x    int
		want int
	}{
		{name: "first column left edge", x: 0, want: 0},
		{name: "first column right edge", x: 37, want: 0},
		{name: "gap", x: 38, want: -1},
		{name: "second column", x: 40, want: 1},
		{name: "third column", x: 85, want: 2},
		{name: "past last column", x: 130, want: -1},
		{name: "negative", x: -1, want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lay.columnAt(tt.x))
		})
	}
}

func TestLayout_CardSlotAt(t *testing.T) {
	lay := newLayout(testStages(), 120)

	assert.Equal(t, -1, lay.cardSlotAt(0), "board header")
	assert.Equal(t, -1, lay.cardSlotAt(3), "column header")
	assert.Equal(t, 0, lay.cardSlotAt(4))
	assert.Equal(t, 0, lay.cardSlotAt(5), "second row of the first card")
	assert.Equal(t, 1, lay.cardSlotAt(6))
}

func TestLayout_Target(t *testing.T) {
	lay := newLayout(testStages(), 120)
	snap := testSnapshot()

	tests := []struct {
		name string
		x    int
		y    int
		want board.DropTarget
	}{
		{name: "over a card", x: 41, y: 4, want: board.CardTarget("B")},
		{name: "second card in column", x: 41, y: 6, want: board.CardTarget("C")},
		{name: "below last card", x: 41, y: 10, want: board.ColumnTarget("proposal")},
		{name: "column header", x: 41, y: 2, want: board.ColumnTarget("proposal")},
		{name: "empty column", x: 85, y: 4, want: board.ColumnTarget("won")},
		{name: "gap between columns", x: 38, y: 4, want: board.NoTarget()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lay.target(snap, tt.x, tt.y))
		})
	}
}

func TestLayout_CardAt(t *testing.T) {
	lay := newLayout(testStages(), 120)
	snap := testSnapshot()

	card, ok := lay.cardAt(snap, 2, 5)
	require.True(t, ok)
	assert.Equal(t, "A", card.ID)

	_, ok = lay.cardAt(snap, 2, 6)
	assert.False(t, ok, "no second card in the first column")

	_, ok = lay.cardAt(snap, 2, 1)
	assert.False(t, ok, "header rows hold no cards")
}

func TestLayout_MinColumnWidth(t *testing.T) {
	lay := newLayout(testStages(), 20)
	assert.Equal(t, minColumnWidth, lay.colWidth)
}

func TestLayout_FallbackColumnCards(t *testing.T) {
	stages := append(testStages(), domain.UnassignedStage())
	lay := newLayout(stages, 120)
	snap := board.NewSnapshot([]domain.Opportunity{
		{ID: "A", Name: "Deal A", StageID: "new", Value: 1000},
		{ID: "X", Name: "Orphan", StageID: "gone", Value: 100},
	})

	cards := lay.cardsFor(snap, domain.UnassignedStage())
	require.Len(t, cards, 1)
	assert.Equal(t, "X", cards[0].ID)
}
