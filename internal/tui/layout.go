package tui

import (
	"github.com/pipeboard/pipeboard/internal/board"
	"github.com/pipeboard/pipeboard/internal/domain"
)

// Board geometry. The view renders with these constants and the hit
// test inverts them, so pointer coordinates and rendered cells agree.
const (
	boardTop       = 2 // Header line + blank line above the columns
	headerRows     = 2 // Column title row + totals row
	cardRows       = 2 // Card name row + meta row
	columnGap      = 2
	minColumnWidth = 16
)

// layout holds the computed board geometry for one render.
type layout struct {
	stages   []domain.Stage // Visible columns, including the fallback bucket
	colWidth int
}

// newLayout computes column geometry for the given terminal width.
func newLayout(stages []domain.Stage, width int) layout {
	l := layout{stages: stages}
	if len(stages) == 0 {
		return l
	}
	w := (width - columnGap*(len(stages)-1)) / len(stages)
	if w < minColumnWidth {
		w = minColumnWidth
	}
	l.colWidth = w
	return l
}

// columnAt returns the index of the column containing x, or -1 for the
// gaps between columns and the space past the last column.
func (l layout) columnAt(x int) int {
	if l.colWidth == 0 || x < 0 {
		return -1
	}
	span := l.colWidth + columnGap
	i := x / span
	if i >= len(l.stages) {
		return -1
	}
	if x%span >= l.colWidth {
		return -1 // in the gap
	}
	return i
}

// cardSlotAt returns the card slot index for row y, or -1 for rows in
// the board header or column header area. A y on the boundary between
// two cards belongs to the card whose block contains it; integer
// division makes the choice deterministic.
func (l layout) cardSlotAt(y int) int {
	y -= boardTop + headerRows
	if y < 0 {
		return -1
	}
	return y / cardRows
}

// target converts pointer coordinates into a DropTarget against the
// given snapshot.
func (l layout) target(snap *board.Snapshot, x, y int) board.DropTarget {
	col := l.columnAt(x)
	if col < 0 {
		return board.NoTarget()
	}
	stage := l.stages[col]
	slot := l.cardSlotAt(y)
	if slot < 0 {
		return board.ColumnTarget(stage.ID)
	}
	cards := l.cardsFor(snap, stage)
	if slot < len(cards) {
		return board.CardTarget(cards[slot].ID)
	}
	return board.ColumnTarget(stage.ID)
}

// cardAt returns the card under the pointer, if any.
func (l layout) cardAt(snap *board.Snapshot, x, y int) (domain.Opportunity, bool) {
	col := l.columnAt(x)
	if col < 0 {
		return domain.Opportunity{}, false
	}
	slot := l.cardSlotAt(y)
	if slot < 0 {
		return domain.Opportunity{}, false
	}
	cards := l.cardsFor(snap, l.stages[col])
	if slot >= len(cards) {
		return domain.Opportunity{}, false
	}
	return cards[slot], true
}

// cardsFor returns the cards rendered in the given column, routing the
// fallback bucket to cards with dangling stage references.
func (l layout) cardsFor(snap *board.Snapshot, stage domain.Stage) []domain.Opportunity {
	if stage.ID == domain.StageUnassigned {
		// The fallback column excludes itself from the known set.
		known := make([]domain.Stage, 0, len(l.stages))
		for _, s := range l.stages {
			if s.ID != domain.StageUnassigned {
				known = append(known, s)
			}
		}
		return snap.Unassigned(known)
	}
	return snap.CardsInStage(stage.ID)
}
