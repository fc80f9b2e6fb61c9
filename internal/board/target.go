// Package board implements the pipeline board state: the rendered
// snapshot of opportunities, the drag state machine that mutates it
// speculatively, and the reconciler that settles moves against the
// server of record.
package board

// TargetKind discriminates the DropTarget union.
type TargetKind int

// Drop target kinds.
const (
	TargetNone   TargetKind = iota // Not over any droppable area
	TargetColumn                   // Over a stage column (not a specific card)
	TargetCard                     // Over another card
)

// DropTarget identifies what the dragged card is currently hovering.
// Exactly one of StageID/CardID is meaningful, selected by Kind.
type DropTarget struct {
	StageID string
	CardID  string
	Kind    TargetKind
}

// NoTarget returns the target used when hovering outside any column.
func NoTarget() DropTarget {
	return DropTarget{Kind: TargetNone}
}

// ColumnTarget returns a target for hovering a stage column.
// Dropping there appends the card to the end of that stage.
func ColumnTarget(stageID string) DropTarget {
	return DropTarget{Kind: TargetColumn, StageID: stageID}
}

// CardTarget returns a target for hovering another card.
// Dropping there inserts the dragged card at that card's slot.
func CardTarget(cardID string) DropTarget {
	return DropTarget{Kind: TargetCard, CardID: cardID}
}

// Valid returns true if the target is droppable.
func (t DropTarget) Valid() bool {
	return t.Kind != TargetNone
}
