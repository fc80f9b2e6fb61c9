package board

import (
	"github.com/pipeboard/pipeboard/internal/domain"
)

// State is the coordinator's lifecycle state.
type State int

// Coordinator states. Reconciling and Cancelled are transient: a drop
// hands the move to the Reconciler and the coordinator returns to Idle;
// a cancel rolls back and returns to Idle in the same call.
const (
	StateIdle State = iota
	StateDragging
)

// Move is the outcome of a completed drag, handed to the reconciler.
// Index is the destination position within the stage's subset; it is
// display-only and not persisted server-side. FromStage/FromIndex
// record the pre-drag position for rollback on failure.
type Move struct {
	CardID    string
	StageID   string
	FromStage string
	Index     int
	FromIndex int
}

// session holds one drag gesture from pick-up to release.
type session struct {
	prior     []domain.Opportunity // Pre-drag card list for rollback
	cardID    string
	fromStage string
	fromIndex int
	target    DropTarget
}

// Coordinator is the drag state machine. It mutates the snapshot
// speculatively on every hover change and performs no I/O; network
// failure handling belongs to the Reconciler.
type Coordinator struct {
	snap    *Snapshot
	session *session
	state   State
}

// NewCoordinator creates a coordinator over the given snapshot.
func NewCoordinator(snap *Snapshot) *Coordinator {
	return &Coordinator{snap: snap, state: StateIdle}
}

// State returns the current lifecycle state.
func (c *Coordinator) State() State {
	return c.state
}

// Dragging returns true while a drag session is active.
func (c *Coordinator) Dragging() bool {
	return c.state == StateDragging
}

// DraggingCard returns the ID of the card being dragged, or "".
func (c *Coordinator) DraggingCard() string {
	if c.session == nil {
		return ""
	}
	return c.session.cardID
}

// Begin starts a drag session for the card. The caller must have
// already refused cards with an in-flight reconciliation.
func (c *Coordinator) Begin(cardID string) error {
	if c.state == StateDragging {
		return domain.ErrDragInProgress
	}
	card, ok := c.snap.Find(cardID)
	if !ok {
		return domain.ErrOpportunityNotFound
	}
	c.session = &session{
		cardID:    cardID,
		fromStage: card.StageID,
		fromIndex: c.snap.StageIndexOf(cardID),
		prior:     c.snap.Clone(),
		target:    NoTarget(),
	}
	c.state = StateDragging
	return nil
}

// Hover updates the hypothetical target and immediately mutates the
// snapshot so both source and destination columns reflow live. Hover
// changes that do not alter the card's placement are no-ops.
func (c *Coordinator) Hover(target DropTarget) {
	if c.state != StateDragging {
		return
	}
	if target == c.session.target {
		return
	}
	c.session.target = target

	switch target.Kind {
	case TargetColumn:
		_ = c.snap.MoveToStageEnd(c.session.cardID, target.StageID)
	case TargetCard:
		if target.CardID != c.session.cardID {
			_ = c.snap.InsertBefore(c.session.cardID, target.CardID)
		}
	case TargetNone:
		// Leaving droppable space keeps the last speculative placement;
		// a release here cancels and rolls back.
	}
}

// Drop ends the session. With a valid target it returns the confirmed
// move and leaves the speculative placement in the snapshot for the
// reconciler to settle. Without one it behaves exactly like Cancel.
func (c *Coordinator) Drop() (*Move, bool) {
	if c.state != StateDragging {
		return nil, false
	}
	sess := c.session
	c.session = nil
	c.state = StateIdle

	if !sess.target.Valid() {
		c.snap.restore(sess.prior)
		return nil, false
	}

	card, ok := c.snap.Find(sess.cardID)
	if !ok {
		c.snap.restore(sess.prior)
		return nil, false
	}
	return &Move{
		CardID:    sess.cardID,
		StageID:   card.StageID,
		Index:     c.snap.StageIndexOf(sess.cardID),
		FromStage: sess.fromStage,
		FromIndex: sess.fromIndex,
	}, true
}

// Cancel discards the session and restores the exact pre-drag snapshot.
// No partial reordering survives a cancel.
func (c *Coordinator) Cancel() {
	if c.state != StateDragging {
		return
	}
	c.snap.restore(c.session.prior)
	c.session = nil
	c.state = StateIdle
}
