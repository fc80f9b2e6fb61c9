package board

import "github.com/pipeboard/pipeboard/internal/domain"

// Reconciler tracks moves that have been confirmed locally but not yet
// acknowledged by the server. It enforces at-most-one-in-flight per
// card: a second drag on a pending card is refused until the first
// settles. Moves for different cards are independent and may settle in
// any order.
type Reconciler struct {
	pending map[string]Move
}

// NewReconciler creates an empty reconciler.
func NewReconciler() *Reconciler {
	return &Reconciler{pending: make(map[string]Move)}
}

// Track registers a confirmed move as in flight.
func (r *Reconciler) Track(m Move) error {
	if _, ok := r.pending[m.CardID]; ok {
		return domain.ErrMovePending
	}
	r.pending[m.CardID] = m
	return nil
}

// Pending returns true if a move for the card is in flight.
func (r *Reconciler) Pending(cardID string) bool {
	_, ok := r.pending[cardID]
	return ok
}

// HasPending returns true if any move is in flight. While true, the
// board must not adopt a refetched authoritative list.
func (r *Reconciler) HasPending() bool {
	return len(r.pending) > 0
}

// Resolve settles a successful move. The optimistic state already
// matches the intended outcome; the next refetch wins if the server
// normalized anything.
func (r *Reconciler) Resolve(cardID string) {
	delete(r.pending, cardID)
}

// Rollback settles a failed move by restoring the card to its pre-drag
// stage and position. Only the failed card is touched, so optimistic
// state for other in-flight cards survives.
func (r *Reconciler) Rollback(cardID string, snap *Snapshot) {
	m, ok := r.pending[cardID]
	if !ok {
		return
	}
	delete(r.pending, cardID)
	_ = snap.InsertAtStageIndex(cardID, m.FromStage, m.FromIndex)
}
