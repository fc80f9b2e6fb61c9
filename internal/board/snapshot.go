package board

import (
	"slices"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// Snapshot is the full ordered collection of opportunities as currently
// rendered: the authoritative list plus any speculative mutation from an
// in-progress drag or a pending reconciliation. The stage field of a
// card (and its position in the list) are the only things a drag
// mutates; everything else is read-only here.
type Snapshot struct {
	cards []domain.Opportunity
}

// NewSnapshot creates a snapshot from the authoritative list.
func NewSnapshot(cards []domain.Opportunity) *Snapshot {
	return &Snapshot{cards: slices.Clone(cards)}
}

// Adopt replaces the snapshot wholesale with a new authoritative list.
// Callers must only adopt when no drag is in progress and no
// reconciliation is pending; the TUI model enforces that rule.
func (s *Snapshot) Adopt(cards []domain.Opportunity) {
	s.cards = slices.Clone(cards)
}

// Cards returns the rendered card order. The returned slice is shared;
// callers must not mutate it.
func (s *Snapshot) Cards() []domain.Opportunity {
	return s.cards
}

// Clone returns an independent copy of the current card list,
// used to capture the pre-drag state for rollback.
func (s *Snapshot) Clone() []domain.Opportunity {
	return slices.Clone(s.cards)
}

// Len returns the number of cards.
func (s *Snapshot) Len() int {
	return len(s.cards)
}

// Find returns the card with the given ID.
func (s *Snapshot) Find(id string) (domain.Opportunity, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.cards[i], true
	}
	return domain.Opportunity{}, false
}

// CardsInStage returns the cards assigned to the given stage,
// in snapshot order.
func (s *Snapshot) CardsInStage(stageID string) []domain.Opportunity {
	var out []domain.Opportunity
	for _, c := range s.cards {
		if c.StageID == stageID {
			out = append(out, c)
		}
	}
	return out
}

// Unassigned returns cards whose stage ID references none of the given
// stages. They render in a fallback bucket instead of being dropped.
func (s *Snapshot) Unassigned(stages []domain.Stage) []domain.Opportunity {
	known := make(map[string]struct{}, len(stages))
	for _, st := range stages {
		known[st.ID] = struct{}{}
	}
	var out []domain.Opportunity
	for _, c := range s.cards {
		if _, ok := known[c.StageID]; !ok {
			out = append(out, c)
		}
	}
	return out
}

// StageTotals holds the derived aggregates for one column.
type StageTotals struct {
	Count    int
	Value    float64
	Weighted float64
}

// Totals computes the per-stage aggregates over the current (possibly
// speculative) assignment, so columns grow and shrink live mid-drag.
func (s *Snapshot) Totals(stageID string) StageTotals {
	var t StageTotals
	for _, c := range s.cards {
		if c.StageID != stageID {
			continue
		}
		t.Count++
		t.Value += c.Value
		t.Weighted += c.WeightedValue()
	}
	return t
}

// StageIndexOf returns the card's position within its stage's subset,
// or -1 if the card does not exist.
func (s *Snapshot) StageIndexOf(id string) int {
	i := s.indexOf(id)
	if i < 0 {
		return -1
	}
	idx := 0
	for j := 0; j < i; j++ {
		if s.cards[j].StageID == s.cards[i].StageID {
			idx++
		}
	}
	return idx
}

// Assignments returns the card-to-stage mapping, used to compare a
// settled snapshot against the authoritative list.
func (s *Snapshot) Assignments() map[string]string {
	m := make(map[string]string, len(s.cards))
	for _, c := range s.cards {
		m[c.ID] = c.StageID
	}
	return m
}

// MoveToStageEnd reassigns the card to the stage and places it after
// that stage's last card.
func (s *Snapshot) MoveToStageEnd(id, stageID string) error {
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrOpportunityNotFound
	}
	card := s.cards[i]
	card.StageID = stageID
	s.cards = slices.Delete(s.cards, i, i+1)

	at := len(s.cards)
	for j := len(s.cards) - 1; j >= 0; j-- {
		if s.cards[j].StageID == stageID {
			at = j + 1
			break
		}
	}
	s.cards = slices.Insert(s.cards, at, card)
	return nil
}

// InsertBefore reassigns the card to the hovered card's stage and
// places it immediately before the hovered card's slot.
func (s *Snapshot) InsertBefore(id, beforeID string) error {
	if id == beforeID {
		return nil
	}
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrOpportunityNotFound
	}
	card := s.cards[i]
	s.cards = slices.Delete(s.cards, i, i+1)

	j := s.indexOf(beforeID)
	if j < 0 {
		// Hovered card vanished mid-drag; put the dragged card back.
		s.cards = slices.Insert(s.cards, min(i, len(s.cards)), card)
		return domain.ErrOpportunityNotFound
	}
	card.StageID = s.cards[j].StageID
	s.cards = slices.Insert(s.cards, j, card)
	return nil
}

// Replace overwrites the stored card with the same ID, keeping its
// position in the list. Used to apply the server's normalized view of
// a settled move without waiting for a refetch.
func (s *Snapshot) Replace(card domain.Opportunity) error {
	i := s.indexOf(card.ID)
	if i < 0 {
		return domain.ErrOpportunityNotFound
	}
	s.cards[i] = card
	return nil
}

// InsertAtStageIndex reassigns the card to the stage at the given
// position within that stage's subset, clamped to the subset's bounds.
// Used by the reconciler to restore a card after a failed move.
func (s *Snapshot) InsertAtStageIndex(id, stageID string, index int) error {
	i := s.indexOf(id)
	if i < 0 {
		return domain.ErrOpportunityNotFound
	}
	card := s.cards[i]
	card.StageID = stageID
	s.cards = slices.Delete(s.cards, i, i+1)

	seen := 0
	at := len(s.cards)
	lastOfStage := -1
	for j, c := range s.cards {
		if c.StageID != stageID {
			continue
		}
		if seen == index {
			at = j
			break
		}
		seen++
		lastOfStage = j
	}
	if at == len(s.cards) && lastOfStage >= 0 && seen <= index {
		at = lastOfStage + 1
	}
	s.cards = slices.Insert(s.cards, at, card)
	return nil
}

// restore replaces the card list with a previously captured copy.
func (s *Snapshot) restore(cards []domain.Opportunity) {
	s.cards = slices.Clone(cards)
}

func (s *Snapshot) indexOf(id string) int {
	return slices.IndexFunc(s.cards, func(c domain.Opportunity) bool {
		return c.ID == id
	})
}
