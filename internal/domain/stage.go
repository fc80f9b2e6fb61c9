// Package domain contains core business entities and interfaces.
package domain

// StageCategory classifies a stage for display purposes.
type StageCategory string

// Stage display categories.
const (
	CategoryOpen   StageCategory = "open"   // Early pipeline phases
	CategoryActive StageCategory = "active" // Negotiation phases
	CategoryWon    StageCategory = "won"    // Closed won
	CategoryLost   StageCategory = "lost"   // Closed lost
)

// StageUnassigned is the fallback bucket for opportunities whose stage
// no longer exists in the board's stage list (e.g. deleted concurrently).
const StageUnassigned = "_unassigned"

// Stage represents one phase of the sales pipeline.
// Stage order is significant: boards render stages in the order the
// server returns them and never re-sort implicitly.
type Stage struct {
	ID       string        `json:"id" yaml:"id"`
	Title    string        `json:"title" yaml:"title"`
	Category StageCategory `json:"category" yaml:"category"`
}

// UnassignedStage returns the synthetic fallback stage used to render
// opportunities with a dangling stage reference.
func UnassignedStage() Stage {
	return Stage{ID: StageUnassigned, Title: "Unassigned", Category: CategoryOpen}
}

// ValidateStages checks that stage IDs are unique within a board.
func ValidateStages(stages []Stage) error {
	seen := make(map[string]struct{}, len(stages))
	for _, s := range stages {
		if s.ID == "" {
			return ErrEmptyStageID
		}
		if _, ok := seen[s.ID]; ok {
			return ErrDuplicateStage
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

// StageIndex returns the position of the stage with the given ID,
// or -1 if no such stage exists.
func StageIndex(stages []Stage, id string) int {
	for i, s := range stages {
		if s.ID == id {
			return i
		}
	}
	return -1
}
