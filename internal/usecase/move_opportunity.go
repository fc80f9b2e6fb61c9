package usecase

import (
	"context"
	"fmt"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// MoveOpportunityInput contains the parameters for moving an opportunity.
// Fields are ordered to minimize memory padding.
type MoveOpportunityInput struct {
	ID          string // Opportunity to move
	StageID     string // Destination stage
	FromStageID string // Current stage if known (skips no-op moves)
	Index       int    // Destination position within the stage; advisory, not persisted
}

// MoveOpportunityOutput contains the server's view of the moved opportunity.
type MoveOpportunityOutput struct {
	Moved *domain.Opportunity
}

// MoveOpportunity is the use case for the authoritative move request.
// It is shared by the board TUI (after a drop) and the headless
// `pipeboard move` command.
type MoveOpportunity struct {
	svc    domain.OpportunityService
	logger domain.Logger
}

// NewMoveOpportunity creates a new MoveOpportunity use case.
func NewMoveOpportunity(svc domain.OpportunityService, logger domain.Logger) *MoveOpportunity {
	return &MoveOpportunity{svc: svc, logger: logger}
}

// Execute issues the move request. The destination index is accepted
// for interface completeness but only stage membership is persisted.
func (uc *MoveOpportunity) Execute(ctx context.Context, in MoveOpportunityInput) (*MoveOpportunityOutput, error) {
	if in.ID == "" {
		return nil, domain.ErrEmptyOpportunityID
	}
	if in.StageID == "" {
		return nil, domain.ErrEmptyStageID
	}
	if in.FromStageID != "" && in.FromStageID == in.StageID {
		return nil, domain.ErrSameStage
	}

	moved, err := uc.svc.MoveOpportunity(ctx, in.ID, in.StageID)
	if err != nil {
		uc.logger.Error("move", fmt.Sprintf("move %s -> %s failed: %v", in.ID, in.StageID, err))
		return nil, err
	}

	uc.logger.Info("move", fmt.Sprintf("moved %s to %s", in.ID, in.StageID))
	return &MoveOpportunityOutput{Moved: moved}, nil
}
