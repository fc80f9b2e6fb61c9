// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// LoadBoardOutput contains the authoritative board state.
type LoadBoardOutput struct {
	Stages        []domain.Stage
	Opportunities []domain.Opportunity
}

// LoadBoard is the use case for fetching the authoritative board state
// from the server of record. The TUI runs it on startup, on manual
// refresh, and after every settled move.
type LoadBoard struct {
	svc    domain.OpportunityService
	logger domain.Logger
}

// NewLoadBoard creates a new LoadBoard use case.
func NewLoadBoard(svc domain.OpportunityService, logger domain.Logger) *LoadBoard {
	return &LoadBoard{svc: svc, logger: logger}
}

// Execute fetches stages and opportunities.
func (uc *LoadBoard) Execute(ctx context.Context) (*LoadBoardOutput, error) {
	stages, err := uc.svc.ListStages(ctx)
	if err != nil {
		return nil, fmt.Errorf("load stages: %w", err)
	}

	opps, err := uc.svc.ListOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("load opportunities: %w", err)
	}

	uc.logger.Debug("board", fmt.Sprintf("loaded %d stages, %d opportunities", len(stages), len(opps)))
	return &LoadBoardOutput{Stages: stages, Opportunities: opps}, nil
}
