package usecase

import (
	"context"
	"fmt"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// ListOpportunitiesInput contains the filter parameters.
// Fields are ordered to minimize memory padding.
type ListOpportunitiesInput struct {
	StageID     string  // Filter by stage ("" = all stages)
	MinValue    float64 // Minimum monetary value (0 = no minimum)
	OverdueOnly bool    // Only opportunities whose close date has passed
}

// ListOpportunitiesOutput contains the filtered opportunity list.
type ListOpportunitiesOutput struct {
	Opportunities []domain.Opportunity
}

// ListOpportunities is the use case behind `pipeboard list`.
type ListOpportunities struct {
	svc   domain.OpportunityService
	clock domain.Clock
}

// NewListOpportunities creates a new ListOpportunities use case.
func NewListOpportunities(svc domain.OpportunityService, clock domain.Clock) *ListOpportunities {
	return &ListOpportunities{svc: svc, clock: clock}
}

// Execute lists opportunities matching the filter. Filtering by an
// unknown stage is an error rather than an empty result.
func (uc *ListOpportunities) Execute(ctx context.Context, in ListOpportunitiesInput) (*ListOpportunitiesOutput, error) {
	if in.StageID != "" {
		stages, err := uc.svc.ListStages(ctx)
		if err != nil {
			return nil, fmt.Errorf("list stages: %w", err)
		}
		if domain.StageIndex(stages, in.StageID) < 0 {
			return nil, fmt.Errorf("%q: %w", in.StageID, domain.ErrStageNotFound)
		}
	}

	opps, err := uc.svc.ListOpportunities(ctx)
	if err != nil {
		return nil, fmt.Errorf("list opportunities: %w", err)
	}

	now := uc.clock.Now()
	var filtered []domain.Opportunity
	for _, o := range opps {
		if in.StageID != "" && o.StageID != in.StageID {
			continue
		}
		if o.Value < in.MinValue {
			continue
		}
		if in.OverdueOnly && (!o.HasCloseDate() || !o.CloseDate.Before(now)) {
			continue
		}
		filtered = append(filtered, o)
	}
	return &ListOpportunitiesOutput{Opportunities: filtered}, nil
}
