// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"slices"
	"time"

	"github.com/pipeboard/pipeboard/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MoveCall records one MoveOpportunity invocation.
type MoveCall struct {
	ID      string
	StageID string
}

// MockOpportunityService is a test double for domain.OpportunityService.
// Fields are ordered to minimize memory padding.
type MockOpportunityService struct {
	ListStagesErr error
	ListOppsErr   error
	MoveErr       error
	Stages        []domain.Stage
	Opportunities []domain.Opportunity
	MoveCalls     []MoveCall
}

// NewMockOpportunityService creates a mock pre-loaded with a small board.
func NewMockOpportunityService() *MockOpportunityService {
	return &MockOpportunityService{
		Stages: []domain.Stage{
			{ID: "new", Title: "New", Category: domain.CategoryOpen},
			{ID: "proposal", Title: "Proposal", Category: domain.CategoryActive},
			{ID: "won", Title: "Won", Category: domain.CategoryWon},
		},
		Opportunities: []domain.Opportunity{
			{ID: "A", Name: "Deal A", StageID: "new", Value: 1000, Probability: 20},
			{ID: "B", Name: "Deal B", StageID: "proposal", Value: 500, Probability: 60},
		},
	}
}

// ListStages returns the configured stages.
func (m *MockOpportunityService) ListStages(_ context.Context) ([]domain.Stage, error) {
	if m.ListStagesErr != nil {
		return nil, m.ListStagesErr
	}
	return slices.Clone(m.Stages), nil
}

// ListOpportunities returns the configured opportunities.
func (m *MockOpportunityService) ListOpportunities(_ context.Context) ([]domain.Opportunity, error) {
	if m.ListOppsErr != nil {
		return nil, m.ListOppsErr
	}
	return slices.Clone(m.Opportunities), nil
}

// MoveOpportunity records the call and applies the move to the mock state.
func (m *MockOpportunityService) MoveOpportunity(_ context.Context, id, stageID string) (*domain.Opportunity, error) {
	m.MoveCalls = append(m.MoveCalls, MoveCall{ID: id, StageID: stageID})
	if m.MoveErr != nil {
		return nil, m.MoveErr
	}
	if domain.StageIndex(m.Stages, stageID) < 0 {
		return nil, domain.ErrStageNotFound
	}
	for i := range m.Opportunities {
		if m.Opportunities[i].ID == id {
			m.Opportunities[i].StageID = stageID
			moved := m.Opportunities[i]
			return &moved, nil
		}
	}
	return nil, domain.ErrOpportunityNotFound
}

// NopLogger is a domain.Logger that discards everything.
type NopLogger struct{}

// Debug discards the message.
func (NopLogger) Debug(string, string) {}

// Info discards the message.
func (NopLogger) Info(string, string) {}

// Warn discards the message.
func (NopLogger) Warn(string, string) {}

// Error discards the message.
func (NopLogger) Error(string, string) {}
