// Package fixture provides a YAML-backed OpportunityService used for
// offline demos, local development, and end-to-end TUI tests.
package fixture

import (
	"context"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/pipeboard/pipeboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// Ensure Store implements domain.OpportunityService.
var _ domain.OpportunityService = (*Store)(nil)

// File is the on-disk fixture format.
type File struct {
	Stages        []domain.Stage       `yaml:"stages"`
	Opportunities []domain.Opportunity `yaml:"opportunities"`
}

// Store serves board state from an in-memory copy of a fixture file.
// Moves mutate the in-memory state only; the file is never rewritten.
type Store struct {
	stages []domain.Stage
	opps   []domain.Opportunity
	mu     sync.Mutex
}

// Load reads a fixture file and creates a store from it.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return New(f.Stages, f.Opportunities)
}

// New creates a store from stages and opportunities, validating both.
func New(stages []domain.Stage, opps []domain.Opportunity) (*Store, error) {
	if err := domain.ValidateStages(stages); err != nil {
		return nil, err
	}
	for i := range opps {
		if err := opps[i].Validate(); err != nil {
			return nil, fmt.Errorf("opportunity %q: %w", opps[i].ID, err)
		}
	}
	return &Store{
		stages: slices.Clone(stages),
		opps:   slices.Clone(opps),
	}, nil
}

// ListStages returns the fixture's stages in file order.
func (s *Store) ListStages(_ context.Context) ([]domain.Stage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.stages), nil
}

// ListOpportunities returns the current opportunity list.
func (s *Store) ListOpportunities(_ context.Context) ([]domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.opps), nil
}

// MoveOpportunity reassigns an opportunity to the given stage.
func (s *Store) MoveOpportunity(_ context.Context, id, stageID string) (*domain.Opportunity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if domain.StageIndex(s.stages, stageID) < 0 {
		return nil, fmt.Errorf("%q: %w", stageID, domain.ErrStageNotFound)
	}
	i := slices.IndexFunc(s.opps, func(o domain.Opportunity) bool { return o.ID == id })
	if i < 0 {
		return nil, fmt.Errorf("%q: %w", id, domain.ErrOpportunityNotFound)
	}
	s.opps[i].StageID = stageID
	moved := s.opps[i]
	return &moved, nil
}

// Write saves a fixture file for the given board state.
func Write(path string, stages []domain.Stage, opps []domain.Opportunity) error {
	data, err := yaml.Marshal(File{Stages: stages, Opportunities: opps})
	if err != nil {
		return fmt.Errorf("marshal fixture: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // Fixture files are not sensitive
		return fmt.Errorf("write fixture: %w", err)
	}
	return nil
}
