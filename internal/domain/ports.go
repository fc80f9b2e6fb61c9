package domain

import (
	"context"
	"time"
)

// OpportunityService is the authoritative source of board state.
// Implementations are the CRM REST API client and the YAML fixture store.
type OpportunityService interface {
	// ListStages returns the board's stages in display order.
	ListStages(ctx context.Context) ([]Stage, error)

	// ListOpportunities returns the authoritative opportunity list.
	ListOpportunities(ctx context.Context) ([]Opportunity, error)

	// MoveOpportunity reassigns an opportunity to the given stage and
	// returns the server's normalized view of it. Intra-stage ordering
	// is not persisted server-side.
	MoveOpportunity(ctx context.Context, id, stageID string) (*Opportunity, error)
}

// ConfigLoader loads application configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (local over global over defaults).
	Load() (*Config, error)
}

// Logger provides leveled, categorized logging.
// Categories group related log lines, e.g. "board", "api", "tui".
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// Clock provides the current time. Abstracted for testing.
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }
