package domain

import (
	"fmt"
	"time"
)

// Opportunity represents a sales opportunity card on the pipeline board.
// Fields are ordered to minimize memory padding.
type Opportunity struct {
	CloseDate   time.Time `json:"closeDate,omitzero" yaml:"closeDate,omitempty"` // Expected close date (zero = unset)
	ID          string    `json:"id" yaml:"id"`                                  // Unique identifier
	Name        string    `json:"name" yaml:"name"`                              // Display name
	StageID     string    `json:"stageId" yaml:"stageId"`                        // Current stage (exactly one at any instant)
	Contact     string    `json:"contact,omitempty" yaml:"contact,omitempty"`    // Linked contact display name
	Company     string    `json:"company,omitempty" yaml:"company,omitempty"`    // Linked company display name
	Value       float64   `json:"value" yaml:"value"`                            // Monetary value (non-negative)
	Probability int       `json:"probability" yaml:"probability"`                // Win probability, 0-100
}

// Validate checks the opportunity's field invariants.
func (o *Opportunity) Validate() error {
	if o.ID == "" {
		return ErrEmptyOpportunityID
	}
	if o.Value < 0 {
		return fmt.Errorf("%w: value %v", ErrInvalidValue, o.Value)
	}
	if o.Probability < 0 || o.Probability > 100 {
		return fmt.Errorf("%w: probability %d", ErrInvalidProbability, o.Probability)
	}
	return nil
}

// WeightedValue returns the probability-weighted monetary value.
func (o *Opportunity) WeightedValue() float64 {
	return o.Value * float64(o.Probability) / 100
}

// HasCloseDate returns true if an expected close date is set.
func (o *Opportunity) HasCloseDate() bool {
	return !o.CloseDate.IsZero()
}

// FormatValue renders a monetary value for display, e.g. "$12.5k".
func FormatValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("$%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("$%.1fk", v/1_000)
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}
