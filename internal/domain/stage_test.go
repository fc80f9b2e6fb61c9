package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStages(t *testing.T) {
	tests := []struct {
		name    string
		stages  []Stage
		wantErr error
	}{
		{
			name: "unique ids",
			stages: []Stage{
				{ID: "new", Title: "New"},
				{ID: "proposal", Title: "Proposal"},
				{ID: "won", Title: "Won"},
			},
			wantErr: nil,
		},
		{
			name: "duplicate id",
			stages: []Stage{
				{ID: "new", Title: "New"},
				{ID: "new", Title: "Also New"},
			},
			wantErr: ErrDuplicateStage,
		},
		{
			name:    "empty id",
			stages:  []Stage{{ID: "", Title: "Broken"}},
			wantErr: ErrEmptyStageID,
		},
		{
			name:    "no stages",
			stages:  nil,
			wantErr: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStages(tt.stages)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestStageIndex(t *testing.T) {
	stages := []Stage{{ID: "new"}, {ID: "proposal"}, {ID: "won"}}

	assert.Equal(t, 0, StageIndex(stages, "new"))
	assert.Equal(t, 2, StageIndex(stages, "won"))
	assert.Equal(t, -1, StageIndex(stages, "missing"))
}
