package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/pipeboard/pipeboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadBoard_Execute(t *testing.T) {
	svc := testutil.NewMockOpportunityService()
	uc := NewLoadBoard(svc, testutil.NopLogger{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, out.Stages, 3)
	require.Len(t, out.Opportunities, 2)
	assert.Equal(t, "new", out.Stages[0].ID)
}

func TestLoadBoard_Execute_StageError(t *testing.T) {
	svc := testutil.NewMockOpportunityService()
	svc.ListStagesErr = errors.New("boom")
	uc := NewLoadBoard(svc, testutil.NopLogger{})

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load stages")
}

func TestLoadBoard_Execute_OpportunityError(t *testing.T) {
	svc := testutil.NewMockOpportunityService()
	svc.ListOppsErr = errors.New("boom")
	uc := NewLoadBoard(svc, testutil.NopLogger{})

	_, err := uc.Execute(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load opportunities")
}
