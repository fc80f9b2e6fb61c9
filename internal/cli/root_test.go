package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/pipeboard/pipeboard/internal/infra/fixture"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestFixture writes a three-stage, two-card fixture and returns
// its path.
func writeTestFixture(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	stages := []domain.Stage{
		{ID: "new", Title: "New", Category: domain.CategoryOpen},
		{ID: "proposal", Title: "Proposal", Category: domain.CategoryActive},
		{ID: "won", Title: "Won", Category: domain.CategoryWon},
	}
	opps := []domain.Opportunity{
		{ID: "A", Name: "Deal A", StageID: "new", Value: 1000, Probability: 20},
		{ID: "B", Name: "Deal B", StageID: "proposal", Value: 500, Probability: 60},
	}
	require.NoError(t, fixture.Write(path, stages, opps))
	return path
}

// newTestContainerFactory returns a container factory rooted in a
// temporary directory with no config files.
func newTestContainerFactory(t *testing.T) func(app.Options) (*app.Container, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	return func(opts app.Options) (*app.Container, error) {
		return app.New(dir, opts)
	}
}

// runCommand executes the root command with args and returns stdout.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCommand(newTestContainerFactory(t), "test-version")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootCommand_NoArgs_LaunchesBoard(t *testing.T) {
	originalFunc := launchBoardFunc
	defer func() { launchBoardFunc = originalFunc }()

	called := false
	launchBoardFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	_, err := runCommand(t, "--fixture", writeTestFixture(t))
	assert.NoError(t, err)
	assert.True(t, called, "the board TUI should launch when no arguments are given")
}

func TestRootCommand_NoServiceConfigured(t *testing.T) {
	originalFunc := launchBoardFunc
	defer func() { launchBoardFunc = originalFunc }()
	launchBoardFunc = func(_ *app.Container) error { return nil }

	_, err := runCommand(t)
	assert.ErrorIs(t, err, domain.ErrNoService)
}

func TestRootCommand_Help_DoesNotLaunchBoard(t *testing.T) {
	originalFunc := launchBoardFunc
	defer func() { launchBoardFunc = originalFunc }()

	called := false
	launchBoardFunc = func(_ *app.Container) error {
		called = true
		return nil
	}

	_, err := runCommand(t, "--help")
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestRootCommand_PrintsConfigWarnings(t *testing.T) {
	t.Setenv("PIPEBOARD_API_TOKEN", "abc")

	out, err := runCommand(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Warning: api.token is set")
}
