// Package cli provides the command-line interface for pipeboard.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/tui"
	"github.com/spf13/cobra"
)

// Command group IDs.
const (
	groupBoard = "board"
	groupData  = "data"
	groupSetup = "setup"
)

// launchBoardFunc is a function variable for launching the board TUI,
// allowing it to be mocked in tests.
var launchBoardFunc = launchBoard

// NewRootCommand creates the root command for pipeboard.
// It receives a container factory for dependency injection: the
// container is built after flag parsing so --fixture can select the
// offline store.
func NewRootCommand(newContainer func(app.Options) (*app.Container, error), version string) *cobra.Command {
	var fixturePath string

	var c *app.Container

	root := &cobra.Command{
		Use:   "pipeboard",
		Short: "Sales pipeline Kanban board",
		Long: `pipeboard is a terminal Kanban board for a CRM sales pipeline.
Opportunities are shown as cards in stage columns; moving a card applies
instantly on screen and is reconciled with the server in the background.

Run without arguments to open the board. Use --fixture to work against
a local YAML file instead of the API.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			c, err = newContainer(app.Options{FixturePath: fixturePath})
			if err != nil {
				return err
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c == nil {
				return nil
			}
			return c.Close()
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := c.RequireService(); err != nil {
				return err
			}
			return launchBoardFunc(c)
		},
	}

	root.PersistentFlags().StringVar(&fixturePath, "fixture", "", "Use a local YAML fixture file instead of the API")

	root.AddGroup(
		&cobra.Group{ID: groupBoard, Title: "Board:"},
		&cobra.Group{ID: groupData, Title: "Data:"},
		&cobra.Group{ID: groupSetup, Title: "Setup:"},
	)

	boardCmd := newBoardCommand(func() *app.Container { return c })
	boardCmd.GroupID = groupBoard

	listCmd := newListCommand(func() *app.Container { return c })
	listCmd.GroupID = groupData

	stagesCmd := newStagesCommand(func() *app.Container { return c })
	stagesCmd.GroupID = groupData

	moveCmd := newMoveCommand(func() *app.Container { return c })
	moveCmd.GroupID = groupData

	exportCmd := newExportCommand(func() *app.Container { return c })
	exportCmd.GroupID = groupData

	configCmd := newConfigCommand(func() *app.Container { return c })
	configCmd.GroupID = groupSetup

	root.AddCommand(
		boardCmd,
		listCmd,
		stagesCmd,
		moveCmd,
		exportCmd,
		configCmd,
	)

	return root
}

// launchBoard starts the interactive board TUI.
func launchBoard(c *app.Container) error {
	model := tui.New(
		c.LoadBoardUseCase(),
		c.MoveOpportunityUseCase(),
		c.Logger,
		c.Config,
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// newBoardCommand creates the board command, an alias for the root TUI.
func newBoardCommand(container func() *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive board",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := container()
			if err := c.RequireService(); err != nil {
				return err
			}
			return launchBoardFunc(c)
		},
	}
}
