package cli

import (
	"fmt"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/infra/api"
	"github.com/pipeboard/pipeboard/internal/usecase"
	"github.com/spf13/cobra"
)

// newMoveCommand creates the move command.
func newMoveCommand(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <opportunity-id> <stage-id>",
		Short: "Move an opportunity to another stage",
		Long: `Move an opportunity to another stage without opening the board.

Examples:
  pipeboard move opp-42 negotiation`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := container()
			if err := c.RequireService(); err != nil {
				return err
			}
			out, err := c.MoveOpportunityUseCase().Execute(cmd.Context(), usecase.MoveOpportunityInput{
				ID:      args[0],
				StageID: args[1],
			})
			if err != nil {
				if api.IsNotFound(err) {
					return fmt.Errorf("%w (run 'pipeboard stages' to see valid stages)", err)
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Moved %s to %s\n", out.Moved.Name, out.Moved.StageID)
			return nil
		},
	}

	return cmd
}
