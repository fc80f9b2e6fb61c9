package cli

import (
	"fmt"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/infra/fixture"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// newExportCommand creates the export command.
func newExportCommand(container func() *app.Container) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the pipeline as YAML",
		Long: `Export the current stages and opportunities as a YAML document.

The output is loadable with --fixture, so an export doubles as an
offline working copy of the board.

Examples:
  # Print to stdout
  pipeboard export

  # Write a fixture file
  pipeboard export -o pipeline.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := container()
			if err := c.RequireService(); err != nil {
				return err
			}
			out, err := c.LoadBoardUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			if output != "" {
				if err := fixture.Write(output, out.Stages, out.Opportunities); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %d opportunities to %s\n", len(out.Opportunities), output)
				return nil
			}

			data, err := yaml.Marshal(fixture.File{
				Stages:        out.Stages,
				Opportunities: out.Opportunities,
			})
			if err != nil {
				return fmt.Errorf("marshal pipeline: %w", err)
			}
			_, _ = cmd.OutOrStdout().Write(data)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
