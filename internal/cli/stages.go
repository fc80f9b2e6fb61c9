package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/board"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/spf13/cobra"
)

// newStagesCommand creates the stages command.
func newStagesCommand(container func() *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stages",
		Short: "List pipeline stages with totals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := container()
			if err := c.RequireService(); err != nil {
				return err
			}
			out, err := c.LoadBoardUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}

			snap := board.NewSnapshot(out.Opportunities)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tCARDS\tVALUE\tWEIGHTED")
			for _, s := range out.Stages {
				t := snap.Totals(s.ID)
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\t%s\n",
					s.ID, s.Title, s.Category, t.Count,
					domain.FormatValue(t.Value), domain.FormatValue(t.Weighted))
			}

			if orphans := snap.Unassigned(out.Stages); len(orphans) > 0 {
				var total float64
				for _, o := range orphans {
					total += o.Value
				}
				_, _ = fmt.Fprintf(w, "%s\tUnassigned\t\t%d\t%s\t\n",
					domain.StageUnassigned, len(orphans), domain.FormatValue(total))
			}
			return w.Flush()
		},
	}

	return cmd
}
