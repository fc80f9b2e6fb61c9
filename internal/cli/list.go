package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/pipeboard/pipeboard/internal/app"
	"github.com/pipeboard/pipeboard/internal/domain"
	"github.com/pipeboard/pipeboard/internal/usecase"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command.
func newListCommand(container func() *app.Container) *cobra.Command {
	var opts struct {
		Stage    string
		MinValue float64
		Overdue  bool
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List opportunities",
		Long: `List opportunities in the pipeline.

Examples:
  # List every opportunity
  pipeboard list

  # List opportunities in one stage
  pipeboard list --stage proposal

  # List opportunities worth at least $10k
  pipeboard list --min-value 10000`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := container()
			if err := c.RequireService(); err != nil {
				return err
			}
			out, err := c.ListOpportunitiesUseCase().Execute(cmd.Context(), usecase.ListOpportunitiesInput{
				StageID:     opts.Stage,
				MinValue:    opts.MinValue,
				OverdueOnly: opts.Overdue,
			})
			if err != nil {
				return err
			}

			if len(out.Opportunities) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No opportunities found.")
				return nil
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "ID\tNAME\tSTAGE\tVALUE\tPROB\tCOMPANY")
			for _, o := range out.Opportunities {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d%%\t%s\n",
					o.ID, o.Name, o.StageID, domain.FormatValue(o.Value), o.Probability, o.Company)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.Stage, "stage", "", "Filter by stage ID")
	cmd.Flags().Float64Var(&opts.MinValue, "min-value", 0, "Minimum opportunity value")
	cmd.Flags().BoolVar(&opts.Overdue, "overdue", false, "Only opportunities past their close date")

	return cmd
}
