package cli

import (
	"fmt"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/spf13/cobra"
)

func newAdjustCmd(app *App) *cobra.Command {
	var category, name, reason string
	var hours float64

	cmd := &cobra.Command{
		Use:   "adjust",
		Short: "Add or remove hours from a scheduled session",
		Long: `Moves the end of the first session with the given name by --hours
(negative to shorten it) and records the reason in the adjustment history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}

			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			s, err := ledger.Adjust(ctx, c, name, hours, reason)
			if err != nil {
				return err
			}
			if err := ledger.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Adjusted %s by %sh: now ends %s (%s hours)\n",
				formatter.Bold(s.Name), formatter.FormatHours(hours),
				formatter.FormatTimestamp(s.End), formatter.FormatHours(s.Hours()))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "course, super_module or workshop")
	cmd.Flags().StringVar(&name, "name", "", "Session name")
	cmd.Flags().Float64Var(&hours, "hours", 0, "Hours to add, negative to remove")
	cmd.Flags().StringVar(&reason, "reason", "", "Why the session changed")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("hours")

	return cmd
}

func newHistoryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show every adjustment in the order it was applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			history := ledger.History()
			out := cmd.OutOrStdout()
			if len(history) == 0 {
				fmt.Fprintln(out, "No adjustments recorded.")
				return nil
			}

			fmt.Fprintln(out, formatter.Header("Adjustment history"))
			headers := []string{"APPLIED", "CATEGORY", "SESSION", "DELTA", "REASON"}
			rows := make([][]string, 0, len(history))
			for _, a := range history {
				category := formatter.Dim("--")
				if a.Category != "" {
					category = formatter.CategoryBadge(a.Category)
				}
				rows = append(rows, []string{
					formatter.FormatTimestamp(a.AppliedAt),
					category,
					a.SessionName,
					formatter.HoursStyled(a.DeltaHours),
					a.Reason,
				})
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}
}
