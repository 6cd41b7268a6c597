package cli

import (
	"fmt"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Schedule and list class sessions",
	}

	cmd.AddCommand(
		newSessionAddCmd(app),
		newSessionListCmd(app),
	)

	return cmd
}

func newSessionAddCmd(app *App) *cobra.Command {
	var category, name, start string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Schedule a session with its category's default duration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c, err := domain.ParseCategory(category)
			if err != nil {
				return err
			}
			startAt, err := domain.ParseTimestamp(start)
			if err != nil {
				return fmt.Errorf("invalid --start %q, want YYYY-MM-DD HH:MM: %w", start, err)
			}

			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			s, err := ledger.AddSession(ctx, c, name, startAt)
			if err != nil {
				return err
			}
			if err := ledger.Save(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Scheduled %s %s %s to %s (%s)\n",
				formatter.CategoryBadge(c), formatter.Bold(s.Name),
				formatter.FormatTimestamp(s.Start), formatter.FormatTimestamp(s.End),
				formatter.TruncID(s.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "course, super_module or workshop")
	cmd.Flags().StringVar(&name, "name", "", "Session name")
	cmd.Flags().StringVar(&start, "start", "", "Start time, YYYY-MM-DD HH:MM")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}

func newSessionListCmd(app *App) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List scheduled sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			categories := domain.Categories
			if category != "" {
				c, err := domain.ParseCategory(category)
				if err != nil {
					return err
				}
				categories = []domain.Category{c}
			}

			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			headers := []string{"ID", "CATEGORY", "NAME", "START", "END", "HOURS", "ADJ"}
			var rows [][]string
			for _, c := range categories {
				for _, s := range ledger.Sessions(c) {
					rows = append(rows, []string{
						formatter.TruncID(s.ID),
						formatter.CategoryBadge(c),
						s.Name,
						formatter.FormatTimestamp(s.Start),
						formatter.FormatTimestamp(s.End),
						formatter.HoursStyled(s.Hours()),
						fmt.Sprintf("%d", len(s.Adjustments)),
					})
				}
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "No sessions scheduled.")
				return nil
			}
			fmt.Fprint(out, formatter.RenderTable(headers, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Only list this category")

	return cmd
}
