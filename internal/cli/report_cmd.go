package cli

import (
	"fmt"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var plain, copyOut bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Per-category hours, income and efficiency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			resp, err := ledger.Report(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, formatter.FormatReport(resp, formatter.ReportOptions{
				Currency: app.Config.Currency,
				Plain:    plain,
			}))

			if copyOut {
				if app.CopyToClipboard == nil {
					return fmt.Errorf("clipboard is not available")
				}
				text := formatter.FormatReport(resp, formatter.ReportOptions{Currency: app.Config.Currency, Plain: true})
				if err := app.CopyToClipboard(text); err != nil {
					return fmt.Errorf("copying report: %w", err)
				}
				fmt.Fprintln(out, formatter.Dim("Report copied to clipboard."))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print without styling")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy the plain report to the clipboard")

	return cmd
}
