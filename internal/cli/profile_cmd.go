package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/alexanderramin/aula/internal/config"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change the teacher profile",
	}

	cmd.AddCommand(
		newProfileShowCmd(app),
		newProfileSetCmd(app),
	)

	return cmd
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the teacher name and hourly rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			p := ledger.Profile()
			name := p.Name
			if name == "" {
				name = formatter.Dim("(not set)")
			}
			rate := formatter.FormatMoney(app.Config.Currency, p.HourlyRate)
			if p.HourlyRate == 0 {
				rate = formatter.Dim("(not set)")
			}

			var b strings.Builder
			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Teacher:"), formatter.Bold(name)))
			b.WriteString(fmt.Sprintf("%s  %s\n", formatter.Dim("Rate:   "), rate))
			b.WriteString(fmt.Sprintf("%s  %s", formatter.Dim("Store:  "), storeLocation(app)))
			fmt.Fprintln(cmd.OutOrStdout(), formatter.RenderBox("Profile", b.String()))
			return nil
		},
	}
}

func newProfileSetCmd(app *App) *cobra.Command {
	var name string
	var rate float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Set the teacher name and/or hourly rate",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			nameSet, rateSet := cmd.Flags().Changed("name"), cmd.Flags().Changed("rate")
			if !nameSet && !rateSet {
				return fmt.Errorf("nothing to set: pass --name and/or --rate")
			}

			ledger, closeLedger, err := app.openLedger(ctx)
			if err != nil {
				return err
			}
			defer closeLedger()

			if nameSet {
				if err := ledger.SetTeacherName(ctx, name); err != nil {
					return err
				}
			}
			if rateSet {
				if err := ledger.SetHourlyRate(ctx, rate); err != nil {
					return err
				}
			}
			if err := ledger.Save(ctx); err != nil {
				return err
			}

			p := ledger.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "Profile updated: %s at %s/hour\n",
				formatter.Bold(p.Name), formatter.FormatMoney(app.Config.Currency, p.HourlyRate))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Teacher name")
	cmd.Flags().Float64Var(&rate, "rate", 0, "Hourly rate")

	return cmd
}

func storeLocation(app *App) string {
	if app.Config.Store == config.StoreSQLite {
		return "sqlite " + app.Config.DBPath
	}
	return "json " + app.Config.RecordPath
}
