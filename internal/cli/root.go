package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/aula/internal/config"
	"github.com/alexanderramin/aula/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// LedgerFactory opens a ledger service for cfg. The returned closer is
// called once the command finishes.
type LedgerFactory func(cfg config.Config) (service.LedgerService, io.Closer, error)

// App holds the configuration and collaborators used by CLI commands.
type App struct {
	Config    config.Config
	NewLedger LedgerFactory

	// IsInteractive reports whether stdin is a terminal; the profile is
	// then collected with a form instead of line prompts.
	IsInteractive func() bool

	// CopyToClipboard backs "report --copy".
	CopyToClipboard func(text string) error
}

// NewRootCmd creates the top-level "aula" command. Run without a
// subcommand it starts the interactive scheduling session.
func NewRootCmd(app *App) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:           "aula",
		Short:         "Class session ledger: conflicts, hours, income and efficiency",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.Config.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(cmd, app, plain)
		},
	}

	bindStoreFlags(root.PersistentFlags(), &app.Config)
	root.Flags().BoolVar(&plain, "plain", false, "Print the final report without styling")

	root.AddCommand(
		newSessionCmd(app),
		newAdjustCmd(app),
		newReportCmd(app),
		newProfileCmd(app),
		newHistoryCmd(app),
	)

	return root
}

func bindStoreFlags(fs *pflag.FlagSet, cfg *config.Config) {
	fs.StringVar(&cfg.Store, "store", cfg.Store, "Record store: json or sqlite")
	fs.StringVar(&cfg.RecordPath, "record", cfg.RecordPath, "Path of the JSON record")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "Path of the SQLite database")
	fs.BoolVar(&cfg.CrossCategoryConflicts, "cross-category", cfg.CrossCategoryConflicts,
		"Check new sessions for conflicts against every category")
}

// openLedger builds and loads the ledger. close must be called when done.
func (a *App) openLedger(ctx context.Context) (ledger service.LedgerService, closeFn func(), err error) {
	if a.NewLedger == nil {
		return nil, nil, fmt.Errorf("ledger is not configured")
	}
	ledger, closer, err := a.NewLedger(a.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("opening record store: %w", err)
	}
	closeFn = func() {
		if closer != nil {
			_ = closer.Close()
		}
	}
	if err := ledger.Load(ctx); err != nil {
		closeFn()
		return nil, nil, err
	}
	return ledger, closeFn, nil
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
