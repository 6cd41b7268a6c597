package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/aula/internal/cli"
	"github.com/alexanderramin/aula/internal/config"
	"github.com/alexanderramin/aula/internal/repository"
	"github.com/alexanderramin/aula/internal/service"
	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	app := &cli.App{
		Config:          cfg,
		NewLedger:       newLedger,
		CopyToClipboard: clipboard.WriteAll,
	}

	// Detect interactive terminal for the profile form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// newLedger runs after flag parsing, so cfg already carries --store/--record.
func newLedger(cfg config.Config) (service.LedgerService, io.Closer, error) {
	store, closer, err := repository.OpenRecordStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogEvents {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	ledger := service.NewLedgerService(store, service.LedgerOptions{
		CrossCategoryConflicts: cfg.CrossCategoryConflicts,
	}, observer)
	return ledger, closer, nil
}
