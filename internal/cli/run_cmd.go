package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexanderramin/aula/internal/cli/formatter"
	"github.com/alexanderramin/aula/internal/domain"
	"github.com/alexanderramin/aula/internal/service"
	"github.com/spf13/cobra"
)

var quitKeywords = map[string]bool{"sair": true, "quit": true, "exit": true}

const adjustKeyword = "adjust"

// errInputClosed ends the scheduling loop when stdin runs out mid-entry.
var errInputClosed = errors.New("input closed")

// runInteractive is the scheduling session: profile prompts, the entry loop,
// the report, then a single save.
func runInteractive(cmd *cobra.Command, app *App, plain bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	ledger, closeLedger, err := app.openLedger(ctx)
	if err != nil {
		return err
	}
	defer closeLedger()

	prompt := newPromptReader(cmd.InOrStdin(), out)
	if err := ensureProfile(ctx, app, ledger, prompt); err != nil {
		return err
	}

	if err := scheduleLoop(ctx, ledger, prompt, out); err != nil {
		return err
	}

	resp, err := ledger.Report(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, formatter.FormatReport(resp, formatter.ReportOptions{
		Currency: app.Config.Currency,
		Plain:    plain,
	}))

	return ledger.Save(ctx)
}

// ensureProfile asks for whichever profile fields are still unset. A zero
// rate counts as unset.
func ensureProfile(ctx context.Context, app *App, ledger service.LedgerService, prompt *promptReader) error {
	p := ledger.Profile()
	if p.Complete() {
		return nil
	}
	askName, askRate := p.Name == "", p.HourlyRate == 0

	var name, rateText string
	if app.interactive() {
		if form := wizardProfile(askName, askRate, &name, &rateText); form != nil {
			if err := form.Run(); err != nil {
				return err
			}
		}
	} else {
		var err error
		if askName {
			if name, err = prompt.Ask("Teacher name: "); err != nil {
				return fmt.Errorf("reading teacher name: %w", err)
			}
		}
		if askRate {
			if rateText, err = prompt.Ask("Hourly rate: "); err != nil {
				return fmt.Errorf("reading hourly rate: %w", err)
			}
		}
	}

	if askName {
		if err := ledger.SetTeacherName(ctx, name); err != nil {
			return err
		}
	}
	if askRate {
		rate, err := parseRate(rateText)
		if err != nil {
			return err
		}
		if err := ledger.SetHourlyRate(ctx, rate); err != nil {
			return err
		}
	}
	return nil
}

func scheduleLoop(ctx context.Context, ledger service.LedgerService, prompt *promptReader, out io.Writer) error {
	for {
		keyword, err := prompt.Ask("\nSession type (course, super_module, workshop), 'adjust', or 'quit' to finish: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		keyword = strings.ToLower(keyword)
		switch {
		case quitKeywords[keyword]:
			return nil
		case keyword == adjustKeyword:
			err = promptAdjustment(ctx, ledger, prompt, out)
		default:
			err = promptSession(ctx, ledger, prompt, out, keyword)
		}

		if errors.Is(err, errInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// promptSession schedules one session. Only a malformed start time is
// fatal; an unknown category or a conflict is reported and skipped.
func promptSession(ctx context.Context, ledger service.LedgerService, prompt *promptReader, out io.Writer, keyword string) error {
	c, err := domain.ParseCategory(keyword)
	if err != nil {
		fmt.Fprintln(out, formatter.StyleRed.Render(fmt.Sprintf("Unknown session type %q.", keyword)))
		return nil
	}

	name, err := askOrClosed(prompt, "Session name: ")
	if err != nil {
		return err
	}
	raw, err := askOrClosed(prompt, "Start (YYYY-MM-DD HH:MM): ")
	if err != nil {
		return err
	}
	start, err := domain.ParseTimestamp(raw)
	if err != nil {
		return fmt.Errorf("invalid start %q, want YYYY-MM-DD HH:MM: %w", raw, err)
	}

	s, err := ledger.AddSession(ctx, c, name, start)
	if errors.Is(err, service.ErrConflict) {
		fmt.Fprintln(out, formatter.StyleRed.Render("Schedule conflict detected!"))
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s %s to %s\n",
		formatter.CategoryBadge(c), formatter.Bold(s.Name),
		formatter.FormatTimestamp(s.Start), formatter.FormatTimestamp(s.End))
	return nil
}

func promptAdjustment(ctx context.Context, ledger service.LedgerService, prompt *promptReader, out io.Writer) error {
	keyword, err := askOrClosed(prompt, "Session type: ")
	if err != nil {
		return err
	}
	c, err := domain.ParseCategory(keyword)
	if err != nil {
		fmt.Fprintln(out, formatter.StyleRed.Render(fmt.Sprintf("Unknown session type %q.", keyword)))
		return nil
	}

	name, err := askOrClosed(prompt, "Session name: ")
	if err != nil {
		return err
	}
	hoursText, err := askOrClosed(prompt, "Hours to add (negative to remove): ")
	if err != nil {
		return err
	}
	delta, err := strconv.ParseFloat(strings.ReplaceAll(hoursText, ",", "."), 64)
	if err != nil {
		fmt.Fprintln(out, formatter.StyleRed.Render(fmt.Sprintf("Invalid number of hours %q.", hoursText)))
		return nil
	}
	reason, err := askOrClosed(prompt, "Reason: ")
	if err != nil {
		return err
	}

	s, err := ledger.Adjust(ctx, c, name, delta, reason)
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		fmt.Fprintln(out, formatter.StyleYellow.Render(fmt.Sprintf("No %s named %q; nothing adjusted.", c.Label(), name)))
		return nil
	case errors.Is(err, service.ErrInvalidInput):
		fmt.Fprintln(out, formatter.StyleRed.Render(err.Error()))
		return nil
	case err != nil:
		return err
	}

	fmt.Fprintf(out, "Adjusted %s: now ends %s (%s hours)\n",
		formatter.Bold(s.Name), formatter.FormatTimestamp(s.End), formatter.FormatHours(s.Hours()))
	return nil
}

func askOrClosed(prompt *promptReader, message string) (string, error) {
	answer, err := prompt.Ask(message)
	if errors.Is(err, io.EOF) {
		return "", errInputClosed
	}
	return answer, err
}
