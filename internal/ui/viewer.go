package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"vtest/internal/domain"
)

// FailureViewer browses the current run's failed tests and their
// captured evidence in an interactive TUI. Results are not persisted;
// the viewer only sees this invocation's runs.
type FailureViewer struct{}

// NewFailureViewer creates a FailureViewer.
func NewFailureViewer() *FailureViewer {
	return &FailureViewer{}
}

// failedRuns collects the runs worth inspecting: hard failures and
// harness errors, in suite order.
func failedRuns(suites []*domain.Suite) []*domain.Run {
	var failed []*domain.Run
	for _, s := range suites {
		for _, r := range s.Runs {
			if r.Verdict == domain.VerdictFail || r.Verdict == domain.VerdictError {
				failed = append(failed, r)
			}
		}
	}
	return failed
}

// View opens the viewer. It returns immediately when there is nothing
// to show.
func (v *FailureViewer) View(suites []*domain.Suite) error {
	failed := failedRuns(suites)
	if len(failed) == 0 {
		color.Green("✓ No test failures to inspect")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(true).
		SetHighlightFullLine(true)
	list.SetBorder(true).SetTitle(fmt.Sprintf(" Failures (%d) ", len(failed)))
	list.SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle(" Evidence ")

	renderDetails := func(run *domain.Run) {
		var b strings.Builder
		fmt.Fprintf(&b, "[yellow]Test:[white] %s\n", run.Descriptor.Name)
		fmt.Fprintf(&b, "[yellow]ROM:[white] %s\n", run.Descriptor.Path)
		fmt.Fprintf(&b, "[yellow]Verdict:[red] %s[white]\n", run.Verdict)
		if run.Diagnostic != "" {
			fmt.Fprintf(&b, "[yellow]Diagnostic:[white] %s\n", run.Diagnostic)
		}
		if run.StatusCode >= 0 {
			fmt.Fprintf(&b, "[yellow]Status code:[white] %d\n", run.StatusCode)
		}
		if run.FailedNumber > 0 {
			fmt.Fprintf(&b, "[yellow]Failed at test:[white] #%d\n", run.FailedNumber)
		}
		if run.ActualHash != "" {
			fmt.Fprintf(&b, "[yellow]Computed hash:[white] %s\n", run.ActualHash)
			if ref := run.Descriptor.ReferenceHash; ref != "" {
				fmt.Fprintf(&b, "[yellow]Reference hash:[white] %s\n", ref)
			}
		}
		if run.Spawned {
			fmt.Fprintf(&b, "[yellow]Exit code:[white] %d\n", run.ExitCode)
			fmt.Fprintf(&b, "[yellow]Duration:[white] %s\n", run.Duration.Round(0))
		}
		if run.Descriptor.Notes != "" {
			fmt.Fprintf(&b, "[yellow]Notes:[white] %s\n", run.Descriptor.Notes)
		}
		if run.Output != "" {
			fmt.Fprintf(&b, "\n[yellow]Captured output:[white]\n%s", tview.Escape(run.Output))
		}
		details.SetText(b.String())
		details.ScrollToBeginning()
	}

	for i, run := range failed {
		list.AddItem(
			fmt.Sprintf("[yellow]%d.[white] %s", i+1, run.Descriptor.Name),
			run.Descriptor.Path,
			0, nil,
		)
	}
	list.SetChangedFunc(func(index int, _, _ string, _ rune) {
		if index >= 0 && index < len(failed) {
			renderDetails(failed[index])
		}
	})
	renderDetails(failed[0])

	flex := tview.NewFlex().
		AddItem(list, 0, 1, true).
		AddItem(details, 0, 2, false)

	app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyEscape, event.Rune() == 'q':
			app.Stop()
			return nil
		case event.Key() == tcell.KeyTab:
			if app.GetFocus() == list {
				app.SetFocus(details)
			} else {
				app.SetFocus(list)
			}
			return nil
		}
		return event
	})

	return app.SetRoot(flex, true).Run()
}
