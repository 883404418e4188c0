// Package runner executes suites strictly sequentially: one child
// process is spawned, awaited, and torn down before the next test
// begins. Each test exercises exclusive access to shared runtime
// artifacts (save files, the screenshot directory, the working
// directory), so non-overlap is enforced by scheduling, not locks.
package runner

import (
	"vtest/internal/classify"
	"vtest/internal/dispatch"
	"vtest/internal/domain"
	"vtest/internal/ui"
)

// Runner drives suites through the dispatcher and classifier.
type Runner struct {
	dispatcher *dispatch.Dispatcher
	opts       classify.Options
	printer    *ui.Printer
	progress   *ui.ProgressBar

	completed int
	passed    int
	failed    int
}

// New creates a Runner.
func New(dispatcher *dispatch.Dispatcher, opts classify.Options, printer *ui.Printer) *Runner {
	return &Runner{dispatcher: dispatcher, opts: opts, printer: printer}
}

// SetProgress attaches a progress bar; nil disables progress output.
func (r *Runner) SetProgress(p *ui.ProgressBar) {
	r.progress = p
}

// RunSuites executes every suite in order. Per-test failures are
// absorbed into verdicts; this never returns an error.
func (r *Runner) RunSuites(suites []*domain.Suite) {
	for _, suite := range suites {
		r.runSuite(suite)
	}
	if r.progress != nil {
		r.progress.Finish()
	}
}

func (r *Runner) runSuite(suite *domain.Suite) {
	r.printer.SuiteHeader(suite)

	for _, desc := range suite.Tests {
		run := r.dispatcher.Dispatch(desc)
		classify.Classify(run, r.opts)
		suite.Runs = append(suite.Runs, run)

		r.printer.TestLine(run)
		r.track(run.Verdict)
	}

	r.printer.SuiteTotals(suite)
}

func (r *Runner) track(v domain.Verdict) {
	r.completed++
	switch v {
	case domain.VerdictPass:
		r.passed++
	case domain.VerdictFail:
		r.failed++
	}
	if r.progress != nil {
		r.progress.Update(r.completed, r.passed, r.failed)
	}
}
