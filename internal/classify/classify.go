// Package classify maps captured evidence to verdicts, one pure
// classifier per evaluation mode.
//
// All three classifiers share one structural rule: whenever the raw
// signal indicates failure and the descriptor expects known_fail, the
// result is downgraded to known_fail instead of fail. The substitution
// is always the last step before returning a terminal failing verdict
// (domain.Run.Failing).
package classify

import (
	"vtest/internal/domain"
)

// Options parameterize classification for one run of the harness.
type Options struct {
	// Tag is the console marker tag, e.g. "GB" in "[GB] PASSED".
	Tag string
	// SilentCompletion is the verdict for a memory-mode run that exits 0
	// without asserting a status. The original per-console runners
	// disagreed (indeterminate vs pass); the catalog decides.
	SilentCompletion domain.Verdict
	// GenerateRefs makes visual classification record checksums instead
	// of comparing them.
	GenerateRefs bool
	// Refs collects generated checksums when GenerateRefs is set.
	Refs *RefTable
}

var classifiers = map[domain.Mode]func(*domain.Run, Options){
	domain.ModeText:   classifyText,
	domain.ModeMemory: classifyMemory,
	domain.ModeVisual: classifyVisual,
}

// Classify derives the verdict for a dispatched run. Runs that already
// carry a verdict (skip, timeout, error) are left untouched.
func Classify(run *domain.Run, opts Options) {
	if run.Verdict != "" {
		return
	}
	if opts.SilentCompletion == "" {
		opts.SilentCompletion = domain.VerdictIndeterminate
	}
	classify, ok := classifiers[run.Descriptor.Mode]
	if !ok {
		classify = classifyText
	}
	classify(run, opts)
}
