// Package report renders the same underlying results two ways: a
// narrative form for humans and a structured JSON form for pipelines.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"vtest/internal/classify"
	"vtest/internal/domain"
)

// Reporter renders final results to a writer.
type Reporter struct {
	w io.Writer
}

// New creates a Reporter writing to w.
func New(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

type jsonSummary struct {
	Passed        int     `json:"passed"`
	Failed        int     `json:"failed"`
	KnownFailures int     `json:"known_failures"`
	Timeouts      int     `json:"timeouts"`
	Skipped       int     `json:"skipped"`
	Indeterminate int     `json:"indeterminate"`
	Errors        int     `json:"errors"`
	PassRate      float64 `json:"pass_rate"`
}

type jsonTest struct {
	Name          string `json:"name"`
	Path          string `json:"path"`
	Mode          string `json:"mode"`
	Result        string `json:"result"`
	StatusCode    *int   `json:"status_code,omitempty"`
	FailedNumber  int    `json:"failed_test_number,omitempty"`
	ReferenceHash string `json:"reference_hash,omitempty"`
	ActualHash    string `json:"actual_hash,omitempty"`
	ExitCode      *int   `json:"exit_code,omitempty"`
	Diagnostic    string `json:"diagnostic,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type jsonSuite struct {
	Name          string     `json:"name"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
	Passed        int        `json:"passed"`
	Failed        int        `json:"failed"`
	KnownFailures int        `json:"known_failures"`
	Timeouts      int        `json:"timeouts"`
	Skipped       int        `json:"skipped"`
	Indeterminate int        `json:"indeterminate"`
	Errors        int        `json:"errors"`
	Tests         []jsonTest `json:"tests"`
}

type jsonOutput struct {
	Summary       jsonSummary         `json:"summary"`
	Suites        []jsonSuite         `json:"suites"`
	GeneratedRefs []classify.RefEntry `json:"generated_refs,omitempty"`
}

// PrintJSON writes the machine-readable rendering.
func (r *Reporter) PrintJSON(suites []*domain.Suite, refs *classify.RefTable) error {
	sum := domain.Summarize(suites)
	out := jsonOutput{
		Summary: jsonSummary{
			Passed:        sum.Passed,
			Failed:        sum.Failed,
			KnownFailures: sum.KnownFails,
			Timeouts:      sum.Timeouts,
			Skipped:       sum.Skipped,
			Indeterminate: sum.Indeterminate,
			Errors:        sum.Errors,
			PassRate:      round1(sum.PassRate()),
		},
	}
	for _, s := range suites {
		out.Suites = append(out.Suites, buildJSONSuite(s))
	}
	if refs != nil && refs.Len() > 0 {
		out.GeneratedRefs = refs.Entries()
	}

	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func buildJSONSuite(s *domain.Suite) jsonSuite {
	js := jsonSuite{
		Name:          s.Name,
		Description:   s.Description,
		Priority:      s.Priority,
		Passed:        s.Passed(),
		Failed:        s.Failed(),
		KnownFailures: s.KnownFails(),
		Timeouts:      s.Timeouts(),
		Skipped:       s.Skipped(),
		Indeterminate: s.Indeterminate(),
		Errors:        s.Errors(),
	}
	for _, run := range s.Runs {
		jt := jsonTest{
			Name:          run.Descriptor.Name,
			Path:          run.Descriptor.Path,
			Mode:          string(run.Descriptor.Mode),
			Result:        string(run.Verdict),
			FailedNumber:  run.FailedNumber,
			ReferenceHash: run.Descriptor.ReferenceHash,
			ActualHash:    run.ActualHash,
			Diagnostic:    run.Diagnostic,
			Notes:         run.Descriptor.Notes,
		}
		if run.StatusCode >= 0 {
			code := run.StatusCode
			jt.StatusCode = &code
		}
		if run.Spawned && !run.TimedOut {
			code := run.ExitCode
			jt.ExitCode = &code
		}
		js.Tests = append(js.Tests, jt)
	}
	return js
}

// PrintNarrative writes the human-readable final results block.
func (r *Reporter) PrintNarrative(suites []*domain.Suite) {
	sum := domain.Summarize(suites)
	rule := strings.Repeat("=", 56)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, color.BlueString(rule))
	fmt.Fprintln(r.w, color.BlueString("                 FINAL RESULTS"))
	fmt.Fprintln(r.w, color.BlueString(rule))
	fmt.Fprintln(r.w)

	if len(suites) > 1 {
		fmt.Fprintf(r.w, "  %-35s %6s %6s %6s\n", "Test Suite", "Pass", "Fail", "Known")
		divider := fmt.Sprintf("  %s %s %s %s", strings.Repeat("-", 35), strings.Repeat("-", 6), strings.Repeat("-", 6), strings.Repeat("-", 6))
		fmt.Fprintln(r.w, divider)
		for _, s := range suites {
			fmt.Fprintf(r.w, "  %-35s %6d %6d %6d\n", truncate(s.Name, 35), s.Passed(), s.Failed(), s.KnownFails())
		}
		fmt.Fprintln(r.w, divider)
		fmt.Fprintf(r.w, "  %-35s %6d %6d %6d\n", "TOTAL", sum.Passed, sum.Failed, sum.KnownFails)
		fmt.Fprintln(r.w)
	}

	fmt.Fprintf(r.w, "  %s\n", color.GreenString("Passed:        %d", sum.Passed))
	fmt.Fprintf(r.w, "  %s\n", color.RedString("Failed:        %d", sum.Failed))
	fmt.Fprintf(r.w, "  %s\n", color.YellowString("Known Issues:  %d", sum.KnownFails))
	fmt.Fprintf(r.w, "  Timeouts:      %d\n", sum.Timeouts)
	fmt.Fprintf(r.w, "  Skipped:       %d\n", sum.Skipped)
	if sum.Indeterminate > 0 {
		fmt.Fprintf(r.w, "  %s\n", color.CyanString("Indeterminate: %d", sum.Indeterminate))
	}
	if sum.Errors > 0 {
		fmt.Fprintf(r.w, "  %s\n", color.RedString("Errors:        %d", sum.Errors))
	}

	if sum.TotalRun() > 0 {
		rate := sum.PassRate()
		paint := color.GreenString
		if rate < 50 {
			paint = color.RedString
		} else if rate < 80 {
			paint = color.YellowString
		}
		fmt.Fprintf(r.w, "\n  Pass Rate: %s\n", paint("%.1f%%", rate))
	}
	fmt.Fprintln(r.w)
}

// PrintGeneratedRefs emits the path → checksum table from a
// reference-generation run, ready for promotion into the catalog.
func (r *Reporter) PrintGeneratedRefs(refs *classify.RefTable) {
	if refs == nil || refs.Len() == 0 {
		return
	}
	rule := strings.Repeat("=", 56)
	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, color.BlueString(rule))
	fmt.Fprintln(r.w, color.BlueString("         GENERATED REFERENCE HASHES"))
	fmt.Fprintln(r.w, color.BlueString(rule))
	fmt.Fprintln(r.w, "\nAdd these to your catalog as reference_hash values:")
	fmt.Fprintln(r.w)
	for _, entry := range refs.Entries() {
		fmt.Fprintf(r.w, "  %s: %q\n", entry.Path, entry.Hash)
	}
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
