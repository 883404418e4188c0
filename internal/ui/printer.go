package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"vtest/internal/domain"
)

// Printer renders the narrative per-suite output. In JSON mode it is
// muted entirely so machine output stays parseable.
type Printer struct {
	verbose bool
	muted   bool
}

// NewPrinter creates a Printer. muted suppresses all narrative output.
func NewPrinter(verbose, muted bool) *Printer {
	if muted {
		color.NoColor = true
	}
	return &Printer{verbose: verbose, muted: muted}
}

var verdictLabels = map[domain.Verdict]func(format string, a ...interface{}) string{
	domain.VerdictPass:          color.GreenString,
	domain.VerdictFail:          color.RedString,
	domain.VerdictKnownFail:     color.YellowString,
	domain.VerdictTimeout:       color.MagentaString,
	domain.VerdictSkip:          color.YellowString,
	domain.VerdictIndeterminate: color.CyanString,
	domain.VerdictError:         color.RedString,
}

func verdictLabel(v domain.Verdict) string {
	label := strings.ToUpper(string(v))
	if v == domain.VerdictKnownFail {
		label = "KNOWN"
	}
	if v == domain.VerdictIndeterminate {
		label = "INDET"
	}
	if paint, ok := verdictLabels[v]; ok {
		return paint("%s", label)
	}
	return label
}

// Banner prints the run header.
func (p *Printer) Banner(console, emulator string, timeout time.Duration, totalTests int, generateRefs bool) {
	if p.muted {
		return
	}
	rule := strings.Repeat("=", 56)
	color.Blue(rule)
	color.Blue("        %s EMULATOR TEST SUITE", strings.ToUpper(console))
	color.Blue(rule)
	fmt.Println()
	fmt.Printf("Emulator:    %s\n", emulator)
	fmt.Printf("Timeout:     %s per test\n", timeout)
	fmt.Printf("Debug mode:  Enabled (DEBUG=1, HEADLESS=1)\n")
	fmt.Printf("Total tests: %d\n", totalTests)
	if generateRefs {
		color.Yellow("Mode:        Generating reference hashes")
	}
}

// SuiteHeader prints the suite banner before its tests run.
func (p *Printer) SuiteHeader(s *domain.Suite) {
	if p.muted {
		return
	}
	fmt.Println()
	color.Blue("=== %s ===", s.Name)
	if p.verbose && s.Description != "" {
		color.Cyan("    %s", s.Description)
	}
}

// TestLine prints one per-test result line with its evidence when
// verbose.
func (p *Printer) TestLine(run *domain.Run) {
	if p.muted || !p.verbose {
		return
	}
	fmt.Printf("  [%s] %s\n", verdictLabel(run.Verdict), run.Descriptor.Name)

	failing := run.Verdict == domain.VerdictFail || run.Verdict == domain.VerdictError
	if failing || run.Verdict == domain.VerdictSkip || run.Verdict == domain.VerdictKnownFail {
		if run.Diagnostic != "" {
			fmt.Printf("       %s\n", run.Diagnostic)
		}
		if run.Descriptor.Notes != "" {
			fmt.Printf("       Note: %s\n", run.Descriptor.Notes)
		}
	}
	if failing {
		for _, line := range evidenceLines(run) {
			fmt.Printf("       %s\n", line)
		}
	}
}

// evidenceLines picks the output lines that carry the failing signal.
func evidenceLines(run *domain.Run) []string {
	var lines []string
	for _, line := range strings.Split(run.Output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.Contains(line, "FAILED") || strings.Contains(line, "Failed") ||
			strings.Contains(line, "BLARGG_") || strings.Contains(line, "Status code") {
			lines = append(lines, trimmed)
		}
		if len(lines) >= 5 {
			break
		}
	}
	return lines
}

// SuiteTotals prints the one-line count summary after a suite finishes.
func (p *Printer) SuiteTotals(s *domain.Suite) {
	if p.muted {
		return
	}
	parts := []string{
		color.GreenString("Passed: %d", s.Passed()),
		color.RedString("Failed: %d", s.Failed()),
	}
	if n := s.KnownFails(); n > 0 {
		parts = append(parts, color.YellowString("Known: %d", n))
	}
	if n := s.Timeouts(); n > 0 {
		parts = append(parts, color.YellowString("Timeout: %d", n))
	}
	if n := s.Indeterminate(); n > 0 {
		parts = append(parts, color.CyanString("Indeterminate: %d", n))
	}
	if n := s.Errors(); n > 0 {
		parts = append(parts, color.RedString("Errors: %d", n))
	}
	if n := s.Skipped(); n > 0 {
		parts = append(parts, fmt.Sprintf("Skipped: %d", n))
	}
	fmt.Println("  " + strings.Join(parts, " | "))
}
