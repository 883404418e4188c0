package ui

import (
	"strings"
	"testing"

	"vtest/internal/domain"
)

func TestEvidenceLines(t *testing.T) {
	run := domain.NewRun(&domain.Descriptor{Name: "dmg_sound"})
	run.Output = strings.Join([]string{
		"booting",
		"BLARGG_STATUS: 0x03",
		"",
		"  Failed #3  ",
		"frames rendered: 1500",
		"Status code: 3 (FAILED)",
	}, "\n")

	lines := evidenceLines(run)
	want := []string{
		"BLARGG_STATUS: 0x03",
		"Failed #3",
		"Status code: 3 (FAILED)",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d evidence lines, got %d: %v", len(want), len(lines), lines)
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: expected %q, got %q", i, w, lines[i])
		}
	}
}

func TestEvidenceLinesCapped(t *testing.T) {
	run := domain.NewRun(&domain.Descriptor{Name: "noisy"})
	run.Output = strings.Repeat("FAILED again\n", 20)

	if got := len(evidenceLines(run)); got != 5 {
		t.Errorf("expected evidence capped at 5 lines, got %d", got)
	}
}
