package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vtest/internal/domain"
)

func textRun(output string, exitCode int) *domain.Run {
	run := domain.NewRun(&domain.Descriptor{
		Name: "cpu_instrs",
		Path: "cpu_instrs/cpu_instrs.gb",
		Mode: domain.ModeText,
	})
	run.Spawned = true
	run.Output = output
	run.ExitCode = exitCode
	return run
}

func TestClassifyText_Markers(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		exitCode int
		verdict  domain.Verdict
	}{
		{
			name:    "tagged pass",
			output:  "booting...\n[GB] PASSED\n",
			verdict: domain.VerdictPass,
		},
		{
			name:    "tagged fail",
			output:  "[GB] FAILED test #3\n",
			verdict: domain.VerdictFail,
		},
		{
			name:    "bare pass",
			output:  "cpu_instrs\n\nPassed all tests\n",
			verdict: domain.VerdictPass,
		},
		{
			name:    "bare fail",
			output:  "instr_timing\nFailed\n",
			verdict: domain.VerdictFail,
		},
		{
			name:    "generic pass phrase",
			output:  "summary: all tests passed\n",
			verdict: domain.VerdictPass,
		},
		{
			name:    "generic error token",
			output:  "error: unmapped read at 0xff4d\n",
			verdict: domain.VerdictFail,
		},
		{
			name:     "no marker exit zero",
			output:   "frames rendered: 3600\n",
			exitCode: 0,
			verdict:  domain.VerdictPass,
		},
		{
			name:     "no marker nonzero exit",
			output:   "frames rendered: 12\n",
			exitCode: 2,
			verdict:  domain.VerdictFail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := textRun(tt.output, tt.exitCode)
			Classify(run, Options{Tag: "GB"})
			assert.Equal(t, tt.verdict, run.Verdict)
		})
	}
}

// A tagged PASSED anywhere in the output wins even when failure markers
// also appear, because the marker scan is ordered by specificity, not
// by position in the stream.
func TestClassifyText_PriorityOrder(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		verdict domain.Verdict
	}{
		{
			name:    "tag pass beats earlier bare fail",
			output:  "Failed checkpoint 2\nretrying...\n[GB] PASSED\n",
			verdict: domain.VerdictPass,
		},
		{
			name:    "tag fail beats bare pass",
			output:  "Passed stage 1\n[GB] FAILED\n",
			verdict: domain.VerdictFail,
		},
		{
			name:    "bare pass beats generic error",
			output:  "error log enabled\nPassed\n",
			verdict: domain.VerdictPass,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			run := textRun(tt.output, 0)
			Classify(run, Options{Tag: "GB"})
			assert.Equal(t, tt.verdict, run.Verdict)
		})
	}
}

func TestClassifyText_FailedNumberExtraction(t *testing.T) {
	run := textRun("[NES] FAILED on test #7 (sprite overflow)\n", 1)
	Classify(run, Options{Tag: "NES"})

	assert.Equal(t, domain.VerdictFail, run.Verdict)
	assert.Equal(t, 7, run.FailedNumber)
	assert.Contains(t, run.Diagnostic, "#7")
}

func TestClassifyText_BareFailedNumber(t *testing.T) {
	run := textRun("oam_bug\nFailed test #2\n", 1)
	Classify(run, Options{Tag: "GB"})

	assert.Equal(t, domain.VerdictFail, run.Verdict)
	assert.Equal(t, 2, run.FailedNumber)
}

func TestClassifyText_KnownFailDowngrade(t *testing.T) {
	for _, output := range []string{
		"[GB] FAILED\n",
		"Failed\n",
		"error: stub opcode\n",
	} {
		run := textRun(output, 1)
		run.Descriptor.Expected = domain.ExpectKnownFail
		Classify(run, Options{Tag: "GB"})
		assert.Equal(t, domain.VerdictKnownFail, run.Verdict, "output %q", output)
	}

	// The downgrade never touches an actual pass.
	run := textRun("[GB] PASSED\n", 0)
	run.Descriptor.Expected = domain.ExpectKnownFail
	Classify(run, Options{Tag: "GB"})
	assert.Equal(t, domain.VerdictPass, run.Verdict)
}

func TestClassify_PresetVerdictUntouched(t *testing.T) {
	run := textRun("[GB] PASSED\n", 0)
	run.Verdict = domain.VerdictTimeout
	Classify(run, Options{Tag: "GB"})
	assert.Equal(t, domain.VerdictTimeout, run.Verdict)
}
