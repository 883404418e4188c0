package classify

import (
	"fmt"
	"regexp"
	"strconv"

	"vtest/internal/domain"
)

// Blargg-style tests write a status byte and a trailing message to a
// well-known memory location; the emulator echoes both to its debug
// output as "BLARGG_STATUS: 0xNN" and "BLARGG_RESULT: <text>".
const (
	statusRunning    = 0x80
	statusNeedsReset = 0x81
)

var (
	blarggStatusRe = regexp.MustCompile(`BLARGG_STATUS:\s*0x([0-9A-Fa-f]+)`)
	blarggResultRe = regexp.MustCompile(`BLARGG_RESULT:\s*(.+)`)
	statusPassRe   = regexp.MustCompile(`(?i)Status code:\s*0\s*\(PASSED\)`)
	statusFailRe   = regexp.MustCompile(`(?i)Status code:\s*(\d+)\s*\(FAILED\)`)
	passedTokenRe  = regexp.MustCompile(`\bPASSED\b`)
	failedTokenRe  = regexp.MustCompile(`\bFAILED\b`)
)

// classifyMemory extracts the echoed status code. Code 0 passes; the
// running/needs-reset codes mean the run was cut off before the test
// finished and are not penalized. With no status label at all, alternate
// literal tokens are tried before the exit-code fallback.
func classifyMemory(run *domain.Run, opts Options) {
	output := run.Output

	if m := blarggStatusRe.FindStringSubmatch(output); m != nil {
		code64, _ := strconv.ParseInt(m[1], 16, 32)
		code := int(code64)
		run.StatusCode = code
		switch code {
		case 0:
			run.Verdict = domain.VerdictPass
		case statusRunning:
			run.Verdict = domain.VerdictIndeterminate
			run.Diagnostic = "test still running"
		case statusNeedsReset:
			run.Verdict = domain.VerdictIndeterminate
			run.Diagnostic = "test needs reset"
		default:
			run.Diagnostic = fmt.Sprintf("failed with status code %d", code)
			if msg := resultText(output); msg != "" {
				run.Diagnostic += ": " + msg
			}
			run.Verdict = run.Failing()
		}
		return
	}

	if statusPassRe.MatchString(output) {
		run.StatusCode = 0
		run.Verdict = domain.VerdictPass
		return
	}
	if m := statusFailRe.FindStringSubmatch(output); m != nil {
		code, _ := strconv.Atoi(m[1])
		run.StatusCode = code
		run.Diagnostic = fmt.Sprintf("failed with status code %d", code)
		run.Verdict = run.Failing()
		return
	}

	if passedTokenRe.MatchString(output) {
		run.Verdict = domain.VerdictPass
		return
	}
	if failedTokenRe.MatchString(output) {
		run.Diagnostic = "matched FAILED token"
		if msg := resultText(output); msg != "" {
			run.Diagnostic += ": " + msg
		}
		run.Verdict = run.Failing()
		return
	}

	if run.ExitCode == 0 {
		// Ran to completion without asserting a status. Not a confirmed
		// pass; the catalog's silent-completion policy decides.
		run.Verdict = opts.SilentCompletion
		run.Diagnostic = "no status label in output"
		return
	}
	run.Diagnostic = fmt.Sprintf("no status label, exit code %d", run.ExitCode)
	run.Verdict = run.Failing()
}

func resultText(output string) string {
	m := blarggResultRe.FindStringSubmatch(output)
	if m == nil {
		return ""
	}
	return m[1]
}
