package classify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"vtest/internal/domain"
)

// The text-signal scan is an ordered decision list: the first matching
// rule in this order wins, regardless of where its marker occurs in the
// captured text. Most specific markers come first.
type textRule struct {
	name string
	pass bool
	// match reports whether the rule applies and, for failing rules,
	// any extracted failing sub-test number (0 when absent).
	match func(output, lower, tag string) (bool, int)
}

var (
	tagFailNumberRe  = regexp.MustCompile(`FAILED.*?test\s*#?(\d+)`)
	bareFailNumberRe = regexp.MustCompile(`failed test\s*#?(\d+)`)
)

var textRules = []textRule{
	{
		name: "tag-pass",
		pass: true,
		match: func(output, _, tag string) (bool, int) {
			return strings.Contains(output, "["+tag+"] PASSED"), 0
		},
	},
	{
		name: "tag-fail",
		match: func(output, _, tag string) (bool, int) {
			idx := strings.Index(output, "["+tag+"] FAILED")
			if idx < 0 {
				return false, 0
			}
			return true, extractNumber(tagFailNumberRe, output[idx:])
		},
	},
	{
		name: "bare-pass",
		pass: true,
		match: func(output, _, _ string) (bool, int) {
			return strings.Contains(output, "Passed"), 0
		},
	},
	{
		name: "bare-fail",
		match: func(output, lower, _ string) (bool, int) {
			if !strings.Contains(output, "Failed") {
				return false, 0
			}
			return true, extractNumber(bareFailNumberRe, lower)
		},
	},
	{
		name: "generic-pass",
		pass: true,
		match: func(_, lower, _ string) (bool, int) {
			return strings.Contains(lower, "all tests passed") || strings.Contains(lower, "tests passed"), 0
		},
	},
	{
		name: "generic-fail",
		match: func(_, lower, _ string) (bool, int) {
			return strings.Contains(lower, "error"), 0
		},
	},
}

func extractNumber(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// classifyText scans for line-oriented pass/fail markers in priority
// order, falling back to the exit code when no marker is present.
func classifyText(run *domain.Run, opts Options) {
	lower := strings.ToLower(run.Output)

	for _, rule := range textRules {
		matched, number := rule.match(run.Output, lower, opts.Tag)
		if !matched {
			continue
		}
		if rule.pass {
			run.Verdict = domain.VerdictPass
			return
		}
		if number > 0 {
			run.FailedNumber = number
			run.Diagnostic = fmt.Sprintf("failed at test #%d", number)
		} else {
			run.Diagnostic = "matched failure marker " + rule.name
		}
		run.Verdict = run.Failing()
		return
	}

	if run.ExitCode == 0 {
		run.Verdict = domain.VerdictPass
		return
	}
	run.Diagnostic = fmt.Sprintf("no marker found, exit code %d", run.ExitCode)
	run.Verdict = run.Failing()
}
