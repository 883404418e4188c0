package domain

// Summary is the global projection over all suites, computed once at the
// end of a run.
type Summary struct {
	Passed        int
	Failed        int
	KnownFails    int
	Timeouts      int
	Skipped       int
	Indeterminate int
	Errors        int
}

// Summarize rolls per-suite projections into a Summary.
func Summarize(suites []*Suite) Summary {
	var sum Summary
	for _, s := range suites {
		sum.Passed += s.Passed()
		sum.Failed += s.Failed()
		sum.KnownFails += s.KnownFails()
		sum.Timeouts += s.Timeouts()
		sum.Skipped += s.Skipped()
		sum.Indeterminate += s.Indeterminate()
		sum.Errors += s.Errors()
	}
	return sum
}

// TotalRun counts the runs that produced a judged outcome.
func (s Summary) TotalRun() int {
	return s.Passed + s.Failed + s.KnownFails
}

// PassRate returns the pass percentage over judged runs, 0 when none ran.
func (s Summary) PassRate() float64 {
	total := s.TotalRun()
	if total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(total) * 100
}

// ExitCode is the process exit status contract: nonzero if and only if
// the global failed count is greater than zero.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}
