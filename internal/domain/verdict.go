package domain

// Verdict classifies the outcome of one test run.
type Verdict string

const (
	VerdictPass      Verdict = "pass"
	VerdictFail      Verdict = "fail"
	VerdictKnownFail Verdict = "known_fail"
	VerdictTimeout   Verdict = "timeout"
	VerdictSkip      Verdict = "skip"
	// VerdictIndeterminate means the run completed cleanly but no
	// pass/fail signal could be extracted. Distinct from pass.
	VerdictIndeterminate Verdict = "indeterminate"
	// VerdictError marks spawn or IO failures in the harness itself.
	VerdictError Verdict = "error"
)

// Expectation is the outcome a descriptor anticipates.
type Expectation string

const (
	ExpectPass      Expectation = "pass"
	ExpectKnownFail Expectation = "known_fail"
)

// Mode selects the strategy used to derive a verdict from captured evidence.
type Mode string

const (
	// ModeText scans captured output for line-oriented pass/fail markers.
	ModeText Mode = "text"
	// ModeMemory extracts a status code the emulator echoes from a
	// well-known memory location (Blargg convention).
	ModeMemory Mode = "memory"
	// ModeVisual compares a screenshot checksum against a reference.
	ModeVisual Mode = "visual"
)
