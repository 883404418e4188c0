package domain

import "time"

// Descriptor is the declarative definition of a single test ROM.
// Descriptors are created when the catalog is loaded and never mutated.
type Descriptor struct {
	Name          string      // derived from the ROM filename
	Path          string      // relative to the repository root
	Repository    string      // corpus repository this ROM belongs to
	Expected      Expectation // pass or known_fail
	Mode          Mode
	CaptureFrame  int    // visual mode: frame to capture the screenshot at
	ReferenceHash string // visual mode: expected CRC32 of the screenshot
	Notes         string
}

// Run records one execution of a Descriptor. It is created at dispatch
// time, mutated only by the classifier, and discarded after reporting.
type Run struct {
	Descriptor *Descriptor

	Spawned  bool // false when the ROM was missing and no process ran
	Output   string
	ExitCode int
	TimedOut bool
	Duration time.Duration

	ArtifactPath string // visual mode: requested screenshot destination
	ActualHash   string // visual mode: computed CRC32 of the artifact

	StatusCode   int // memory mode: extracted status byte, -1 when absent
	FailedNumber int // text mode: extracted failing sub-test number, 0 when absent

	Diagnostic string
	Verdict    Verdict
}

// NewRun creates a Run for a descriptor with no evidence recorded yet.
func NewRun(desc *Descriptor) *Run {
	return &Run{Descriptor: desc, StatusCode: -1}
}

// Failing returns the terminal failing verdict for this run's descriptor:
// known_fail when the failure is anticipated, fail otherwise. Every
// classifier applies this substitution as its last step.
func (r *Run) Failing() Verdict {
	if r.Descriptor.Expected == ExpectKnownFail {
		return VerdictKnownFail
	}
	return VerdictFail
}
