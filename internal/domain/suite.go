package domain

// Suite is a named, ordered collection of test descriptors sharing a
// description, priority, and source repository. Runs are appended by the
// suite runner in catalog order; counts are projections over them.
type Suite struct {
	Key         string // catalog key, used for category selection
	Name        string
	Description string
	Priority    string
	Repository  string
	Tests       []*Descriptor
	Runs        []*Run
}

func (s *Suite) count(v Verdict) int {
	n := 0
	for _, r := range s.Runs {
		if r.Verdict == v {
			n++
		}
	}
	return n
}

func (s *Suite) Passed() int        { return s.count(VerdictPass) }
func (s *Suite) Failed() int        { return s.count(VerdictFail) }
func (s *Suite) KnownFails() int    { return s.count(VerdictKnownFail) }
func (s *Suite) Timeouts() int      { return s.count(VerdictTimeout) }
func (s *Suite) Skipped() int       { return s.count(VerdictSkip) }
func (s *Suite) Indeterminate() int { return s.count(VerdictIndeterminate) }
func (s *Suite) Errors() int        { return s.count(VerdictError) }
