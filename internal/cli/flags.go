package cli

import "vtest/internal/config"

// Flags holds command-line flags
type Flags struct {
	Console        string
	Catalog        string
	Keep           bool
	Verbose        bool
	JSON           bool
	GenerateRefs   bool
	OpenFailures   bool
	TimeoutSeconds int
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Console:        f.Console,
		Catalog:        f.Catalog,
		Keep:           f.Keep,
		Verbose:        f.Verbose,
		JSON:           f.JSON,
		GenerateRefs:   f.GenerateRefs,
		OpenFailures:   f.OpenFailures,
		TimeoutSeconds: f.TimeoutSeconds,
	}
}
