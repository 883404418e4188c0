package config

import (
	"strings"
	"time"
)

// Profile parameterizes the generic engine for one console: the marker
// tag the emulator prefixes its debug output with, per-category time
// budgets, and frame budgets handed to the emulator via FRAMES.
type Profile struct {
	Console string
	// Tag is the bracketed marker tag, e.g. "GB" for "[GB] PASSED".
	Tag string
	// Timeout is the hard wall-clock budget for an ordinary test.
	Timeout time.Duration
	// LongTimeout is used for save-type and audio suites, which need
	// multiple erase/write or buffer-drain cycles.
	LongTimeout time.Duration
	// SerialFrames is the frame budget for text- and memory-mode tests.
	SerialFrames int
	// SaveFrames is the minimum frame budget for save-type tests.
	SaveFrames int
}

var profiles = map[string]Profile{
	"gb": {
		Console:      "gb",
		Tag:          "GB",
		Timeout:      60 * time.Second,
		LongTimeout:  60 * time.Second,
		SerialFrames: 3600,
		SaveFrames:   1000,
	},
	"nes": {
		Console:      "nes",
		Tag:          "NES",
		Timeout:      10 * time.Second,
		LongTimeout:  30 * time.Second,
		SerialFrames: 1500,
		SaveFrames:   1000,
	},
	"gba": {
		Console:      "gba",
		Tag:          "GBA",
		Timeout:      30 * time.Second,
		LongTimeout:  60 * time.Second,
		SerialFrames: 1800,
		SaveFrames:   1000,
	},
	"snes": {
		Console:      "snes",
		Tag:          "SNES",
		Timeout:      60 * time.Second,
		LongTimeout:  60 * time.Second,
		SerialFrames: 3600,
		SaveFrames:   1000,
	},
}

// ProfileFor returns the profile for a console name, falling back to a
// generic profile with the uppercased console as tag.
func ProfileFor(console string) Profile {
	if p, ok := profiles[console]; ok {
		return p
	}
	p := profiles["gba"]
	p.Console = console
	p.Tag = strings.ToUpper(console)
	return p
}

// Consoles lists the consoles with first-class profiles.
func Consoles() []string {
	return []string{"gb", "nes", "gba", "snes"}
}
