package config

const (
	// DefaultCatalogFile is the catalog file name looked up when no
	// --catalog flag is given.
	DefaultCatalogFile = "test_config.yaml"
	// DefaultScreenshotsDir is where visual-test artifacts are written,
	// relative to the catalog directory.
	DefaultScreenshotsDir = "screenshots"
	// DefaultSavesDir is where the emulator persists battery saves,
	// relative to the project root.
	DefaultSavesDir = "saves"
	// DefaultCaptureFrame is used when a visual descriptor does not name
	// a capture frame.
	DefaultCaptureFrame = 300
	// SettleFrames is the budget extension past the capture frame so the
	// emulator has time to flush the screenshot.
	SettleFrames = 10
)

// EmulatorCandidates are the build output locations probed for the
// emulator binary, relative to the project root.
var EmulatorCandidates = []string{
	"build/bin/veloce",
	"build/veloce",
}

// TransientDirs are directories the emulator creates during a run that
// the harness removes at teardown. Screenshots are kept since they are
// test output.
var TransientDirs = []string{"config", "saves", "savestates"}

// TransientFiles are stray files the emulator leaves behind.
var TransientFiles = []string{"imgui.ini"}
