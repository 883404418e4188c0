package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the harness.
type Config struct {
	// ProjectRoot is the emulator project checkout; the child process
	// runs with this as working directory so it can find its plugins.
	ProjectRoot string
	// EmulatorPath is the resolved emulator binary.
	EmulatorPath string
	// CatalogPath is the suite catalog document.
	CatalogPath string
	// CorpusRoot is where repository directories are resolved; defaults
	// to the catalog's directory.
	CorpusRoot string
	// ScreenshotsDir receives visual-test artifacts.
	ScreenshotsDir string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags.
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

// New creates a Config with defaults, applying overrides from an optional
// .env file and the environment.
func New() *Config {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	cfg := &Config{
		ProjectRoot: ".",
		CatalogPath: DefaultCatalogFile,
	}
	if root := os.Getenv("VTEST_PROJECT_ROOT"); root != "" {
		cfg.ProjectRoot = root
	}
	if cat := os.Getenv("VTEST_CATALOG"); cat != "" {
		cfg.CatalogPath = cat
	}
	return cfg
}

// Resolve finalizes paths after flags are parsed and locates the emulator
// binary. A missing emulator is fatal before any test runs.
func (c *Config) Resolve() error {
	if c.Flags.Catalog != "" {
		c.CatalogPath = c.Flags.Catalog
	}
	if abs, err := filepath.Abs(c.CatalogPath); err == nil {
		c.CatalogPath = abs
	}
	if c.CorpusRoot == "" {
		c.CorpusRoot = filepath.Dir(c.CatalogPath)
	}
	if c.ScreenshotsDir == "" {
		c.ScreenshotsDir = filepath.Join(filepath.Dir(c.CatalogPath), DefaultScreenshotsDir)
	}
	if c.Flags.TimeoutSeconds == 0 {
		if secs, err := strconv.Atoi(os.Getenv("VTEST_TIMEOUT")); err == nil && secs > 0 {
			c.Flags.TimeoutSeconds = secs
		}
	}

	emulator, err := c.findEmulator()
	if err != nil {
		return err
	}
	c.EmulatorPath = emulator
	return nil
}

// findEmulator locates the emulator binary: explicit override first, then
// the usual build output locations under the project root.
func (c *Config) findEmulator() (string, error) {
	if path := os.Getenv("VTEST_EMULATOR"); path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		return "", fmt.Errorf("VTEST_EMULATOR set but not found: %s", path)
	}

	for _, candidate := range EmulatorCandidates {
		path := filepath.Join(c.ProjectRoot, candidate)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("cannot find veloce binary under %s; build the project first: cmake -B build && cmake --build build", c.ProjectRoot)
}

// Timeout returns the wall-clock budget for a test: the --timeout flag
// when set, otherwise the long profile budget for save/audio suites and
// the ordinary budget for everything else.
func (c *Config) Timeout(p Profile, long bool) time.Duration {
	if c.Flags.TimeoutSeconds > 0 {
		return time.Duration(c.Flags.TimeoutSeconds) * time.Second
	}
	if long {
		return p.LongTimeout
	}
	return p.Timeout
}

// SavePath returns the battery-save file the emulator would use for a ROM.
func (c *Config) SavePath(romStem string) string {
	return filepath.Join(c.ProjectRoot, DefaultSavesDir, romStem+".sav")
}
