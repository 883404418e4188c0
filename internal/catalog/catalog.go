// Package catalog loads the declarative suite/test corpus definition.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"vtest/internal/config"
	"vtest/internal/domain"
)

// Document is the on-disk catalog shape. YAML is a superset of JSON, so
// legacy test_config.json files load unchanged.
type Document struct {
	Console        string `yaml:"console"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	FrameLimit     int    `yaml:"frame_limit"`
	// SilentCompletion decides what a memory-mode run with exit code 0
	// and no status label classifies as: "indeterminate" (default) or
	// "pass". The original console variants disagreed; the policy is
	// explicit here.
	SilentCompletion string                `yaml:"silent_completion"`
	Repositories     map[string]Repository `yaml:"repositories"`
	Categories       map[string][]string   `yaml:"categories"`
	TestSuites       map[string]SuiteDef   `yaml:"test_suites"`
}

// Repository names a corpus source. Provisioning is external; the
// harness only resolves Directory under the corpus root.
type Repository struct {
	Directory   string `yaml:"directory"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// SuiteDef declares one suite.
type SuiteDef struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Priority    string    `yaml:"priority"`
	Repository  string    `yaml:"repository"`
	Tests       []TestDef `yaml:"tests"`
}

// TestDef declares one test ROM.
type TestDef struct {
	Path          string `yaml:"path"`
	Expected      string `yaml:"expected"`
	Mode          string `yaml:"mode"`
	CaptureFrame  int    `yaml:"capture_frame"`
	ReferenceHash string `yaml:"reference_hash"`
	Notes         string `yaml:"notes"`
}

// Catalog is a loaded catalog document.
type Catalog struct {
	Document
	Path string
}

// Load reads a catalog file. An absent file yields an empty catalog
// (zero suites), not an error.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Catalog{Path: path}, nil
		}
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return &Catalog{Document: doc, Path: path}, nil
}

// Suites builds the domain suites selected by the given category tokens,
// in sorted key order for reproducible reports. An empty selection means
// every suite. Keys starting with "_" are catalog-internal and skipped.
func (c *Catalog) Suites(categories []string) []*domain.Suite {
	keys := c.selectKeys(categories)
	sort.Strings(keys)

	var suites []*domain.Suite
	for _, key := range keys {
		def, ok := c.TestSuites[key]
		if !ok {
			continue
		}
		suites = append(suites, c.buildSuite(key, def))
	}
	return suites
}

func (c *Catalog) selectKeys(categories []string) []string {
	selected := make(map[string]bool)
	if len(categories) == 0 {
		for key := range c.TestSuites {
			if !strings.HasPrefix(key, "_") {
				selected[key] = true
			}
		}
	} else {
		for _, cat := range categories {
			if expansion, ok := c.Categories[cat]; ok {
				for _, key := range expansion {
					selected[key] = true
				}
			} else if _, ok := c.TestSuites[cat]; ok {
				selected[cat] = true
			}
		}
	}

	keys := make([]string, 0, len(selected))
	for key := range selected {
		keys = append(keys, key)
	}
	return keys
}

func (c *Catalog) buildSuite(key string, def SuiteDef) *domain.Suite {
	name := def.Name
	if name == "" {
		name = key
	}
	priority := def.Priority
	if priority == "" {
		priority = "medium"
	}

	suite := &domain.Suite{
		Key:         key,
		Name:        name,
		Description: def.Description,
		Priority:    priority,
		Repository:  def.Repository,
	}
	for _, td := range def.Tests {
		suite.Tests = append(suite.Tests, buildDescriptor(td, def.Repository))
	}
	return suite
}

func buildDescriptor(td TestDef, repository string) *domain.Descriptor {
	captureFrame := td.CaptureFrame
	if captureFrame == 0 {
		captureFrame = config.DefaultCaptureFrame
	}
	return &domain.Descriptor{
		Name:          stem(td.Path),
		Path:          td.Path,
		Repository:    repository,
		Expected:      parseExpectation(td.Expected),
		Mode:          parseMode(td.Mode),
		CaptureFrame:  captureFrame,
		ReferenceHash: td.ReferenceHash,
		Notes:         td.Notes,
	}
}

func parseExpectation(s string) domain.Expectation {
	if s == string(domain.ExpectKnownFail) {
		return domain.ExpectKnownFail
	}
	return domain.ExpectPass
}

// parseMode accepts the legacy aliases from the per-console configs.
func parseMode(s string) domain.Mode {
	switch s {
	case "memory", "blargg":
		return domain.ModeMemory
	case "visual":
		return domain.ModeVisual
	default: // "", "text", "serial", "automated"
		return domain.ModeText
	}
}

func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Policy returns the silent-completion verdict for memory-mode runs.
func (c *Catalog) Policy() domain.Verdict {
	if c.SilentCompletion == "pass" {
		return domain.VerdictPass
	}
	return domain.VerdictIndeterminate
}
