package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"vtest/internal/domain"
)

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleYAML = `
console: gb
silent_completion: indeterminate
repositories:
  blargg:
    directory: blargg-roms
    url: https://example.com/blargg.zip
categories:
  quick: [cpu, timing]
  full: [cpu, timing, visual]
test_suites:
  _template:
    name: unused
  cpu:
    name: CPU Instructions
    priority: critical
    repository: blargg
    tests:
      - path: cpu_instrs/cpu_instrs.gb
        mode: serial
      - path: cpu_instrs/individual/02-interrupts.gb
        mode: memory
        expected: known_fail
        notes: "EI delay not implemented"
  timing:
    name: Instruction Timing
    repository: blargg
    tests:
      - path: instr_timing/instr_timing.gb
        mode: blargg
  visual:
    name: Scene Captures
    repository: blargg
    tests:
      - path: scenes/window.gb
        mode: visual
        capture_frame: 120
        reference_hash: deadbeef
`

func TestLoadYAMLCatalog(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	if cat.Console != "gb" {
		t.Errorf("expected console gb, got %q", cat.Console)
	}
	if len(cat.TestSuites) != 4 {
		t.Errorf("expected 4 suite definitions, got %d", len(cat.TestSuites))
	}
	if cat.Repositories["blargg"].Directory != "blargg-roms" {
		t.Errorf("unexpected repository directory %q", cat.Repositories["blargg"].Directory)
	}
}

func TestLoadLegacyJSONCatalog(t *testing.T) {
	cat, err := Load(writeCatalog(t, `{
		"console": "nes",
		"test_suites": {
			"cpu": {
				"name": "CPU",
				"tests": [{"path": "cpu/nestest.nes", "mode": "text"}]
			}
		}
	}`))
	if err != nil {
		t.Fatal(err)
	}
	if cat.Console != "nes" {
		t.Errorf("expected console nes, got %q", cat.Console)
	}
	if len(cat.Suites(nil)) != 1 {
		t.Errorf("expected 1 suite, got %d", len(cat.Suites(nil)))
	}
}

func TestLoadMissingCatalog(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("absent catalog must not error: %v", err)
	}
	if got := len(cat.Suites(nil)); got != 0 {
		t.Errorf("expected empty catalog, got %d suites", got)
	}
}

func TestSuiteSelection(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name       string
		categories []string
		wantKeys   []string
	}{
		{"empty selects all public suites", nil, []string{"cpu", "timing", "visual"}},
		{"category expands", []string{"quick"}, []string{"cpu", "timing"}},
		{"suite key selects itself", []string{"visual"}, []string{"visual"}},
		{"mixed category and key", []string{"quick", "visual"}, []string{"cpu", "timing", "visual"}},
		{"unknown token selects nothing", []string{"gba"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suites := cat.Suites(tt.categories)
			if len(suites) != len(tt.wantKeys) {
				t.Fatalf("expected %d suites, got %d", len(tt.wantKeys), len(suites))
			}
			for i, key := range tt.wantKeys {
				if suites[i].Key != key {
					t.Errorf("suite %d: expected key %q, got %q", i, key, suites[i].Key)
				}
			}
		})
	}
}

func TestDescriptorBuilding(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	suites := cat.Suites([]string{"cpu"})
	if len(suites) != 1 {
		t.Fatalf("expected 1 suite, got %d", len(suites))
	}
	tests := suites[0].Tests
	if len(tests) != 2 {
		t.Fatalf("expected 2 tests, got %d", len(tests))
	}

	first := tests[0]
	if first.Name != "cpu_instrs" {
		t.Errorf("expected name from ROM stem, got %q", first.Name)
	}
	if first.Mode != domain.ModeText {
		t.Errorf("serial alias should map to text mode, got %s", first.Mode)
	}
	if first.Expected != domain.ExpectPass {
		t.Errorf("default expectation should be pass, got %s", first.Expected)
	}
	if first.Repository != "blargg" {
		t.Errorf("expected repository blargg, got %q", first.Repository)
	}

	second := tests[1]
	if second.Mode != domain.ModeMemory {
		t.Errorf("expected memory mode, got %s", second.Mode)
	}
	if second.Expected != domain.ExpectKnownFail {
		t.Errorf("expected known_fail, got %s", second.Expected)
	}
}

func TestModeAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  domain.Mode
	}{
		{"", domain.ModeText},
		{"text", domain.ModeText},
		{"serial", domain.ModeText},
		{"automated", domain.ModeText},
		{"memory", domain.ModeMemory},
		{"blargg", domain.ModeMemory},
		{"visual", domain.ModeVisual},
	}
	for _, tt := range tests {
		if got := parseMode(tt.alias); got != tt.want {
			t.Errorf("alias %q: expected %s, got %s", tt.alias, tt.want, got)
		}
	}
}

func TestVisualDefaults(t *testing.T) {
	cat, err := Load(writeCatalog(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	visual := cat.Suites([]string{"visual"})[0].Tests[0]
	if visual.CaptureFrame != 120 {
		t.Errorf("expected capture frame 120, got %d", visual.CaptureFrame)
	}
	if visual.ReferenceHash != "deadbeef" {
		t.Errorf("expected reference hash deadbeef, got %q", visual.ReferenceHash)
	}

	// Unspecified capture frames fall back to the default.
	cat2, err := Load(writeCatalog(t, `
test_suites:
  v:
    tests:
      - path: scenes/plain.gb
        mode: visual
`))
	if err != nil {
		t.Fatal(err)
	}
	plain := cat2.Suites(nil)[0].Tests[0]
	if plain.CaptureFrame == 0 {
		t.Error("expected a nonzero default capture frame")
	}
}

func TestSilentCompletionPolicy(t *testing.T) {
	def, err := Load(writeCatalog(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if got := def.Policy(); got != domain.VerdictIndeterminate {
		t.Errorf("expected indeterminate policy, got %s", got)
	}

	lenient, err := Load(writeCatalog(t, "silent_completion: pass\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got := lenient.Policy(); got != domain.VerdictPass {
		t.Errorf("expected pass policy, got %s", got)
	}
}
