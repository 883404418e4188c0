package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"vtest/internal/catalog"
)

func TestResolverDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "blargg-roms"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := Resolve(root, map[string]catalog.Repository{
		"blargg":   {Directory: "blargg-roms"},
		"mealybug": {}, // defaults to its own name, not provisioned
	})

	dir, ok := r.Dir("blargg")
	if !ok {
		t.Fatal("expected provisioned repository to resolve")
	}
	if dir != filepath.Join(root, "blargg-roms") {
		t.Errorf("unexpected dir %s", dir)
	}

	if _, ok := r.Dir("mealybug"); ok {
		t.Error("unprovisioned repository must not resolve")
	}
	if _, ok := r.Dir("unknown"); ok {
		t.Error("undeclared repository must not resolve")
	}
}

func TestResolverEmptyNameFallsBackToRoot(t *testing.T) {
	root := t.TempDir()
	r := Resolve(root, nil)

	dir, ok := r.Dir("")
	if !ok {
		t.Fatal("expected the corpus root itself to resolve")
	}
	if dir != root {
		t.Errorf("expected %s, got %s", root, dir)
	}
}

func TestCleanup(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "blargg-roms")
	mkdirs := []string{repoDir, filepath.Join(root, "config"), filepath.Join(root, "saves")}
	for _, dir := range mkdirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.WriteFile(filepath.Join(root, "imgui.ini"), []byte("[Window]"), 0o644); err != nil {
		t.Fatal(err)
	}

	r := Resolve(root, map[string]catalog.Repository{"blargg": {Directory: "blargg-roms"}})
	r.Cleanup(false)

	for _, path := range []string{repoDir, filepath.Join(root, "config"), filepath.Join(root, "saves"), filepath.Join(root, "imgui.ini")} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", path)
		}
	}
}

func TestCleanupKeepRetainsCorpus(t *testing.T) {
	root := t.TempDir()
	repoDir := filepath.Join(root, "blargg-roms")
	if err := os.MkdirAll(repoDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "savestates"), 0o755); err != nil {
		t.Fatal(err)
	}

	r := Resolve(root, map[string]catalog.Repository{"blargg": {Directory: "blargg-roms"}})
	r.Cleanup(true)

	if _, err := os.Stat(repoDir); err != nil {
		t.Error("expected --keep to retain the corpus directory")
	}
	// Transient emulator droppings go away regardless.
	if _, err := os.Stat(filepath.Join(root, "savestates")); !os.IsNotExist(err) {
		t.Error("expected transient directory removed even with --keep")
	}
}
