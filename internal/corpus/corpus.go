// Package corpus resolves provisioned ROM repositories to local
// directories and tears them down after a run. Fetching/extracting the
// corpora is an external provisioning step, not this package's job.
package corpus

import (
	"os"
	"path/filepath"

	"vtest/internal/catalog"
	"vtest/internal/config"
)

// Resolver maps repository names to local directories under the corpus
// root. An unnamed repository ("") resolves to the root itself, which
// covers single-corpus catalogs.
type Resolver struct {
	root string
	dirs map[string]string
}

// Resolve builds a Resolver for the catalog's repositories.
func Resolve(root string, repos map[string]catalog.Repository) *Resolver {
	dirs := make(map[string]string, len(repos))
	for name, repo := range repos {
		dir := repo.Directory
		if dir == "" {
			dir = name
		}
		dirs[name] = filepath.Join(root, dir)
	}
	return &Resolver{root: root, dirs: dirs}
}

// Dir returns the local directory for a repository name and whether the
// directory actually exists on disk.
func (r *Resolver) Dir(name string) (string, bool) {
	dir, ok := r.dirs[name]
	if !ok {
		if name != "" {
			return "", false
		}
		dir = r.root
	}
	info, err := os.Stat(dir)
	return dir, err == nil && info.IsDir()
}

// Dirs lists the resolved repository directories.
func (r *Resolver) Dirs() []string {
	out := make([]string, 0, len(r.dirs))
	for _, dir := range r.dirs {
		out = append(out, dir)
	}
	return out
}

// Cleanup removes the corpus directories (unless retained) and the
// transient artifacts the emulator leaves under the corpus root. Best
// effort: a failed removal never fails the run.
func (r *Resolver) Cleanup(keep bool) {
	if !keep {
		for _, dir := range r.dirs {
			_ = os.RemoveAll(dir)
		}
	}

	for _, name := range config.TransientDirs {
		_ = os.RemoveAll(filepath.Join(r.root, name))
	}
	for _, name := range config.TransientFiles {
		_ = os.Remove(filepath.Join(r.root, name))
	}
}
