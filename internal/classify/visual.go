package classify

import (
	"fmt"
	"hash/crc32"
	"os"
	"sort"

	"vtest/internal/domain"
)

// classifyVisual judges a run by the checksum of its captured
// screenshot. A missing artifact after a clean exit is recoverable
// ambiguity, not a correctness verdict.
func classifyVisual(run *domain.Run, opts Options) {
	if run.ArtifactPath == "" || !fileExists(run.ArtifactPath) {
		if run.ExitCode == 0 {
			run.Verdict = domain.VerdictIndeterminate
			run.Diagnostic = "ran but no screenshot captured"
			return
		}
		run.Diagnostic = fmt.Sprintf("screenshot not captured, exit code %d", run.ExitCode)
		run.Verdict = run.Failing()
		return
	}

	hash, err := FileCRC32(run.ArtifactPath)
	if err != nil {
		run.Verdict = domain.VerdictError
		run.Diagnostic = "read screenshot: " + err.Error()
		return
	}
	run.ActualHash = hash

	if opts.GenerateRefs {
		if opts.Refs != nil {
			opts.Refs.Record(run.Descriptor.Path, hash)
		}
		run.Verdict = domain.VerdictPass
		run.Diagnostic = "generated hash " + hash
		return
	}

	ref := run.Descriptor.ReferenceHash
	if ref == "" {
		run.Verdict = domain.VerdictSkip
		run.Diagnostic = fmt.Sprintf("no reference hash; computed %s (run with --generate-refs to promote)", hash)
		return
	}
	if hash == ref {
		run.Verdict = domain.VerdictPass
		return
	}
	run.Diagnostic = fmt.Sprintf("hash mismatch: expected %s, got %s", ref, hash)
	run.Verdict = run.Failing()
}

// FileCRC32 computes the CRC32 (IEEE) of a file as an 8-digit hex string.
func FileCRC32(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data)), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// RefTable collects generated reference checksums for promotion into
// the catalog.
type RefTable struct {
	hashes map[string]string
}

// NewRefTable creates an empty RefTable.
func NewRefTable() *RefTable {
	return &RefTable{hashes: make(map[string]string)}
}

// Record stores the computed checksum for a ROM path.
func (t *RefTable) Record(path, hash string) {
	t.hashes[path] = hash
}

// Len returns the number of recorded checksums.
func (t *RefTable) Len() int { return len(t.hashes) }

// RefEntry is one path → checksum pair.
type RefEntry struct {
	Path string `json:"path"`
	Hash string `json:"hash"`
}

// Entries returns the recorded checksums sorted by path.
func (t *RefTable) Entries() []RefEntry {
	entries := make([]RefEntry, 0, len(t.hashes))
	for path, hash := range t.hashes {
		entries = append(entries, RefEntry{Path: path, Hash: hash})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries
}
