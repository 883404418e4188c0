// Package dispatch runs a single test ROM through the emulator under a
// bounded-time contract and captures the evidence for classification.
package dispatch

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"vtest/internal/config"
	"vtest/internal/corpus"
	"vtest/internal/domain"
)

// Dispatcher constructs and executes one emulator invocation per
// descriptor. It never returns an error: every infrastructure failure is
// absorbed into the run's verdict.
type Dispatcher struct {
	cfg     *config.Config
	profile config.Profile
	corpus  *corpus.Resolver
}

// New creates a Dispatcher for one console profile.
func New(cfg *config.Config, profile config.Profile, resolver *corpus.Resolver) *Dispatcher {
	return &Dispatcher{cfg: cfg, profile: profile, corpus: resolver}
}

// Dispatch resolves the ROM, spawns the emulator, and returns the run
// with captured output and exit code. Skip, timeout, and error verdicts
// are set here; everything else is left for the classifier.
func (d *Dispatcher) Dispatch(desc *domain.Descriptor) *domain.Run {
	run := domain.NewRun(desc)

	repoDir, ok := d.corpus.Dir(desc.Repository)
	if !ok {
		run.Verdict = domain.VerdictSkip
		run.Diagnostic = fmt.Sprintf("repository %q not found", desc.Repository)
		return run
	}

	romPath := filepath.Join(repoDir, filepath.FromSlash(desc.Path))
	if _, err := os.Stat(romPath); err != nil {
		run.Verdict = domain.VerdictSkip
		run.Diagnostic = "ROM not found"
		return run
	}

	// Save-type tests assume blank battery memory.
	if isSaveTest(desc.Path) {
		_ = os.Remove(d.cfg.SavePath(desc.Name))
	}

	env := d.buildEnv(desc, run)
	timeout := d.cfg.Timeout(d.profile, needsLongBudget(desc.Path))
	d.execute(run, romPath, env, timeout)
	return run
}

// buildEnv overlays the harness contract on the ambient environment:
// debug output, headless mode, a frame budget, and for visual tests the
// screenshot destination.
func (d *Dispatcher) buildEnv(desc *domain.Descriptor, run *domain.Run) []string {
	env := os.Environ()
	env = append(env, "DEBUG=1", "HEADLESS=1")
	env = append(env, "FRAMES="+strconv.Itoa(d.frameBudget(desc)))

	if desc.Mode == domain.ModeVisual {
		_ = os.MkdirAll(d.cfg.ScreenshotsDir, 0o755)
		artifact := filepath.Join(d.cfg.ScreenshotsDir, sanitizeName(desc.Path)+".png")
		env = append(env, "SAVE_SCREENSHOT="+artifact)
		run.ArtifactPath = artifact
	}
	return env
}

func (d *Dispatcher) frameBudget(desc *domain.Descriptor) int {
	if desc.Mode == domain.ModeVisual {
		return desc.CaptureFrame + config.SettleFrames
	}
	budget := d.profile.SerialFrames
	if isSaveTest(desc.Path) && budget < d.profile.SaveFrames {
		budget = d.profile.SaveFrames
	}
	return budget
}

func (d *Dispatcher) execute(run *domain.Run, romPath string, env []string, timeout time.Duration) {
	cmd := exec.Command(d.cfg.EmulatorPath, romPath)
	cmd.Dir = d.cfg.ProjectRoot
	cmd.Env = env

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output
	setProcessGroup(cmd)

	start := time.Now()
	if err := cmd.Start(); err != nil {
		run.Verdict = domain.VerdictError
		run.Diagnostic = err.Error()
		return
	}
	run.Spawned = true

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case err := <-done:
		run.Duration = time.Since(start)
		run.Output = output.String()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				run.ExitCode = exitErr.ExitCode()
			} else {
				run.Verdict = domain.VerdictError
				run.Diagnostic = err.Error()
			}
		}
	case <-timer.C:
		// Kill the whole process group so no child outlives the test.
		_ = killProcessGroup(cmd)
		<-done
		run.Duration = time.Since(start)
		run.Output = output.String()
		run.TimedOut = true
		run.Verdict = domain.VerdictTimeout
		run.Diagnostic = fmt.Sprintf("timeout after %s", timeout)
	}
}

func isSaveTest(path string) bool {
	return strings.Contains(strings.ToLower(path), "save")
}

// needsLongBudget reports whether a test category needs the long
// wall-clock budget: save tests cycle battery memory, sound tests drain
// audio buffers in real time.
func needsLongBudget(path string) bool {
	lower := strings.ToLower(path)
	return strings.Contains(lower, "save") || strings.Contains(lower, "sound") || strings.Contains(lower, "audio")
}

// sanitizeName flattens a ROM path into a screenshot file name so tests
// with the same stem in different directories cannot collide.
func sanitizeName(path string) string {
	name := strings.TrimSuffix(path, filepath.Ext(path))
	name = strings.ReplaceAll(name, "/", "_")
	return strings.ReplaceAll(name, " ", "_")
}
