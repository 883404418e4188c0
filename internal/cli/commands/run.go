package commands

import (
	"os"
	"time"

	"vtest/internal/catalog"
	"vtest/internal/classify"
	"vtest/internal/config"
	"vtest/internal/corpus"
	"vtest/internal/dispatch"
	"vtest/internal/domain"
	"vtest/internal/report"
	"vtest/internal/runner"
	"vtest/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RunCommand handles the run command
type RunCommand struct {
	config   *config.Config
	exitCode int
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config) *RunCommand {
	return &RunCommand{config: cfg}
}

// ExitCode is the process exit code the finished run asks for: 1 when
// any test hard-failed, 0 otherwise.
func (rc *RunCommand) ExitCode() int {
	return rc.exitCode
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := rc.config
	if err := cfg.Resolve(); err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	suites := cat.Suites(args)
	if countTests(suites) == 0 {
		color.Yellow("No tests to execute")
		return nil
	}

	resolver := corpus.Resolve(cfg.CorpusRoot, cat.Repositories)
	defer resolver.Cleanup(cfg.Flags.Keep)

	console := resolveConsole(cfg, cat)
	profile := applyCatalog(config.ProfileFor(console), cat)

	jsonMode := cfg.Flags.JSON
	printer := ui.NewPrinter(cfg.Flags.Verbose, jsonMode)
	printer.Banner(console, cfg.EmulatorPath, cfg.Timeout(profile, false), countTests(suites), cfg.Flags.GenerateRefs)

	refs := classify.NewRefTable()
	opts := classify.Options{
		Tag:              profile.Tag,
		SilentCompletion: cat.Policy(),
		GenerateRefs:     cfg.Flags.GenerateRefs,
		Refs:             refs,
	}

	dispatcher := dispatch.New(cfg, profile, resolver)
	r := runner.New(dispatcher, opts, printer)
	if !cfg.Flags.Verbose && !jsonMode {
		r.SetProgress(ui.NewProgressBar(countTests(suites)))
	}
	r.RunSuites(suites)

	reporter := report.New(os.Stdout)
	if jsonMode {
		if err := reporter.PrintJSON(suites, refs); err != nil {
			return err
		}
	} else {
		reporter.PrintNarrative(suites)
		reporter.PrintGeneratedRefs(refs)
	}

	if cfg.Flags.OpenFailures && !jsonMode {
		viewer := ui.NewFailureViewer()
		if err := viewer.View(suites); err != nil {
			return err
		}
	}

	rc.exitCode = domain.Summarize(suites).ExitCode()
	return nil
}

// applyCatalog folds the catalog's global overrides into the profile:
// timeout_seconds replaces the ordinary budget (raising the long one if
// needed) and frame_limit replaces the serial frame budget.
func applyCatalog(profile config.Profile, cat *catalog.Catalog) config.Profile {
	if cat.TimeoutSeconds > 0 {
		d := time.Duration(cat.TimeoutSeconds) * time.Second
		profile.Timeout = d
		if d > profile.LongTimeout {
			profile.LongTimeout = d
		}
	}
	if cat.FrameLimit > 0 {
		profile.SerialFrames = cat.FrameLimit
	}
	return profile
}

// resolveConsole picks the console profile: the flag wins, then the
// catalog's declaration.
func resolveConsole(cfg *config.Config, cat *catalog.Catalog) string {
	if cfg.Flags.Console != "" {
		return cfg.Flags.Console
	}
	if cat.Console != "" {
		return cat.Console
	}
	return "gb"
}

func countTests(suites []*domain.Suite) int {
	total := 0
	for _, s := range suites {
		total += len(s.Tests)
	}
	return total
}
