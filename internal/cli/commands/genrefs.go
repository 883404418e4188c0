package commands

import (
	"os"

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

// GenrefsCommand handles the genrefs command
type GenrefsCommand struct {
	config *config.Config
}

// NewGenrefsCommand creates a new GenrefsCommand
func NewGenrefsCommand(cfg *config.Config) *GenrefsCommand {
	return &GenrefsCommand{config: cfg}
}

// Execute runs the command
func (gc *GenrefsCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := gc.config
	if err := cfg.Resolve(); err != nil {
		return err
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	suites := visualOnly(cat.Suites(args))
	if countTests(suites) == 0 {
		color.Yellow("No visual tests in the catalog")
		return nil
	}

	resolver := corpus.Resolve(cfg.CorpusRoot, cat.Repositories)
	defer resolver.Cleanup(cfg.Flags.Keep)

	console := resolveConsole(cfg, cat)
	profile := applyCatalog(config.ProfileFor(console), cat)

	printer := ui.NewPrinter(true, false)
	printer.Banner(console, cfg.EmulatorPath, cfg.Timeout(profile, false), countTests(suites), true)

	refs := classify.NewRefTable()
	opts := classify.Options{
		Tag:          profile.Tag,
		GenerateRefs: true,
		Refs:         refs,
	}

	dispatcher := dispatch.New(cfg, profile, resolver)
	runner.New(dispatcher, opts, printer).RunSuites(suites)

	report.New(os.Stdout).PrintGeneratedRefs(refs)
	return nil
}

// visualOnly narrows the selection to visual-mode tests, dropping
// suites left empty.
func visualOnly(suites []*domain.Suite) []*domain.Suite {
	var out []*domain.Suite
	for _, s := range suites {
		var tests []*domain.Descriptor
		for _, t := range s.Tests {
			if t.Mode == domain.ModeVisual {
				tests = append(tests, t)
			}
		}
		if len(tests) == 0 {
			continue
		}
		narrowed := *s
		narrowed.Tests = tests
		out = append(out, &narrowed)
	}
	return out
}
