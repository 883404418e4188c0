package commands

import (
	"fmt"

	"vtest/internal/catalog"
	"vtest/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// ListCommand handles the list command
type ListCommand struct {
	config *config.Config
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config) *ListCommand {
	return &ListCommand{config: cfg}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	cfg := lc.config
	if cfg.Flags.Catalog != "" {
		cfg.CatalogPath = cfg.Flags.Catalog
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}

	suites := cat.Suites(args)
	if len(suites) == 0 {
		color.Yellow("No suites found in %s", cfg.CatalogPath)
		return nil
	}

	total := 0
	for _, s := range suites {
		color.Blue("%s [%s] — %d tests", s.Name, s.Priority, len(s.Tests))
		if s.Description != "" {
			color.Cyan("  %s", s.Description)
		}
		if cfg.Flags.Verbose {
			for _, t := range s.Tests {
				line := fmt.Sprintf("  %-50s %s", t.Path, t.Mode)
				if t.Expected != "pass" {
					line += fmt.Sprintf(" (expected: %s)", t.Expected)
				}
				fmt.Println(line)
			}
		}
		total += len(s.Tests)
	}
	fmt.Printf("\n%d suites, %d tests\n", len(suites), total)
	return nil
}
