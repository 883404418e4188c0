package commands

import (
	"vtest/internal/cli"
	"vtest/internal/config"

	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Run     *RunCommand
	List    *ListCommand
	Genrefs *GenrefsCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	return &Commands{
		Run:     NewRunCommand(cfg),
		List:    NewListCommand(cfg),
		Genrefs: NewGenrefsCommand(cfg),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	applyFlags := func(cmd *cobra.Command, args []string) error {
		cfg.Flags = flags.ToConfigFlags()
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [category|suite ...]",
		Short: "Run ROM test suites against the emulator",
		Long: "Execute the catalog's test ROMs against the emulator binary and " +
			"classify each run from its output, exit code and screenshot checksum. " +
			"Positional arguments select categories or suite keys; none selects everything.",
		RunE:    c.Run.Execute,
		PreRunE: applyFlags,
	}
	runCmd.Flags().StringVarP(&flags.Console, "console", "s", "", "Console profile to test (gb, nes, gba, snes)")
	runCmd.Flags().StringVarP(&flags.Catalog, "catalog", "c", "", "Path to the test catalog file")
	runCmd.Flags().IntVarP(&flags.TimeoutSeconds, "timeout", "t", 0, "Override the per-test timeout in seconds")
	runCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Print a result line per test with failure evidence")
	runCmd.Flags().BoolVar(&flags.JSON, "json", false, "Emit machine-readable JSON results on stdout")
	runCmd.Flags().BoolVarP(&flags.Keep, "keep", "k", false, "Keep downloaded test repositories after the run")
	runCmd.Flags().BoolVar(&flags.GenerateRefs, "generate-refs", false, "Record screenshot hashes for visual tests instead of comparing")
	runCmd.Flags().BoolVar(&flags.OpenFailures, "open-failures", false, "Open the failure viewer when the run finishes with failures")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:     "list [category|suite ...]",
		Short:   "List catalog suites and tests",
		Long:    "Show the suites and test ROMs the catalog declares without executing them",
		RunE:    c.List.Execute,
		PreRunE: applyFlags,
	}
	listCmd.Flags().StringVarP(&flags.Catalog, "catalog", "c", "", "Path to the test catalog file")
	listCmd.Flags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Show every test ROM, not just suite totals")
	rootCmd.AddCommand(listCmd)

	// Genrefs command
	genrefsCmd := &cobra.Command{
		Use:   "genrefs [category|suite ...]",
		Short: "Generate reference hashes for visual tests",
		Long: "Run only the visual tests and record each screenshot's checksum, " +
			"printing a table ready to paste into the catalog as reference_hash values",
		RunE:    c.Genrefs.Execute,
		PreRunE: applyFlags,
	}
	genrefsCmd.Flags().StringVarP(&flags.Console, "console", "s", "", "Console profile to test (gb, nes, gba, snes)")
	genrefsCmd.Flags().StringVarP(&flags.Catalog, "catalog", "c", "", "Path to the test catalog file")
	genrefsCmd.Flags().IntVarP(&flags.TimeoutSeconds, "timeout", "t", 0, "Override the per-test timeout in seconds")
	genrefsCmd.Flags().BoolVarP(&flags.Keep, "keep", "k", false, "Keep downloaded test repositories after the run")
	rootCmd.AddCommand(genrefsCmd)
}
