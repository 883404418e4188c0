package main

import (
	"fmt"
	"os"

	"vtest/internal/cli"
	"vtest/internal/cli/commands"
	"vtest/internal/config"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "vtest",
		Short: "Emulator conformance test harness",
		Long: `Drives the veloce emulator binary against ROM test corpora and
classifies every run from its text output, exit code and screenshot
checksums, aggregating verdicts into suite and run totals.`,
		Version: version,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg)

	// Execute root command
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Exit(cmds.Run.ExitCode())
}
