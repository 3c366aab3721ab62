// Package commands implements the traitkit command-line interface.
package commands

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/traitkit/traitkit/internal/cli/config"
	"github.com/traitkit/traitkit/introspect"
)

var (
	// Version information - set at build time
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	// Global flags
	outputFormat string
	noColor      bool
)

// NewRootCommand creates the root command
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "traitkit",
		Short: "Runtime trait injection and access tracing toolkit",
		Long: color.CyanString(`traitkit - runtime trait injection and access tracing

traitkit inspects class-like entities, copies behavior between them, and
instruments object graphs for observability.

Features:
  • Class introspection (statics, instance members, attributes)
  • Trait injection between classes and instances
  • Recursive access tracing with pluggable log sinks
  • Declarative class definitions loaded from traitkit.yml`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if noColor {
				color.NoColor = true
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format: json or table")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewClassesCommand())
	rootCmd.AddCommand(NewClassCommand())
	rootCmd.AddCommand(NewInjectCommand())
	rootCmd.AddCommand(NewTraceCommand())

	return rootCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			titleColor := color.New(color.FgCyan, color.Bold)
			valueColor := color.New(color.FgWhite)

			titleColor.Print("traitkit version: ")
			valueColor.Println(Version)

			titleColor.Print("Git commit: ")
			valueColor.Println(GitCommit)

			titleColor.Print("Build date: ")
			valueColor.Println(BuildDate)

			titleColor.Print("Go version: ")
			valueColor.Println(runtime.Version())
		},
	}
}

// loadSetup loads the configuration, applies flag overrides, and builds
// the class registry from the configured definitions.
func loadSetup() (*config.Config, *introspect.Registry, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if outputFormat != "" {
		if outputFormat != "table" && outputFormat != "json" {
			return nil, nil, fmt.Errorf("invalid format: %s (want table or json)", outputFormat)
		}
		cfg.Format = outputFormat
	}
	if noColor {
		cfg.NoColor = true
	}
	registry, err := cfg.BuildRegistry()
	if err != nil {
		return nil, nil, err
	}
	return cfg, registry, nil
}

// Execute runs the root command
func Execute() error {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		errorColor := color.New(color.FgRed, color.Bold)
		errorColor.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}
