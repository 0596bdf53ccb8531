package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nordlow/druntime/galloc/sizeclass"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// collector names the selected collector implementation
	// (spec.md §6's "configuration consumed, not specified here"):
	// the collector initializes only when selected, and an unimplemented
	// name is rejected with a clear error.
	collector string

	// configName selects a named sizeclass.Config preset, resolved to
	// sizeClassConfig in PersistentPreRunE.
	configName      string
	sizeClassConfig sizeclass.Config
)

const implementedCollector = "fastalloc"

var rootCmd = &cobra.Command{
	Use:   "allocbench",
	Short: "Drive and measure the fastalloc segregated-fits slab allocator",
	Long: `allocbench runs allocation-pattern workloads against the fastalloc
core and reports pool occupancy and page-mapping statistics. It exists for
manual experimentation and load-testing of the allocator core, not as a
collector itself.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if collector != implementedCollector {
			return fmt.Errorf("allocbench: unknown collector %q (only %q is implemented)", collector, implementedCollector)
		}
		switch configName {
		case "small-only":
			sizeClassConfig = sizeclass.SmallOnly
		case "with-medium":
			sizeClassConfig = sizeclass.WithMedium
		default:
			return fmt.Errorf("allocbench: unknown config %q (want %q or %q)", configName, "small-only", "with-medium")
		}
		initLogger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().
		StringVar(&collector, "collector", implementedCollector, "Collector implementation to initialize")
	rootCmd.PersistentFlags().
		StringVar(&configName, "config", "small-only", `Size-class configuration preset ("small-only" or "with-medium")`)
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

func printError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format, args...)
}

func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}
