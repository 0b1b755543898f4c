// Command battlesim is a thin host around the engine packages: it loads a
// YAML scenario file, wires the engine together, runs the battle to
// completion, and prints the resulting event log. It contains no combat
// logic of its own — only wiring, config decoding, and logging.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "battlesim",
	Short:   "Deterministic wuxia tactical combat simulator",
	Long:    `battlesim drives the wuxia turn-scheduling combat core to completion over a YAML scenario file and prints the resulting event log.`,
	Version: "0.1.0",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug-level logging")
	rootCmd.AddCommand(runCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
