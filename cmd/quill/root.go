package main

import (
	"os"

	"github.com/spf13/cobra"
)

var debugLogging bool

var rootCmd = &cobra.Command{
	Use:   "quill",
	Short: "Terminal presentation layer for interactive interpreters",
	Long: `Quill renders interpreter conversations in the terminal: live-updating
markdown and code blocks, a YAML configuration layer, and persistent
conversation history.

It is the display half of an interpreter — it does not run code or call
models itself.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, "Write session debug logs to the storage directory")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(renderCmd)
}
