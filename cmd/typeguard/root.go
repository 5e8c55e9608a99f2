package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "typeguard",
	Short: "typeguard validates values against runtime type schemas",
	Long: `typeguard is a runtime type-validation toolkit. It checks JSON documents
against structural schemas authored in YAML or JSON, using simple type
expressions like "string", "string|number", "number?" and ["string"].`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}
