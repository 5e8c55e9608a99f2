package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/typeguard"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typeguard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("typeguard version %s\n", strings.TrimSpace(typeguard.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
