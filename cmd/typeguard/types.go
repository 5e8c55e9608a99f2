package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/typeguard"
)

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List the registered type names",
	Run: func(cmd *cobra.Command, args []string) {
		asJSON, _ := cmd.Flags().GetBool("json")

		eng, err := typeguard.New()
		if err != nil {
			fmt.Fprintf(os.Stderr, "init engine: %v\n", err)
			os.Exit(1)
		}

		if asJSON {
			payload, err := eng.ExportTypes()
			if err != nil {
				fmt.Fprintf(os.Stderr, "export types: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(payload)
			return
		}

		for _, name := range eng.ListTypes() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(typesCmd)
	typesCmd.Flags().Bool("json", false, "Print the names as a JSON array")
}
