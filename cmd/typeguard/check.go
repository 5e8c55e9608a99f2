package main

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/typeguard"
	"github.com/aretw0/typeguard/pkg/schema"
)

var checkCmd = &cobra.Command{
	Use:   "check [data-file]",
	Short: "Validate a document against a schema",
	Long: `Validates a JSON or YAML document against a schema file and reports every
violation with its path. Exits non-zero when the document is invalid.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		schemaPath, _ := cmd.Flags().GetString("schema")
		strict, _ := cmd.Flags().GetBool("strict")

		result, err := runCheck(schemaPath, args[0], strict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "check failed: %v\n", err)
			os.Exit(1)
		}

		output := termenv.NewOutput(os.Stdout)
		if result.Valid {
			fmt.Println(output.String("document is valid").Foreground(output.Color("2")))
			return
		}

		fmt.Println(output.String(fmt.Sprintf("document is invalid (%d violations)", len(result.Errors))).Foreground(output.Color("1")))
		for _, e := range result.Errors {
			fmt.Printf("  - %s\n", e)
		}
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().StringP("schema", "s", "schema.yaml", "Schema file (YAML or JSON)")
	checkCmd.Flags().Bool("strict", false, "Reject keys the schema does not declare")
}

func runCheck(schemaPath, dataPath string, strict bool) (schema.Result, error) {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return schema.Result{}, fmt.Errorf("read schema: %w", err)
	}
	schemaDoc, err := schema.DecodeDocument(schemaBytes)
	if err != nil {
		return schema.Result{}, fmt.Errorf("parse schema: %w", err)
	}

	dataBytes, err := os.ReadFile(dataPath)
	if err != nil {
		return schema.Result{}, fmt.Errorf("read document: %w", err)
	}
	valueDoc, err := schema.DecodeDocument(dataBytes)
	if err != nil {
		return schema.Result{}, fmt.Errorf("parse document: %w", err)
	}

	eng, err := typeguard.New()
	if err != nil {
		return schema.Result{}, err
	}

	var opts []schema.CheckOption
	if strict {
		opts = append(opts, schema.WithStrict())
	}
	return eng.CheckStructure(schemaDoc, valueDoc, opts...), nil
}
