package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/schemas"
)

var validateCmd = &cobra.Command{
	Use:   "validate <record.json>",
	Short: "Validate an extracted record against the output schema",
	Long:  "Validate checks a JSON record file against schemas/resume_record.schema.json and reports field-level violations.",
	Args:  cobra.ExactArgs(1),
	RunE:  runValidate,
}

var validateSchemaPath string

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "", "Path to the JSON Schema (defaults to the bundled record schema)")

	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	schemaPath := validateSchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath("schemas/resume_record.schema.json")
		if schemaPath == "" {
			return fmt.Errorf("record schema not found; pass --schema explicitly")
		}
	}

	if err := schemas.ValidateJSON(schemaPath, args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s is a valid resume record\n", args[0])
	return nil
}
