package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/ingestion"
	"github.com/jonathan/resume-extractor/internal/logger"
	"github.com/jonathan/resume-extractor/internal/observability"
	"github.com/jonathan/resume-extractor/internal/pipeline"
	"github.com/jonathan/resume-extractor/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract <file>",
	Short: "Extract a structured record from one resume file",
	Long:  "Extract reads a resume text or HTML file and writes the extracted JSON record to stdout or --output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var (
	extractOutput string
	extractPretty bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractOutput, "output", "o", "", "Write the record to this file instead of stdout")
	extractCmd.Flags().BoolVar(&extractPretty, "pretty", false, "Indent the JSON output")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	record, meta, err := extractFile(args[0])
	if err != nil {
		return err
	}
	logger.Info().
		Str("document_id", meta.DocumentID).
		Str("source", meta.SourcePath).
		Int("positions", len(record.ListOfExperiences)).
		Msg("extracted resume")

	data, err := marshalRecord(record, extractPretty || cfg.Pretty)
	if err != nil {
		return err
	}

	if out := firstNonEmpty(extractOutput, cfg.Output); out != "" {
		if err := os.WriteFile(out, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}

	if cfg.Verbose {
		observability.NewPrinter(cmd.ErrOrStderr()).PrintRecord(&record)
	}
	return nil
}

// extractFile runs ingestion and the pipeline over one file.
func extractFile(path string) (types.ResumeRecord, *ingestion.Metadata, error) {
	text, meta, err := ingestion.IngestFromFile(path)
	if err != nil {
		return types.ResumeRecord{}, nil, fmt.Errorf("failed to ingest %s: %w", path, err)
	}
	record := pipeline.New(lex).Extract(text)
	return record, meta, nil
}

func marshalRecord(record types.ResumeRecord, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(record, "", "  ")
	}
	return json.Marshal(record)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
