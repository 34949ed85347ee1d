package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-extractor/internal/logger"
)

var batchCmd = &cobra.Command{
	Use:   "batch <dir>",
	Short: "Extract records from every resume file in a directory",
	Long: "Batch walks a directory of .txt and .html resume files and writes one <name>.json record " +
		"per input into --out-dir. Documents are independent and are processed in parallel.",
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

var (
	batchOutDir  string
	batchWorkers int
)

func init() {
	batchCmd.Flags().StringVarP(&batchOutDir, "out-dir", "o", "", "Output directory for JSON records (required)")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 0, "Parallel workers; 0 means one per CPU")

	_ = batchCmd.MarkFlagRequired("out-dir")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	inputs, err := listResumeFiles(args[0])
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("no resume files found in %s", args[0])
	}

	if err := os.MkdirAll(batchOutDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	workers := batchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for _, path := range inputs {
		path := path
		g.Go(func() error {
			record, _, err := extractFile(path)
			if err != nil {
				return err
			}
			data, err := marshalRecord(record, cfg.Pretty)
			if err != nil {
				return err
			}

			base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
			out := filepath.Join(batchOutDir, base+".json")
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			logger.Debug().Str("input", path).Str("output", out).Msg("batch item done")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Extracted %d records to %s\n", len(inputs), batchOutDir)
	return nil
}

// listResumeFiles returns the extractable files directly under dir, sorted.
func listResumeFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory: %w", err)
	}

	files := []string{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".text", ".html", ".htm":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}
