// Package main provides the resume_extract CLI: structured extraction of
// resume text into JSON records.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-extractor/internal/config"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "resume_extract",
	Short: "Extract structured data from resume text",
	Long: "resume_extract turns plain-text resume files into structured JSON records: " +
		"employment history, aggregated experience, skills, certifications, education, and domain tags.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configPath  string
	lexiconPath string
	logLevel    string
	logFormat   string
	verbose     bool

	// Resolved during setup, shared by all subcommands.
	cfg config.Config
	lex *lexicon.Lexicon
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&lexiconPath, "lexicon", "", "Path to a YAML lexicon override")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or pretty")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print a record summary after extraction")
}

// setup resolves flags against the optional config file, then initializes
// logging and the lexicon for every subcommand.
func setup(cmd *cobra.Command, args []string) error {
	flags := config.Config{
		Lexicon:   lexiconPath,
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Verbose:   verbose,
	}

	if configPath != "" {
		fileCfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		flags = flags.MergeWithDefaults(*fileCfg)
	}
	if err := flags.Validate(); err != nil {
		return err
	}
	cfg = flags

	logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if cfg.Lexicon != "" {
		loaded, err := lexicon.LoadFile(cfg.Lexicon)
		if err != nil {
			return err
		}
		lex = loaded
	} else {
		lex = lexicon.Default()
	}
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
