package main

import (
	"bytes"
	"testing"
)

// execute runs the root command with args and returns captured stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Command globals persist between runs; reset the ones tests set.
	t.Cleanup(func() {
		configPath = ""
		lexiconPath = ""
		logLevel = ""
		logFormat = ""
		verbose = false
		extractOutput = ""
		extractPretty = false
		batchOutDir = ""
		batchWorkers = 0
		validateSchemaPath = ""
	})

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}
