// Package ingestion reads resume files into clean text for the pipeline.
// File-boundary concerns live here: encodings of line endings, trailing
// whitespace, runaway blank runs, and HTML exports. In-document whitespace
// semantics (hard gaps, delimiter classes) belong to the normalizer and are
// deliberately left untouched.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var excessBlankRe = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes file-level text artifacts while preserving the
// layout the extractors read: tabs and multi-space runs stay exactly as
// written.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	// Normalize line endings (CRLF → LF)
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	// Trim trailing whitespace per line; leading layout is meaningful.
	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}
	content = strings.Join(cleaned, "\n")

	// Reduce 3+ consecutive blank lines to a single blank line pair.
	content = excessBlankRe.ReplaceAllString(content, "\n\n")

	return strings.Trim(content, "\n")
}

// IngestFromFile reads a resume file, cleans it, and returns the text with
// extraction metadata. HTML exports are converted to text first.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}

	cleanedText := CleanText(text)
	metadata := NewMetadata(cleanedText, path)

	return cleanedText, metadata, nil
}
