// Package normalize turns raw resume text into the NormalizedDocument the
// rest of the pipeline consumes: Unicode punctuation variants mapped to
// ASCII, whitespace runs collapsed into a distinguishable hard-gap marker,
// and lines split with blank lines retained as boundary markers.
package normalize

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

// unicodeReplacer maps apostrophe, quote, and dash variants to ASCII so
// downstream pattern matching only sees one spelling of each.
var unicodeReplacer = strings.NewReplacer(
	"’", "'", // right single quote
	"‘", "'", // left single quote
	"ʼ", "'", // modifier letter apostrophe
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	" ", " ", // non-breaking space
	"•", "•", // canonical bullet (identity; keeps replacer symmetric)
	"·", "•", // middle dot bullet
	"▪", "•", // small square bullet
)

// Text normalizes raw resume text into an ordered line document. A tab or a
// run of two or more spaces collapses to a single tab: this keeps the
// "Company, Location<tab>Date Range" column boundary distinguishable from
// ordinary word spacing. Empty input yields an empty document, never an
// error.
func Text(raw string) types.NormalizedDocument {
	if raw == "" {
		return types.NormalizedDocument{Lines: []types.Line{}}
	}

	raw = unicodeReplacer.Replace(raw)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	rawLines := strings.Split(raw, "\n")
	lines := make([]types.Line, 0, len(rawLines))
	for i, rawLine := range rawLines {
		lines = append(lines, types.Line{
			Text:  collapseWhitespace(rawLine),
			Index: i,
		})
	}
	return types.NormalizedDocument{Lines: lines}
}

// collapseWhitespace rewrites a line so word gaps are a single space and
// hard gaps (tab, or >=2 consecutive spaces) are a single tab. Leading and
// trailing whitespace is dropped.
func collapseWhitespace(line string) string {
	var b strings.Builder
	b.Grow(len(line))

	spaces := 0
	hard := false
	flush := func() {
		if spaces == 0 && !hard {
			return
		}
		if b.Len() > 0 {
			if hard || spaces >= 2 {
				b.WriteByte('\t')
			} else {
				b.WriteByte(' ')
			}
		}
		spaces = 0
		hard = false
	}

	for _, r := range line {
		switch r {
		case ' ':
			spaces++
		case '\t', '\v', '\f':
			hard = true
		default:
			flush()
			b.WriteRune(r)
		}
	}
	// Trailing whitespace is intentionally discarded.
	return b.String()
}

// SplitHardGaps splits a normalized line on its tab markers, trimming each
// field. Used by layouts that separate columns with tabs or wide spacing.
func SplitHardGaps(line string) []string {
	parts := strings.Split(line, "\t")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}
