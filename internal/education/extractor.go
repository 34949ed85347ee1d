// Package education extracts degree entries from the Education section.
// Degrees anchor entries; the institution is read off the same line or a
// neighboring one, so both "degree then school" and "school then degree"
// layouts work.
package education

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// institutionWords mark a line as naming a school rather than a degree.
var institutionWords = []string{
	"university", "college", "institute", "school", "academy", "polytechnic",
}

// Extractor reads education entries out of segmented documents.
type Extractor struct {
	lex   *lexicon.Lexicon
	dates *dates.Parser
}

// NewExtractor builds an education extractor.
func NewExtractor(lex *lexicon.Lexicon, parser *dates.Parser) *Extractor {
	return &Extractor{lex: lex, dates: parser}
}

// Extract returns the education entries found in the Education section, in
// document order. Lines without a degree keyword never produce an entry on
// their own; unpaired institution lines are dropped rather than guessed at.
func (e *Extractor) Extract(secs []types.Section) []types.EducationEntry {
	entries := []types.EducationEntry{}
	sec, ok := sections.Find(secs, types.SectionEducation)
	if !ok {
		return entries
	}

	lines := sec.Lines
	for i := 0; i < len(lines); i++ {
		text := strings.TrimSpace(lines[i].Text)
		if text == "" || !e.lex.HasDegreeKeyword(text) {
			continue
		}

		entry := e.parseDegreeLine(text)

		// Institution on an adjacent line when the degree line did not
		// carry one: the previous line for "school first" layouts, the
		// next for "degree first".
		if entry.Institution == "" {
			if inst, extra := e.institutionLine(lines, i-1); inst != "" {
				entry.Institution = inst
				e.absorb(&entry, extra)
			} else if inst, extra := e.institutionLine(lines, i+1); inst != "" {
				entry.Institution = inst
				e.absorb(&entry, extra)
			}
		}
		// A date line can trail either the degree line or the institution
		// line, so look two lines ahead.
		if entry.DateRange.IsZero() {
			for j := i + 1; j <= i+2 && j < len(lines); j++ {
				next := strings.TrimSpace(lines[j].Text)
				if next == "" || !e.dates.LooksLikeRange(next) {
					continue
				}
				if dr, ok := e.dates.ParseRange(next); ok {
					entry.DateRange = dr
				}
				break
			}
		}

		entries = append(entries, entry)
	}
	return entries
}

// parseDegreeLine splits a line like
// "B.S. in Computer Science, Stanford University, 2014" into degree,
// field, institution, and dates.
func (e *Extractor) parseDegreeLine(text string) types.EducationEntry {
	entry := types.EducationEntry{}

	if dr, ok := e.dates.ParseRange(text); ok {
		entry.DateRange = dr
		text = strings.TrimSpace(strings.Trim(e.dates.StripDates(text), " ,-|"))
	}

	// Pipes and hard gaps separate degree from institution more reliably
	// than commas, so try them first.
	parts := splitStructural(text)
	degreePart := text
	for _, part := range parts {
		if e.lex.HasDegreeKeyword(part) {
			degreePart = part
		} else if entry.Institution == "" && isInstitution(part) {
			entry.Institution = part
		} else if entry.Location == "" && entry.Institution != "" {
			entry.Location = part
		}
	}

	entry.Degree, entry.Field = splitField(degreePart)
	return entry
}

// splitField divides "Bachelor of Science in Computer Science" at the
// field marker. Degrees without an "in" clause keep the whole text as the
// degree and leave the field empty.
func splitField(text string) (degree, field string) {
	lower := strings.ToLower(text)
	for _, marker := range []string{" in ", ", "} {
		if idx := strings.Index(lower, marker); idx > 0 {
			return strings.TrimSpace(text[:idx]), strings.TrimSpace(text[idx+len(marker):])
		}
	}
	return strings.TrimSpace(text), ""
}

// institutionLine reads lines[i] as an institution if it names one,
// returning the remaining comma tail (usually a location) separately.
func (e *Extractor) institutionLine(lines []types.Line, i int) (inst, extra string) {
	if i < 0 || i >= len(lines) {
		return "", ""
	}
	text := strings.TrimSpace(lines[i].Text)
	if text == "" || e.lex.HasDegreeKeyword(text) || !isInstitution(text) {
		return "", ""
	}
	text = strings.TrimSpace(strings.Trim(e.dates.StripDates(text), " ,-|"))
	if name, tail, found := strings.Cut(text, ","); found {
		return strings.TrimSpace(name), strings.TrimSpace(tail)
	}
	return text, ""
}

// absorb stores an institution line's comma tail as the location.
func (e *Extractor) absorb(entry *types.EducationEntry, extra string) {
	if entry.Location == "" {
		entry.Location = extra
	}
}

// splitStructural splits on pipes and hard gaps, falling back to commas.
func splitStructural(text string) []string {
	seps := func(r rune) bool { return r == '|' || r == '\t' }
	if strings.ContainsFunc(text, seps) {
		return trimAll(strings.FieldsFunc(text, seps))
	}
	return trimAll(strings.Split(text, ","))
}

func trimAll(parts []string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isInstitution(text string) bool {
	lower := strings.ToLower(text)
	for _, word := range institutionWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
