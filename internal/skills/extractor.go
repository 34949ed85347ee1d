// Package skills extracts skill and certification entries from dedicated
// resume sections and from inline mentions, then filters noise and
// deduplicates variants. Extraction prefers the dedicated section; inline
// matching against the curated lexicon list backfills resumes that weave
// skills through their experience text.
package skills

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// yearsSuffixRe captures "- 5 years" / "(3+ years)" experience qualifiers.
var yearsSuffixRe = regexp.MustCompile(`(?i)[-(\t ]*(\d{1,2})\+?\s*(?:years?|yrs?)\)?\s*$`)

// lastUsedRe captures "last used 2021" qualifiers.
var lastUsedRe = regexp.MustCompile(`(?i)[-(\t ]*last used:?\s*(\d{4})\)?\s*$`)

// Extractor pulls skill entries out of segmented documents.
type Extractor struct {
	lex *lexicon.Lexicon
}

// NewExtractor builds a skills extractor over the given lexicon.
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the deduplicated skill entries for the document. Entries
// come from the Skills section first; inline curated-list matches from the
// Experience and Summary sections are appended when not already present.
func (e *Extractor) Extract(secs []types.Section) []types.SkillEntry {
	entries := []types.SkillEntry{}
	seen := map[string]struct{}{}

	add := func(entry types.SkillEntry) {
		key := strings.ToLower(entry.Name)
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		entries = append(entries, entry)
	}

	if sec, ok := sections.Find(secs, types.SectionSkills); ok {
		for _, name := range Clean(e.lex, Tokenize(sec)) {
			add(e.toEntry(name))
		}
	}

	for _, kind := range []types.SectionKind{types.SectionExperience, types.SectionSummary} {
		if sec, ok := sections.Find(secs, kind); ok {
			for _, name := range e.inlineMatches(sec.Text()) {
				add(types.SkillEntry{Name: name})
			}
		}
	}

	return entries
}

// RelevantSkills filters entries down to names on the curated lexicon list,
// in entry order.
func (e *Extractor) RelevantSkills(entries []types.SkillEntry) []string {
	relevant := []string{}
	for _, entry := range entries {
		if e.lex.IsKnownSkill(entry.Name) || e.lex.IsKnownSkill(e.lex.CanonicalSkill(entry.Name)) {
			relevant = append(relevant, entry.Name)
		}
	}
	return relevant
}

// Tokenize splits a Skills section into raw candidate tokens on the common
// list delimiters: commas, semicolons, pipes, bullets, and hard gaps.
func Tokenize(sec types.Section) []string {
	tokens := []string{}
	for _, line := range sec.Lines {
		text := line.Text
		if text == "" {
			continue
		}
		text = strings.ReplaceAll(text, ";", ",")
		text = strings.ReplaceAll(text, "|", ",")
		text = strings.ReplaceAll(text, "\t", ",")
		text = strings.ReplaceAll(text, "•", ",")
		for _, token := range strings.Split(text, ",") {
			token = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(token), "-* "))
			if token != "" {
				tokens = append(tokens, token)
			}
		}
	}
	return tokens
}

// toEntry parses experience-duration and last-used qualifiers off the end
// of a token. Absent qualifiers stay zero-valued; they are never inferred.
func (e *Extractor) toEntry(name string) types.SkillEntry {
	entry := types.SkillEntry{}

	if m := lastUsedRe.FindStringSubmatch(name); m != nil {
		entry.LastUsed = m[1]
		name = strings.TrimSpace(lastUsedRe.ReplaceAllString(name, ""))
	}
	if m := yearsSuffixRe.FindStringSubmatch(name); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			entry.ExperienceMonths = years * 12
		}
		name = strings.TrimSpace(yearsSuffixRe.ReplaceAllString(name, ""))
	}

	entry.Name = e.lex.CanonicalSkill(name)
	return entry
}

// inlineMatches finds curated skills mentioned in free text. Matching is
// case-insensitive on word boundaries so "go" does not fire inside "going".
func (e *Extractor) inlineMatches(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range e.lex.Skills {
		if containsWord(lower, strings.ToLower(skill)) {
			found = append(found, e.lex.CanonicalSkill(skill))
		}
	}
	return found
}

// containsWord reports whether needle occurs in haystack bounded by
// non-alphanumeric characters on both sides.
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for from := 0; ; {
		idx := strings.Index(haystack[from:], needle)
		if idx < 0 {
			return false
		}
		start := from + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return true
		}
		from = start + 1
	}
}

func boundaryBefore(s string, i int) bool {
	return i == 0 || !isWordByte(s[i-1])
}

func boundaryAfter(s string, i int) bool {
	return i >= len(s) || !isWordByte(s[i])
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
