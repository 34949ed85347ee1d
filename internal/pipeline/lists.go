package pipeline

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// maxResponsibilities caps the key-responsibilities digest; leading bullets
// carry the weight in most resumes.
const maxResponsibilities = 10

// statedYearsRe captures a self-reported "10+ years of experience" claim.
var statedYearsRe = regexp.MustCompile(`(?i)(\d{1,2}\+?)\s*years?\s+(?:of\s+)?(?:\w+\s+){0,2}?experience`)

// OverallSummary returns the Summary section text, or empty when the
// resume has none. Summaries are never synthesized from other sections.
func OverallSummary(secs []types.Section) string {
	sec, ok := sections.Find(secs, types.SectionSummary)
	if !ok {
		return ""
	}
	parts := []string{}
	for _, line := range sec.Lines {
		if text := strings.TrimSpace(line.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " ")
}

// StatedExperience returns the candidate's own "N+ years" experience claim
// from the summary, verbatim. The computed total stays authoritative; this
// is informational only.
func StatedExperience(secs []types.Section) string {
	sec, ok := sections.Find(secs, types.SectionSummary)
	if !ok {
		return ""
	}
	if m := statedYearsRe.FindStringSubmatch(sec.Text()); m != nil {
		return m[1] + " years"
	}
	return ""
}

// Languages returns the entries of the Languages section, one per listed
// language, proficiency annotations kept as written.
func Languages(secs []types.Section) []string {
	sec, ok := sections.Find(secs, types.SectionLanguages)
	if !ok {
		return []string{}
	}
	return listItems(sec)
}

// Achievements returns the lines of the Achievements section.
func Achievements(secs []types.Section) []string {
	sec, ok := sections.Find(secs, types.SectionAchievements)
	if !ok {
		return []string{}
	}
	return listItems(sec)
}

// Projects returns the Projects section as entries: each non-bullet line
// opens a project, following bullet or indented lines describe it.
func Projects(secs []types.Section) []types.ProjectEntry {
	entries := []types.ProjectEntry{}
	sec, ok := sections.Find(secs, types.SectionProjects)
	if !ok {
		return entries
	}

	var current *types.ProjectEntry
	flush := func() {
		if current != nil {
			current.Description = strings.TrimSpace(current.Description)
			entries = append(entries, *current)
			current = nil
		}
	}
	for _, line := range sec.Lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			flush()
			continue
		}
		if isBulleted(text) && current != nil {
			if current.Description != "" {
				current.Description += " "
			}
			current.Description += trimBullet(text)
			continue
		}
		flush()
		name, desc, _ := strings.Cut(text, " - ")
		current = &types.ProjectEntry{Name: strings.TrimSpace(name), Description: strings.TrimSpace(desc)}
	}
	flush()
	return entries
}

// KeyResponsibilities digests the leading bullet points across positions
// in document order, capped.
func KeyResponsibilities(positions []types.Position) []string {
	out := []string{}
	for _, pos := range positions {
		for i, r := range pos.Responsibilities {
			if i >= 2 {
				break
			}
			out = append(out, r)
			if len(out) >= maxResponsibilities {
				return out
			}
		}
	}
	return out
}

// listItems splits a list section into items on bullets, commas, and
// semicolons, one trimmed item per entry.
func listItems(sec types.Section) []string {
	items := []string{}
	for _, line := range sec.Lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		text = strings.ReplaceAll(text, ";", ",")
		text = strings.ReplaceAll(text, "•", ",")
		text = strings.ReplaceAll(text, "\t", ",")
		for _, item := range strings.Split(text, ",") {
			if item = strings.TrimSpace(strings.TrimLeft(item, "-* ")); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}

func isBulleted(text string) bool {
	return strings.HasPrefix(text, "•") || strings.HasPrefix(text, "- ") ||
		strings.HasPrefix(text, "* ") || strings.HasPrefix(text, "> ")
}

func trimBullet(text string) string {
	return strings.TrimSpace(strings.TrimLeft(text, "•-*> "))
}
