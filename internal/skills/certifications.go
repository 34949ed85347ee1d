package skills

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// trailingYearRe captures ", 2021" / "- 2021" / "(2021)" suffixes.
var trailingYearRe = regexp.MustCompile(`[,\-(\t ]+\(?((?:19|20)\d{2})\)?\s*$`)

// issuerSuffixRe captures a "- Issuer" tail once the year is gone.
var issuerSuffixRe = regexp.MustCompile(`\s+-\s+([^-]+)$`)

// Certifications extracts credential entries from the Certifications
// section, splits trailing issuer/year suffixes into their own fields, and
// collapses textual variants of the same credential to one canonical entry.
// The surviving name is the most complete variant seen.
func (e *Extractor) Certifications(secs []types.Section) []types.CertificationEntry {
	sec, ok := sections.Find(secs, types.SectionCertifications)
	if !ok {
		return []types.CertificationEntry{}
	}

	entries := []types.CertificationEntry{}
	order := map[string]int{}

	for _, token := range certTokenize(sec) {
		if IsPureDigits(token) || e.lex.IsCategoryHeader(token) {
			continue
		}
		entry := parseCertification(token)
		if entry.Name == "" {
			continue
		}

		key := e.certKey(entry.Name)
		idx, dup := order[key]
		if !dup {
			order[key] = len(entries)
			entries = append(entries, entry)
			continue
		}

		// Merge variants: keep the longest name and the first non-empty
		// issuer and year.
		if len(entry.Name) > len(entries[idx].Name) {
			entries[idx].Name = entry.Name
		}
		if entries[idx].Issuer == "" {
			entries[idx].Issuer = entry.Issuer
		}
		if entries[idx].IssuedYear == "" {
			entries[idx].IssuedYear = entry.IssuedYear
		}
	}

	// Known credentials surface under their canonical table name when it is
	// more complete than anything the resume spelled out.
	for i := range entries {
		if canonical, ok := e.lex.CanonicalCertification(entries[i].Name); ok && len(canonical) > len(entries[i].Name) {
			entries[i].Name = canonical
		}
	}
	return entries
}

// certTokenize splits the Certifications section into one token per
// credential. Unlike the skills tokenizer it leaves commas alone when they
// introduce a year suffix ("PMP - PMI, 2020" is one credential, not two).
func certTokenize(sec types.Section) []string {
	tokens := []string{}
	for _, line := range sec.Lines {
		text := strings.TrimSpace(line.Text)
		if text == "" {
			continue
		}
		text = strings.ReplaceAll(text, ";", "|")
		text = strings.ReplaceAll(text, "\t", "|")
		text = strings.ReplaceAll(text, "•", "|")
		for _, piece := range strings.Split(text, "|") {
			piece = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(piece), "-* "))
			if piece == "" {
				continue
			}
			if !trailingYearRe.MatchString(piece) && strings.Contains(piece, ",") {
				for _, sub := range strings.Split(piece, ",") {
					if sub = strings.TrimSpace(sub); sub != "" {
						tokens = append(tokens, sub)
					}
				}
				continue
			}
			tokens = append(tokens, piece)
		}
	}
	return tokens
}

// certKey groups credential variants: known variants share their canonical
// table name; unknown names group case-insensitively.
func (e *Extractor) certKey(name string) string {
	if canonical, ok := e.lex.CanonicalCertification(name); ok {
		return strings.ToLower(canonical)
	}
	return strings.ToLower(name)
}

// parseCertification splits "AWS Solutions Architect - Amazon, 2021" into
// name, issuer, and year. Suffixes that are not present stay empty.
func parseCertification(token string) types.CertificationEntry {
	entry := types.CertificationEntry{}
	name := strings.TrimSpace(token)

	if m := trailingYearRe.FindStringSubmatch(name); m != nil {
		entry.IssuedYear = m[1]
		name = strings.TrimSpace(trailingYearRe.ReplaceAllString(name, ""))
	}
	if m := issuerSuffixRe.FindStringSubmatch(name); m != nil {
		issuer := strings.TrimSpace(m[1])
		// A short trailing segment with no credential keyword reads as the
		// issuing body.
		if issuer != "" && !strings.Contains(strings.ToLower(issuer), "certif") {
			entry.Issuer = issuer
			name = strings.TrimSpace(issuerSuffixRe.ReplaceAllString(name, ""))
		}
	}

	entry.Name = strings.TrimSpace(strings.TrimRight(name, ",-"))
	return entry
}
