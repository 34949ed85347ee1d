// Package contact pulls personal details out of the unlabeled block that
// opens most resumes: name, email, phone, location, and profile URLs.
package contact

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/types"
)

// nameLookahead bounds how deep into the contact block a name can appear.
const nameLookahead = 5

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?1[-. ]?)?\(?([0-9]{3})\)?[-. ]?([0-9]{3})[-. ]?([0-9]{4})`)
	nameWordRe = regexp.MustCompile(`^[A-Za-z'-]+\.?$`)
	linkedinRe = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[A-Za-z0-9_-]+/?`)
	githubRe   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[A-Za-z0-9_-]+/?`)
	nonDigitRe = regexp.MustCompile(`\D`)

	// "City, ST" or "City, State" with an optional zip.
	locationRe = regexp.MustCompile(`\b([A-Z][A-Za-z .'-]+,\s*(?:[A-Z]{2}|[A-Z][a-z]+))(?:\s+\d{5})?\b`)
)

// Extractor reads personal details from the leading contact block.
type Extractor struct {
	lex *lexicon.Lexicon
}

// NewExtractor builds a contact extractor.
func NewExtractor(lex *lexicon.Lexicon) *Extractor {
	return &Extractor{lex: lex}
}

// Extract returns the personal details found in the document's contact
// block. Missing fields stay empty; nothing is inferred.
func (e *Extractor) Extract(secs []types.Section) types.PersonalDetails {
	details := types.PersonalDetails{}

	block, ok := sections.ContactBlock(secs)
	if !ok {
		return details
	}
	text := block.Text()

	if email := emailRe.FindString(text); email != "" {
		details.Email = email
	}
	if phone := phoneRe.FindString(text); phone != "" {
		details.Phone = normalizePhone(phone)
	}
	if url := linkedinRe.FindString(text); url != "" {
		details.LinkedIn = strings.TrimSuffix(url, "/")
	}
	if url := githubRe.FindString(text); url != "" {
		details.GitHub = strings.TrimSuffix(url, "/")
	}
	if loc := locationRe.FindString(stripURLs(text)); loc != "" {
		details.Location = strings.TrimSpace(loc)
	}
	details.Name = e.findName(block.Lines)

	return details
}

// findName scans the first few contact lines for a 2-4 word line of plain
// name-shaped words. Lines carrying an email, phone, URL, or job-title
// keyword are skipped rather than misread as a name.
func (e *Extractor) findName(lines []types.Line) string {
	for i, line := range lines {
		if i >= nameLookahead {
			break
		}
		text := strings.TrimSpace(line.Text)
		if text == "" || strings.Contains(text, "@") || phoneRe.MatchString(text) {
			continue
		}
		if strings.Contains(strings.ToLower(text), "linkedin.com") ||
			strings.Contains(strings.ToLower(text), "github.com") {
			continue
		}

		words := strings.Fields(text)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		plausible := true
		for _, word := range words {
			if len(word) < 2 && !strings.HasSuffix(word, ".") {
				plausible = false
				break
			}
			if !nameWordRe.MatchString(word) {
				plausible = false
				break
			}
			if e.lex.HasJobTitleKeyword(word) {
				plausible = false
				break
			}
		}
		if plausible {
			return text
		}
	}
	return ""
}

// normalizePhone renders US numbers as "(XXX) XXX-XXXX"; anything else is
// returned as found.
func normalizePhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	switch {
	case len(digits) == 10:
		return fmt.Sprintf("(%s) %s-%s", digits[0:3], digits[3:6], digits[6:10])
	case len(digits) == 11 && digits[0] == '1':
		return fmt.Sprintf("+1 (%s) %s-%s", digits[1:4], digits[4:7], digits[7:11])
	}
	return strings.TrimSpace(phone)
}

// stripURLs blanks profile URLs so "linkedin.com/in/jane" does not read as
// a "City, ST" location match.
func stripURLs(text string) string {
	text = linkedinRe.ReplaceAllString(text, "")
	return githubRe.ReplaceAllString(text, "")
}
