// Package sections splits a normalized resume document into labeled
// sections using header-keyword matching. Sections partition the document
// completely: lines no header claims land in an Unknown section instead of
// being dropped.
package sections

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

// maxHeaderLen bounds header candidates. Prose sentences that happen to
// contain a section keyword are longer than real headers, so anything past
// this length is treated as body text.
const maxHeaderLen = 50

// Segmenter classifies section headers against a lexicon's header sets.
type Segmenter struct {
	headers map[string]types.SectionKind
}

// NewSegmenter builds a segmenter from the lexicon's section header sets.
func NewSegmenter(lex *lexicon.Lexicon) *Segmenter {
	headers := make(map[string]types.SectionKind)
	for kind, keywords := range lex.SectionHeaders {
		for _, keyword := range keywords {
			headers[normalizeHeader(keyword)] = types.SectionKind(kind)
		}
	}
	return &Segmenter{headers: headers}
}

// Split partitions the document into ordered sections. Every input line
// appears in exactly one section: recognized header lines ride on the
// section they open, body lines land in Lines. Lines before the first
// recognized header form a leading Unknown section, which callers treat as
// the contact block.
func (s *Segmenter) Split(doc types.NormalizedDocument) []types.Section {
	var result []types.Section
	current := types.Section{Kind: types.SectionUnknown, Lines: []types.Line{}}

	flush := func() {
		if len(current.Lines) > 0 || current.Header != nil {
			result = append(result, current)
		}
	}

	for _, line := range doc.Lines {
		line := line
		if kind, ok := s.headerKind(line.Text); ok {
			flush()
			current = types.Section{Kind: kind, Header: &line, Lines: []types.Line{}}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	flush()

	if result == nil {
		result = []types.Section{}
	}
	return result
}

// headerKind reports whether a line is a section header and which kind.
func (s *Segmenter) headerKind(text string) (types.SectionKind, bool) {
	if len(text) == 0 || len(text) >= maxHeaderLen {
		return types.SectionUnknown, false
	}
	kind, ok := s.headers[normalizeHeader(text)]
	return kind, ok
}

// normalizeHeader strips punctuation, collapses whitespace, and uppercases
// so "Work History:" and "WORK  HISTORY" both match the same keyword.
func normalizeHeader(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := true
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(unicode.ToUpper(r))
			lastSpace = false
		case (r == ' ' || r == '\t') && !lastSpace:
			b.WriteRune(' ')
			lastSpace = true
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// Find returns the first section of the given kind, or false when absent.
func Find(secs []types.Section, kind types.SectionKind) (types.Section, bool) {
	for _, sec := range secs {
		if sec.Kind == kind {
			return sec, true
		}
	}
	return types.Section{}, false
}

// ContactBlock returns the leading Unknown section, if any. Resumes open
// with name and contact lines before the first real header; that span is
// excluded from section-specific extraction but preserved for the contact
// extractor.
func ContactBlock(secs []types.Section) (types.Section, bool) {
	if len(secs) > 0 && secs[0].Kind == types.SectionUnknown {
		return secs[0], true
	}
	return types.Section{}, false
}
