// Package employment partitions the Experience section into discrete
// positions. Resume employment history appears in several structurally
// distinct layouts (dialects); each dialect has a detector, tried in a
// fixed declared order, and the first match wins. Lines that match no
// dialect append to the current position's description; a line is never
// promoted to a new position just because it opens with an action verb or
// a bullet marker.
package employment

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Extractor detects position boundaries and populates position fields.
type Extractor struct {
	lex   *lexicon.Lexicon
	dates *dates.Parser
}

// NewExtractor builds an employment extractor over a lexicon and a date
// parser already primed with the document's date context.
func NewExtractor(lex *lexicon.Lexicon, parser *dates.Parser) *Extractor {
	return &Extractor{lex: lex, dates: parser}
}

// match is a successful dialect detection: the opened position and how many
// input lines the detector consumed.
type match struct {
	pos      types.Position
	consumed int
}

// detector inspects the line at index i, with lookahead, and reports a new
// position boundary. Detectors must be conservative: a false positive here
// fabricates an employment record.
type detector func(e *Extractor, lines []types.Line, i int) (match, bool)

// dialectOrder is the declared precedence contract. More structural
// dialects run before looser ones.
var dialectOrder = []struct {
	name string
	fn   detector
}{
	{"pipe", (*Extractor).detectPipe},
	{"client", (*Extractor).detectClient},
	{"tabular", (*Extractor).detectTabular},
	{"title-first", (*Extractor).detectTitleFirst},
	{"traditional", (*Extractor).detectTraditional},
}

// Extract partitions the Experience section into positions in document
// order. Lines claimed by no dialect become description text of the current
// position; partial information is preferred over fabricated positions.
func (e *Extractor) Extract(sec types.Section) []types.Position {
	positions := []types.Position{}
	var current *types.Position
	var descLines []string

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.TrimSpace(strings.Join(descLines, "\n"))
		if current.Responsibilities == nil {
			current.Responsibilities = []string{}
		}
		positions = append(positions, *current)
		current = nil
		descLines = nil
	}

	lines := sec.Lines
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if line.IsBlank() {
			continue
		}

		// Negative filter first: bullets and action-verb sentences are
		// duty descriptions, never boundaries.
		if current != nil && e.isDescriptionLine(line.Text) {
			e.appendDescription(current, &descLines, line.Text)
			continue
		}

		if m, ok := e.detect(lines, i); ok {
			flush()
			pos := m.pos
			current = &pos
			i += m.consumed - 1
			continue
		}

		if current != nil {
			e.appendDescription(current, &descLines, line.Text)
		}
		// Unclaimed text before the first boundary is dropped from
		// positions but survives in the section itself.
	}
	flush()
	return positions
}

func (e *Extractor) detect(lines []types.Line, i int) (match, bool) {
	for _, d := range dialectOrder {
		if m, ok := d.fn(e, lines, i); ok {
			return m, true
		}
	}
	return match{}, false
}

// isDescriptionLine implements the negative boundary filter: bullet lines
// and lines opening with a known job-duty verb stay with the current
// position.
func (e *Extractor) isDescriptionLine(text string) bool {
	trimmed := strings.TrimSpace(text)
	if isBullet(trimmed) {
		return true
	}
	fields := strings.Fields(trimmed)
	if len(fields) == 0 {
		return false
	}
	return e.lex.IsActionVerb(fields[0])
}

func (e *Extractor) appendDescription(pos *types.Position, descLines *[]string, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	if isBullet(trimmed) {
		stripped := strings.TrimSpace(trimBullet(trimmed))
		if stripped != "" {
			pos.Responsibilities = append(pos.Responsibilities, stripped)
			*descLines = append(*descLines, stripped)
		}
		return
	}
	*descLines = append(*descLines, trimmed)
}

func isBullet(text string) bool {
	return strings.HasPrefix(text, "•") ||
		strings.HasPrefix(text, "- ") ||
		strings.HasPrefix(text, "* ") ||
		strings.HasPrefix(text, "> ")
}

func trimBullet(text string) string {
	for _, prefix := range []string{"•", "- ", "* ", "> "} {
		if strings.HasPrefix(text, prefix) {
			return strings.TrimPrefix(text, prefix)
		}
	}
	return text
}
