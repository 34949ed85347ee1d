// Package dates parses the heterogeneous date tokens found in resume text
// ("07 2021", "Jul 2021", "2021-07", "2020", "Present") into normalized
// DateRange values. Parsing never guesses: a span with no recognizable date
// token reports "absent" and callers leave the field empty.
package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/resume-extractor/internal/types"
)

// tokenRe matches a single date-like token. Alternatives are ordered so the
// most specific shape wins at each position: month-name forms, numeric
// MM/YYYY and "MM YYYY", ISO YYYY-MM[-DD], then a bare 4-digit year.
var tokenRe = regexp.MustCompile(`(?i)\b(?:` +
	`(january|february|march|april|may|june|july|august|september|october|november|december|` +
	`jan|feb|mar|apr|jun|jul|aug|sept|sep|oct|nov|dec)\.?,?[ \t]*(\d{4}|\d{2})` +
	`|(\d{1,2})[/ \t](\d{4})` +
	`|(\d{4})-(\d{1,2})(?:-\d{1,2})?` +
	`|(\d{4})` +
	`)\b`)

// ongoingRe matches the open-ended range keywords.
var ongoingRe = regexp.MustCompile(`(?i)\b(present|current|till date|till now|to date|ongoing)\b`)

// yearRe finds 4-digit years for the document-level century observation.
var yearRe = regexp.MustCompile(`\b(19|20)\d{2}\b`)

var monthIndex = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Parser converts date spans into DateRange values. A parser carries the
// century preference observed in the surrounding document so rare 2-digit
// years resolve consistently with the 4-digit years around them.
type Parser struct {
	now      types.YearMonth
	century  int // 19 or 20; 0 when the document gave no signal
	fallback int // two-digit current year, for the no-signal tie-break
}

// NewParser builds a parser with a fixed clock so extraction stays
// deterministic within one pipeline invocation.
func NewParser(now time.Time) *Parser {
	return &Parser{
		now:      types.CurrentYearMonth(now),
		fallback: now.Year() % 100,
	}
}

// Now returns the parser's fixed current YearMonth.
func (p *Parser) Now() types.YearMonth {
	return p.now
}

// ObserveText scans text for 4-digit years and records the dominant century
// as the tie-break for 2-digit years elsewhere in the same document.
func (p *Parser) ObserveText(text string) {
	counts := map[int]int{}
	for _, match := range yearRe.FindAllString(text, -1) {
		counts[int(match[0]-'0')*10+int(match[1]-'0')]++
	}
	best, bestCount := 0, 0
	for century, count := range counts {
		if count > bestCount || (count == bestCount && century > best) {
			best, bestCount = century, count
		}
	}
	p.century = best
}

// ParseRange parses a text span into a DateRange. The second return value
// reports whether any date information was found; callers must treat false
// as "absent", never as an error.
func (p *Parser) ParseRange(span string) (types.DateRange, bool) {
	tokens := tokenRe.FindAllString(span, -1)
	ongoing := ongoingRe.MatchString(span)

	var rng types.DateRange
	switch {
	case len(tokens) >= 2:
		start := p.parseToken(tokens[0])
		end := p.parseToken(tokens[1])
		rng = types.DateRange{Start: start, End: end}
		if start != nil && end != nil && end.Before(*start) {
			rng.Invalid = true
		}
	case len(tokens) == 1 && ongoing:
		rng = types.DateRange{Start: p.parseToken(tokens[0]), IsCurrent: true}
	case len(tokens) == 1:
		rng = types.DateRange{Start: p.parseToken(tokens[0])}
	case ongoing:
		rng = types.DateRange{IsCurrent: true}
	default:
		return types.DateRange{}, false
	}
	return rng, true
}

// ParseToken parses a single date token into a YearMonth. Year-only tokens
// anchor to January.
func (p *Parser) ParseToken(token string) (*types.YearMonth, bool) {
	ym := p.parseToken(token)
	return ym, ym != nil
}

// LooksLikeRange reports whether a line consists of date tokens, range
// separators, and ongoing keywords only. The employment extractor uses this
// boolean mode to classify standalone date lines without committing to a
// parse.
func (p *Parser) LooksLikeRange(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	hadToken := tokenRe.MatchString(trimmed)
	hadOngoing := ongoingRe.MatchString(trimmed)
	if !hadToken && !hadOngoing {
		return false
	}

	remainder := tokenRe.ReplaceAllString(trimmed, "")
	remainder = ongoingRe.ReplaceAllString(remainder, "")
	remainder = strings.Map(func(r rune) rune {
		switch r {
		case '-', ',', '(', ')', '.', ' ', '\t':
			return -1
		}
		return r
	}, remainder)
	remainder = strings.TrimSpace(strings.ReplaceAll(strings.ToLower(remainder), "to", ""))
	return remainder == ""
}

// StripDates removes date tokens and ongoing keywords from text, leaving
// the surrounding words. Used to peel a date range off a header line before
// the remainder is read as company and location.
func (p *Parser) StripDates(text string) string {
	out := tokenRe.ReplaceAllString(text, "")
	out = ongoingRe.ReplaceAllString(out, "")
	out = strings.TrimSpace(out)
	out = strings.TrimRight(out, " \t-–,(")
	return strings.TrimSpace(out)
}

func (p *Parser) parseToken(token string) *types.YearMonth {
	match := tokenRe.FindStringSubmatch(token)
	if match == nil {
		return nil
	}

	switch {
	case match[1] != "": // Month name + year
		month := monthIndex[strings.ToLower(match[1])[:3]]
		year, ok := p.resolveYear(match[2])
		if !ok {
			return nil
		}
		return &types.YearMonth{Year: year, Month: month}
	case match[3] != "": // MM YYYY or MM/YYYY
		month, _ := strconv.Atoi(match[3])
		if month < 1 || month > 12 {
			return nil
		}
		year, _ := strconv.Atoi(match[4])
		return &types.YearMonth{Year: year, Month: month}
	case match[5] != "": // YYYY-MM[-DD]
		year, _ := strconv.Atoi(match[5])
		month, _ := strconv.Atoi(match[6])
		if month < 1 || month > 12 {
			return nil
		}
		return &types.YearMonth{Year: year, Month: month}
	case match[7] != "": // bare YYYY
		year, _ := strconv.Atoi(match[7])
		return &types.YearMonth{Year: year, Month: 1}
	}
	return nil
}

// resolveYear expands a 2-digit year using the document's observed century,
// falling back to 20xx for values at or below the current 2-digit year and
// 19xx otherwise.
func (p *Parser) resolveYear(raw string) (int, bool) {
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	if len(raw) == 4 {
		return year, true
	}
	if p.century != 0 {
		return p.century*100 + year, true
	}
	if year <= p.fallback {
		return 2000 + year, true
	}
	return 1900 + year, true
}
