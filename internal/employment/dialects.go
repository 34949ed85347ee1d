package employment

import (
	"strings"

	"github.com/jonathan/resume-extractor/internal/normalize"
	"github.com/jonathan/resume-extractor/internal/types"
)

// maxTitleLen bounds standalone job-title candidates; anything longer reads
// as prose.
const maxTitleLen = 60

// titleLookahead is how many lines past a standalone title the title-first
// dialect searches for its date line.
const titleLookahead = 3

// detectPipe handles "Senior Engineer | Acme Inc | 2020 - Present".
// The split is only trusted when the title segment carries a job-title noun
// or the company segment carries a company suffix; anything else stays
// description text.
func (e *Extractor) detectPipe(lines []types.Line, i int) (match, bool) {
	text := lines[i].Text
	if !strings.Contains(text, "|") {
		return match{}, false
	}

	parts := splitTrimmed(text, "|")
	if len(parts) < 2 {
		return match{}, false
	}
	if !e.lex.HasJobTitleKeyword(parts[0]) && !e.lex.HasCompanySuffix(parts[1]) {
		return match{}, false
	}

	pos := types.Position{JobTitle: parts[0], CompanyName: parts[1]}
	for _, part := range parts[2:] {
		switch {
		case pos.DateRange.IsZero() && e.dates.LooksLikeRange(part):
			if rng, ok := e.dates.ParseRange(part); ok {
				pos.DateRange = rng
			}
		case pos.EmploymentType == "" && e.employmentType(part) != "":
			pos.EmploymentType = e.employmentType(part)
		case pos.Location == "":
			pos.Location = part
		}
	}
	return match{pos: pos, consumed: 1}, true
}

// detectClient handles "Client: Visa, San Francisco, CA\t\tSep 2022 - Current".
// The split is two-stage by design: first the hard-gap (tab / wide-space)
// delimiter separates the company-location column from the date column,
// then the company splits from the location on the first comma only.
// Splitting on commas and whitespace in one pass misassigns characters when
// the location itself is a "City, ST" pair.
func (e *Extractor) detectClient(lines []types.Line, i int) (match, bool) {
	text := strings.TrimSpace(lines[i].Text)
	lower := strings.ToLower(text)
	if !strings.HasPrefix(lower, "client:") && !strings.HasPrefix(lower, "client :") {
		return match{}, false
	}

	remainder := strings.TrimSpace(text[strings.Index(text, ":")+1:])
	if remainder == "" {
		return match{}, false
	}

	// Stage one: hard-gap split.
	fields := normalize.SplitHardGaps(remainder)
	pos := types.Position{}

	companyField := fields[0]
	for _, field := range fields[1:] {
		if pos.DateRange.IsZero() {
			if rng, ok := e.dates.ParseRange(field); ok {
				pos.DateRange = rng
				continue
			}
		}
		// A non-date trailing column joins the company field.
		companyField = companyField + " " + field
	}

	// Stage two: first comma only.
	company, location := splitFirstComma(companyField)
	pos.CompanyName = company
	pos.Location = location

	consumed := 1
	// A standalone title line often follows the client line.
	if j, ok := nextNonBlank(lines, i+1); ok && e.looksLikeTitle(lines[j].Text) {
		pos.JobTitle = strings.TrimSpace(lines[j].Text)
		consumed = j - i + 1
	}
	return match{pos: pos, consumed: consumed}, true
}

// detectTabular handles tab-aligned columns: [title, company, dates] or
// [title, company, start, end].
func (e *Extractor) detectTabular(lines []types.Line, i int) (match, bool) {
	text := lines[i].Text
	if strings.Count(text, "\t") < 2 {
		return match{}, false
	}

	fields := normalize.SplitHardGaps(text)
	if len(fields) < 3 {
		return match{}, false
	}
	if !e.lex.HasJobTitleKeyword(fields[0]) && !e.lex.HasCompanySuffix(fields[1]) {
		return match{}, false
	}

	// Date columns sit at the tail: either one range column or separate
	// start and end columns.
	dateSpan := fields[len(fields)-1]
	rest := fields[:len(fields)-1]
	if len(fields) >= 4 && e.dates.LooksLikeRange(fields[len(fields)-2]) && e.dates.LooksLikeRange(fields[len(fields)-1]) {
		dateSpan = fields[len(fields)-2] + " - " + fields[len(fields)-1]
		rest = fields[:len(fields)-2]
	}

	rng, ok := e.dates.ParseRange(dateSpan)
	if !ok {
		return match{}, false
	}

	pos := types.Position{JobTitle: rest[0], DateRange: rng}
	if len(rest) > 1 {
		pos.CompanyName = rest[1]
	}
	if len(rest) > 2 {
		pos.Location = rest[2]
	}
	return match{pos: pos, consumed: 1}, true
}

// detectTitleFirst handles a job title on its own line, optionally followed
// by blank lines, then a line that is purely a date range, then a company
// line.
func (e *Extractor) detectTitleFirst(lines []types.Line, i int) (match, bool) {
	if !e.looksLikeTitle(lines[i].Text) {
		return match{}, false
	}

	dateIdx := -1
	for j := i + 1; j <= i+titleLookahead && j < len(lines); j++ {
		if lines[j].IsBlank() {
			continue
		}
		if e.dates.LooksLikeRange(lines[j].Text) {
			dateIdx = j
		}
		break
	}
	if dateIdx == -1 {
		return match{}, false
	}

	pos := types.Position{JobTitle: strings.TrimSpace(lines[i].Text)}
	if rng, ok := e.dates.ParseRange(lines[dateIdx].Text); ok {
		pos.DateRange = rng
	}
	consumed := dateIdx - i + 1

	if j, ok := nextNonBlank(lines, dateIdx+1); ok {
		candidate := strings.TrimSpace(lines[j].Text)
		if e.looksLikeCompanyLine(candidate) {
			company, location := splitFirstComma(candidate)
			pos.CompanyName = company
			pos.Location = location
			consumed = j - i + 1
		}
	}
	return match{pos: pos, consumed: consumed}, true
}

// detectTraditional handles the bulleted layout: a company (+ optional
// location, optional dates) header line followed by a title line. Requiring
// both the company-or-date indicator and the nearby title keyword keeps
// plain prose from opening positions.
func (e *Extractor) detectTraditional(lines []types.Line, i int) (match, bool) {
	text := strings.TrimSpace(lines[i].Text)
	if text == "" || len(text) >= maxTitleLen || strings.Contains(text, "|") {
		return match{}, false
	}

	hasCompany := e.lex.HasCompanySuffix(text)
	rng, hasDate := e.extractTrailingRange(text)
	if !hasCompany && !hasDate {
		return match{}, false
	}

	j, ok := nextNonBlank(lines, i+1)
	if !ok || !e.looksLikeTitle(lines[j].Text) {
		return match{}, false
	}

	header := text
	if hasDate {
		header = e.dates.StripDates(trimRangeText(text))
	}
	company, location := splitFirstComma(header)

	pos := types.Position{
		JobTitle:    strings.TrimSpace(lines[j].Text),
		CompanyName: company,
		Location:    location,
		DateRange:   rng,
	}

	consumed := j - i + 1
	if k, ok := nextNonBlank(lines, j+1); ok && pos.DateRange.IsZero() && e.dates.LooksLikeRange(lines[k].Text) {
		if r, okParse := e.dates.ParseRange(lines[k].Text); okParse {
			pos.DateRange = r
			consumed = k - i + 1
		}
	}
	return match{pos: pos, consumed: consumed}, true
}

// looksLikeCompanyLine reports whether a line can close a title-first block
// as its company/location line: short, free of structural delimiters, not a
// bullet or duty sentence, not another title, and not a date line.
func (e *Extractor) looksLikeCompanyLine(text string) bool {
	if text == "" || len(text) >= maxTitleLen {
		return false
	}
	if strings.Contains(text, "|") || strings.Contains(text, "\t") {
		return false
	}
	if strings.HasPrefix(strings.ToLower(text), "client") {
		return false
	}
	if e.isDescriptionLine(text) || e.looksLikeTitle(text) || e.dates.LooksLikeRange(text) {
		return false
	}
	return true
}

// looksLikeTitle reports whether a line reads as a standalone job title:
// short, carries a title noun, no structural delimiters, and is not itself
// a date range or a bullet.
func (e *Extractor) looksLikeTitle(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || len(trimmed) >= maxTitleLen {
		return false
	}
	if strings.Contains(trimmed, "|") || strings.Contains(trimmed, "\t") || isBullet(trimmed) {
		return false
	}
	if e.dates.LooksLikeRange(trimmed) {
		return false
	}
	return e.lex.HasJobTitleKeyword(trimmed)
}

// extractTrailingRange parses a date range embedded at the end of a header
// line, e.g. "Acme Inc, Boston Jan 2020 - Mar 2022".
func (e *Extractor) extractTrailingRange(text string) (types.DateRange, bool) {
	fields := normalize.SplitHardGaps(text)
	tail := fields[len(fields)-1]
	if e.dates.LooksLikeRange(tail) {
		if rng, ok := e.dates.ParseRange(tail); ok {
			return rng, true
		}
	}
	if rng, ok := e.dates.ParseRange(text); ok && rng.Start != nil {
		return rng, true
	}
	return types.DateRange{}, false
}

// trimRangeText drops the hard-gap-separated trailing date column.
func trimRangeText(text string) string {
	if idx := strings.LastIndex(text, "\t"); idx >= 0 {
		return text[:idx]
	}
	return text
}

// employmentType matches a segment like "(Contract)" or "Full-time" against
// the lexicon's employment type list.
func (e *Extractor) employmentType(part string) string {
	cleaned := strings.ToLower(strings.Trim(strings.TrimSpace(part), "()"))
	for _, et := range e.lex.EmploymentTypes {
		if cleaned == strings.ToLower(et) {
			return strings.Trim(strings.TrimSpace(part), "()")
		}
	}
	return ""
}

func splitTrimmed(text, sep string) []string {
	raw := strings.Split(text, sep)
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// splitFirstComma splits "Company, City, ST" into company and location on
// the first comma only, keeping comma-bearing locations intact.
func splitFirstComma(text string) (string, string) {
	parts := strings.SplitN(text, ",", 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func nextNonBlank(lines []types.Line, from int) (int, bool) {
	for j := from; j < len(lines); j++ {
		if !lines[j].IsBlank() {
			return j, true
		}
	}
	return 0, false
}
