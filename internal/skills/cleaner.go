package skills

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-extractor/internal/lexicon"
)

// maxAcronymLen is the longest all-caps token accepted without an allow-list
// entry. "AWS" and "SQL" pass; "TECHNICAL" does not.
const maxAcronymLen = 4

var pureDigitsRe = regexp.MustCompile(`^\d+$`)

// Clean applies the cleaning rules to raw skill tokens, in order:
// digits, category headers, unlisted long acronyms, emails and filler
// phrases, parenthetical fragment merging, then prefix-trimmed
// case-insensitive dedup. Each rule is exposed separately for testing.
func Clean(lex *lexicon.Lexicon, tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if IsPureDigits(token) {
			continue
		}
		if lex.IsCategoryHeader(token) {
			continue
		}
		if IsUnlistedAcronym(lex, token) {
			continue
		}
		if IsNoise(lex, token) {
			continue
		}
		kept = append(kept, token)
	}

	kept = MergeFragments(kept)
	return Dedupe(lex, kept)
}

// IsPureDigits reports rule 1: a bare number is a year or a count that leaked
// out of a date column, never a skill.
func IsPureDigits(token string) bool {
	return pureDigitsRe.MatchString(token)
}

// IsUnlistedAcronym reports rule 3: all-uppercase tokens longer than four
// characters are shouting header words unless the acronym allow-list says
// otherwise.
func IsUnlistedAcronym(lex *lexicon.Lexicon, token string) bool {
	letters := 0
	for _, r := range token {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			letters++
		}
	}
	if letters <= maxAcronymLen {
		return false
	}
	return !lex.IsAllowedAcronym(token)
}

// IsNoise reports rule 4: emails and generic filler phrases.
func IsNoise(lex *lexicon.Lexicon, token string) bool {
	if strings.Contains(token, "@") {
		return true
	}
	lower := strings.ToLower(token)
	for _, phrase := range lex.GenericPhrases {
		if strings.HasPrefix(lower, strings.ToLower(phrase)) {
			return true
		}
	}
	return false
}

// MergeFragments reattaches entries split across a delimiter inside a
// parenthetical: "methodology (Waterfall" + "Agile)" becomes
// "methodology (Waterfall & Agile)".
func MergeFragments(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		for openParens(token) > 0 && i+1 < len(tokens) {
			i++
			token = token + " & " + tokens[i]
		}
		out = append(out, token)
	}
	return out
}

func openParens(token string) int {
	return strings.Count(token, "(") - strings.Count(token, ")")
}

// Dedupe implements rule 6: entries equal case-insensitively after trimming
// known category prefixes collapse to one, keeping the first occurrence's
// trimmed form.
func Dedupe(lex *lexicon.Lexicon, tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		trimmed := TrimCategoryPrefix(lex, token)
		if trimmed == "" {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, trimmed)
	}
	return out
}

// TrimCategoryPrefix strips a leading "Programming Languages:"-style label.
func TrimCategoryPrefix(lex *lexicon.Lexicon, token string) string {
	lower := strings.ToLower(token)
	for _, prefix := range lex.CategoryPrefixes {
		if strings.HasPrefix(lower, strings.ToLower(prefix)) {
			return strings.TrimSpace(token[len(prefix):])
		}
	}
	return strings.TrimSpace(token)
}
