// Package domain tags resumes with industry domains by matching keyword
// sets against the candidate's titles, skills, companies, and descriptions.
package domain

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Classifier maps resume text to industry-domain tags.
type Classifier struct {
	lex *lexicon.Lexicon
}

// NewClassifier builds a classifier over the given lexicon's domain
// keyword sets.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Classify returns the sorted set of domain tags whose keyword sets match
// the resume. A resume can carry several tags; multi-industry careers are
// normal. No tag is ever ranked above another.
func (c *Classifier) Classify(positions []types.Position, skills []types.SkillEntry) []string {
	corpus := c.corpus(positions, skills)

	tags := []string{}
	for tag, keywords := range c.lex.DomainKeywords {
		for _, keyword := range keywords {
			if strings.Contains(corpus, strings.ToLower(keyword)) {
				tags = append(tags, tag)
				break
			}
		}
	}
	sort.Strings(tags)
	return tags
}

// corpus concatenates the classifiable text, lowercased: job titles, skill
// names, company names, and position descriptions.
func (c *Classifier) corpus(positions []types.Position, skills []types.SkillEntry) string {
	var b strings.Builder
	for _, pos := range positions {
		b.WriteString(pos.JobTitle)
		b.WriteByte('\n')
		b.WriteString(pos.CompanyName)
		b.WriteByte('\n')
		b.WriteString(pos.Description)
		b.WriteByte('\n')
		for _, r := range pos.Responsibilities {
			b.WriteString(r)
			b.WriteByte('\n')
		}
	}
	for _, skill := range skills {
		b.WriteString(skill.Name)
		b.WriteByte('\n')
	}
	return strings.ToLower(b.String())
}
