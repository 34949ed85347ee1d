// Package lexicon provides the immutable keyword configuration the
// extraction pipeline is built against: section header sets, job-title and
// company indicators, the curated skill list with synonyms, certification
// canonical names, and domain keyword sets. A Lexicon is loaded once at
// pipeline construction and shared read-only, so concurrent pipeline
// instances never contend.
package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// CertificationAlias maps textual variants of one credential to its
// canonical name.
type CertificationAlias struct {
	Canonical string   `yaml:"canonical" validate:"required"`
	Variants  []string `yaml:"variants" validate:"required,min=1"`
}

// Lexicon is the loaded keyword configuration. Fields are exported for
// serialization; callers should treat a loaded Lexicon as read-only.
type Lexicon struct {
	SectionHeaders   map[string][]string  `yaml:"section_headers" validate:"required,min=1"`
	JobTitleKeywords []string             `yaml:"job_title_keywords" validate:"required,min=1"`
	CompanySuffixes  []string             `yaml:"company_suffixes" validate:"required,min=1"`
	EmploymentTypes  []string             `yaml:"employment_types"`
	DegreeKeywords   []string             `yaml:"degree_keywords" validate:"required,min=1"`
	Skills           []string             `yaml:"skills" validate:"required,min=1"`
	SkillSynonyms    map[string]string    `yaml:"skill_synonyms"`
	AcronymAllowlist []string             `yaml:"acronym_allowlist"`
	CategoryHeaders  []string             `yaml:"category_headers"`
	CategoryPrefixes []string             `yaml:"category_prefixes"`
	GenericPhrases   []string             `yaml:"generic_phrases"`
	ActionVerbs      []string             `yaml:"action_verbs"`
	Certifications   []CertificationAlias `yaml:"certifications"`
	DomainKeywords   map[string][]string  `yaml:"domain_keywords" validate:"required,min=1"`

	// Lowercased lookup sets built once at load time.
	jobTitleSet  map[string]struct{}
	suffixSet    map[string]struct{}
	degreeSet    map[string]struct{}
	skillSet     map[string]struct{}
	acronymSet   map[string]struct{}
	categorySet  map[string]struct{}
	verbSet      map[string]struct{}
	certVariants map[string]string
}

// Default loads the embedded lexicon. The embedded data is validated at
// build time by tests, so a failure here is a programming error.
func Default() *Lexicon {
	lex, err := Parse(defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded lexicon is invalid: %v", err))
	}
	return lex
}

// LoadFile loads and validates a lexicon override from a YAML file.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}
	lex, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// Parse unmarshals, validates, and indexes lexicon YAML content.
func Parse(data []byte) (*Lexicon, error) {
	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon YAML: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&lex); err != nil {
		return nil, fmt.Errorf("lexicon validation failed: %w", err)
	}

	lex.buildIndexes()
	return &lex, nil
}

func (l *Lexicon) buildIndexes() {
	l.jobTitleSet = lowerSet(l.JobTitleKeywords)
	l.suffixSet = lowerSet(l.CompanySuffixes)
	l.degreeSet = lowerSet(l.DegreeKeywords)
	l.skillSet = lowerSet(l.Skills)
	l.acronymSet = make(map[string]struct{}, len(l.AcronymAllowlist))
	for _, a := range l.AcronymAllowlist {
		l.acronymSet[strings.ToUpper(a)] = struct{}{}
	}
	l.categorySet = lowerSet(l.CategoryHeaders)
	l.verbSet = lowerSet(l.ActionVerbs)

	l.certVariants = make(map[string]string)
	for _, alias := range l.Certifications {
		for _, variant := range alias.Variants {
			l.certVariants[strings.ToLower(strings.TrimSpace(variant))] = alias.Canonical
		}
		l.certVariants[strings.ToLower(alias.Canonical)] = alias.Canonical
	}
}

func lowerSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	return set
}

// HasJobTitleKeyword reports whether any word of the text is a known
// job-title noun ("Engineer", "Manager", ...).
func (l *Lexicon) HasJobTitleKeyword(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ",.()/")
		if _, ok := l.jobTitleSet[word]; ok {
			return true
		}
	}
	return false
}

// HasCompanySuffix reports whether the text carries a company-indicating
// token ("Inc", "LLC", "Corp", ...).
func (l *Lexicon) HasCompanySuffix(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ",.()")
		if _, ok := l.suffixSet[word]; ok {
			return true
		}
	}
	return false
}

// HasDegreeKeyword reports whether any word of the line is a known degree
// term ("bachelor", "mba", "b.s.").
func (l *Lexicon) HasDegreeKeyword(text string) bool {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if _, ok := l.degreeSet[strings.Trim(word, ",()")]; ok {
			return true
		}
		// Dotted abbreviations keep their trailing period in the lexicon.
		if _, ok := l.degreeSet[strings.Trim(word, ",()")+"."]; ok {
			return true
		}
	}
	return false
}

// IsKnownSkill reports whether the name is on the curated skill list.
func (l *Lexicon) IsKnownSkill(name string) bool {
	_, ok := l.skillSet[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// CanonicalSkill resolves a synonym ("golang", "k8s") to its canonical
// skill name, or returns the trimmed input unchanged.
func (l *Lexicon) CanonicalSkill(name string) string {
	trimmed := strings.TrimSpace(name)
	if canonical, ok := l.SkillSynonyms[strings.ToLower(trimmed)]; ok {
		return canonical
	}
	return trimmed
}

// IsAllowedAcronym reports whether an all-caps token is on the acronym
// allow-list ("AWS", "SQL").
func (l *Lexicon) IsAllowedAcronym(token string) bool {
	_, ok := l.acronymSet[strings.ToUpper(strings.TrimSpace(token))]
	return ok
}

// IsCategoryHeader reports whether the token is a known category-header
// word. The match is exact and case-insensitive so legitimate acronyms are
// never dropped by accident.
func (l *Lexicon) IsCategoryHeader(token string) bool {
	_, ok := l.categorySet[strings.ToLower(strings.TrimSpace(token))]
	return ok
}

// IsActionVerb reports whether the first word of the line is a known
// job-duty verb ("Architected", "Managed", ...). Used as a negative filter
// so description lines never open a new position.
func (l *Lexicon) IsActionVerb(word string) bool {
	_, ok := l.verbSet[strings.ToLower(strings.Trim(word, ",.:"))]
	return ok
}

// CanonicalCertification resolves a certification variant to its canonical
// name. The second return reports whether the variant was recognized.
func (l *Lexicon) CanonicalCertification(name string) (string, bool) {
	canonical, ok := l.certVariants[strings.ToLower(strings.TrimSpace(name))]
	return canonical, ok
}
