package types

// Line is a single line of normalized resume text with its position in the
// original document.
type Line struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// IsBlank reports whether the line contains no visible characters.
func (l Line) IsBlank() bool {
	for _, r := range l.Text {
		if r != ' ' && r != '\t' {
			return false
		}
	}
	return true
}

// NormalizedDocument is the ordered sequence of lines produced by the text
// normalizer. It is immutable once produced; downstream stages read it only.
type NormalizedDocument struct {
	Lines []Line `json:"lines"`
}

// IsEmpty reports whether the document has no non-blank lines.
func (d NormalizedDocument) IsEmpty() bool {
	for _, line := range d.Lines {
		if !line.IsBlank() {
			return false
		}
	}
	return true
}

// SectionKind identifies the semantic category of a resume section.
type SectionKind string

// Section kinds recognized by the segmenter. Unknown absorbs every line that
// no header claims, so sections always partition the whole document.
const (
	SectionExperience     SectionKind = "experience"
	SectionEducation      SectionKind = "education"
	SectionSkills         SectionKind = "skills"
	SectionCertifications SectionKind = "certifications"
	SectionLanguages      SectionKind = "languages"
	SectionProjects       SectionKind = "projects"
	SectionAchievements   SectionKind = "achievements"
	SectionSummary        SectionKind = "summary"
	SectionUnknown        SectionKind = "unknown"
)

// Section is a labeled contiguous span of the document. Header is the line
// whose keyword opened the section; it is nil for the leading Unknown span,
// which no header opens. Keeping it on the section means the partition
// retains every input line.
type Section struct {
	Kind   SectionKind `json:"kind"`
	Header *Line       `json:"header,omitempty"`
	Lines  []Line      `json:"lines"`
}

// Text joins the section lines back into a single newline-separated string.
func (s Section) Text() string {
	out := make([]byte, 0, 64*len(s.Lines))
	for i, line := range s.Lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, line.Text...)
	}
	return string(out)
}
