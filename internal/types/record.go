package types

// Position is one discrete employment record detected in the Experience
// section. Positions keep document order; the aggregator attaches
// DurationMonths after extraction and nothing else mutates them.
type Position struct {
	JobTitle         string    `json:"job_title"`
	CompanyName      string    `json:"company_name"`
	Location         string    `json:"location"`
	DateRange        DateRange `json:"date_range"`
	EmploymentType   string    `json:"employment_type"`
	Description      string    `json:"description"`
	Responsibilities []string  `json:"responsibilities"`
	DurationMonths   int       `json:"duration_months"`
}

// SkillEntry is a single deduplicated skill. ExperienceMonths and LastUsed
// are populated only when the source text states them.
type SkillEntry struct {
	Name             string `json:"name"`
	ExperienceMonths int    `json:"experience_months,omitempty"`
	LastUsed         string `json:"last_used,omitempty"`
}

// CertificationEntry is a single credential after variant merging. Issuer
// and IssuedYear are split out of trailing "- Issuer, Year" suffixes when
// present; otherwise they stay empty.
type CertificationEntry struct {
	Name       string `json:"name"`
	Issuer     string `json:"issuer"`
	IssuedYear string `json:"issued_year"`
}

// EducationEntry is a single degree or study record.
type EducationEntry struct {
	Degree      string    `json:"degree"`
	Field       string    `json:"field"`
	Institution string    `json:"institution"`
	Location    string    `json:"location"`
	DateRange   DateRange `json:"date_range"`
}

// ProjectEntry is a named project with its free-text description.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// PersonalDetails groups the contact fields extracted from the header block.
type PersonalDetails struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
}

// ExperienceTotal is the computed career duration. TotalMonths merges
// overlapping position ranges so concurrent engagements count once. Stated
// preserves a self-reported "N+ years" claim from the summary verbatim; it
// is informational and never reconciled with the computed value.
type ExperienceTotal struct {
	TotalMonths int    `json:"total_months"`
	Display     string `json:"display"`
	Stated      string `json:"stated"`
}

// ResumeRecord is the terminal aggregate returned by the extraction
// pipeline. Every field is always present in serialized output; absence of
// source data yields empty strings and empty arrays, never missing keys and
// never fabricated values.
type ResumeRecord struct {
	PersonalDetails     PersonalDetails      `json:"personal_details"`
	OverallSummary      string               `json:"overall_summary"`
	ListOfExperiences   []Position           `json:"list_of_experiences"`
	TotalWorkExperience ExperienceTotal      `json:"total_work_experience"`
	ListOfSkills        []SkillEntry         `json:"list_of_skills"`
	RelevantSkills      []string             `json:"relevant_skills"`
	TotalSkills         int                  `json:"total_skills"`
	Education           []EducationEntry     `json:"education"`
	Certifications      []CertificationEntry `json:"certifications"`
	Languages           []string             `json:"languages"`
	Achievements        []string             `json:"achievements"`
	Projects            []ProjectEntry       `json:"projects"`
	KeyResponsibilities []string             `json:"key_responsibilities"`
	Domain              []string             `json:"domain"`
}

// NewResumeRecord returns a structurally complete empty record: all slices
// are allocated so JSON output contains empty arrays instead of nulls.
func NewResumeRecord() ResumeRecord {
	return ResumeRecord{
		ListOfExperiences:   []Position{},
		ListOfSkills:        []SkillEntry{},
		RelevantSkills:      []string{},
		Education:           []EducationEntry{},
		Certifications:      []CertificationEntry{},
		Languages:           []string{},
		Achievements:        []string{},
		Projects:            []ProjectEntry{},
		KeyResponsibilities: []string{},
		Domain:              []string{},
	}
}
