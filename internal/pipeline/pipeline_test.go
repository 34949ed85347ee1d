package pipeline

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

var fixedNow = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

const sampleResume = `Jane Doe
jane.doe@example.com | (415) 555-0132
San Francisco, CA | linkedin.com/in/janedoe

SUMMARY
Software engineer with 8+ years of experience building payment systems.

EXPERIENCE
Senior Software Engineer | Acme Technologies | Jan 2020 - Present
• Led migration of payment services to Kubernetes
• Reduced deployment time by 40%

Software Engineer | Initech Inc | Jun 2016 - Dec 2019
• Built REST APIs in Go for the billing platform

SKILLS
Go, Python, Kubernetes, PostgreSQL

EDUCATION
B.S. in Computer Science, Stanford University, 2016

CERTIFICATIONS
PMP
Project Management Professional (PMP)

LANGUAGES
English (Native), Spanish (Conversational)
`

func TestExtract_FullDocument(t *testing.T) {
	p := New(nil, WithClock(fixedNow))
	record := p.Extract(sampleResume)

	assert.Equal(t, "Jane Doe", record.PersonalDetails.Name)
	assert.Equal(t, "jane.doe@example.com", record.PersonalDetails.Email)

	require.Len(t, record.ListOfExperiences, 2)
	assert.Equal(t, "Senior Software Engineer", record.ListOfExperiences[0].JobTitle)
	assert.Equal(t, "Acme Technologies", record.ListOfExperiences[0].CompanyName)
	assert.True(t, record.ListOfExperiences[0].DateRange.IsCurrent)

	// Jun 2016 through Jun 2024 inclusive, contiguous.
	assert.Equal(t, 97, record.TotalWorkExperience.TotalMonths)
	assert.Equal(t, "8 years 1 month", record.TotalWorkExperience.Display)
	assert.Equal(t, "8+ years", record.TotalWorkExperience.Stated)

	skillNames := []string{}
	for _, s := range record.ListOfSkills {
		skillNames = append(skillNames, s.Name)
	}
	assert.Subset(t, skillNames, []string{"Go", "Python", "Kubernetes", "PostgreSQL"})
	assert.Equal(t, len(record.ListOfSkills), record.TotalSkills)

	require.Len(t, record.Certifications, 1, "PMP variants collapse")
	assert.Equal(t, "Project Management Professional (PMP)", record.Certifications[0].Name)

	require.Len(t, record.Education, 1)
	assert.Equal(t, "Stanford University", record.Education[0].Institution)

	assert.Equal(t, []string{"English (Native)", "Spanish (Conversational)"}, record.Languages)
	assert.Contains(t, record.OverallSummary, "8+ years")
	assert.Contains(t, record.Domain, "technology")
	assert.NotEmpty(t, record.KeyResponsibilities)
}

func TestExtract_Idempotent(t *testing.T) {
	p := New(nil, WithClock(fixedNow))

	first, err := json.Marshal(p.Extract(sampleResume))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := json.Marshal(p.Extract(sampleResume))
		require.NoError(t, err)
		assert.JSONEq(t, string(first), string(again))
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	p := New(nil, WithClock(fixedNow))

	for _, input := range []string{"", "   \n\n  \n"} {
		record := p.Extract(input)
		assert.Equal(t, types.NewResumeRecord(), record)
	}
}

func TestExtract_AbsencePreservation(t *testing.T) {
	// A fixture with only a skills list must leave every other group
	// empty: nothing is synthesized.
	p := New(nil, WithClock(fixedNow))
	record := p.Extract("SKILLS\nGo, Python\n")

	assert.Empty(t, record.PersonalDetails.Name)
	assert.Empty(t, record.PersonalDetails.Email)
	assert.Empty(t, record.OverallSummary)
	assert.Empty(t, record.ListOfExperiences)
	assert.Zero(t, record.TotalWorkExperience.TotalMonths)
	assert.Empty(t, record.TotalWorkExperience.Display)
	assert.Empty(t, record.TotalWorkExperience.Stated)
	assert.Empty(t, record.Education)
	assert.Empty(t, record.Certifications)
	assert.Empty(t, record.Languages)
	assert.Empty(t, record.Achievements)
	assert.Empty(t, record.Projects)
	assert.Len(t, record.ListOfSkills, 2)
}

func TestExtract_StructurallyCompleteJSON(t *testing.T) {
	p := New(nil, WithClock(fixedNow))

	data, err := json.Marshal(p.Extract(""))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null", "empty collections serialize as [], not null")
}

func TestOverallSummary_JoinsLines(t *testing.T) {
	secs := []types.Section{{
		Kind: types.SectionSummary,
		Lines: []types.Line{
			{Text: "Seasoned engineer."},
			{Text: ""},
			{Text: "Focused on reliability."},
		},
	}}

	assert.Equal(t, "Seasoned engineer. Focused on reliability.", OverallSummary(secs))
}

func TestStatedExperience(t *testing.T) {
	tests := []struct {
		name     string
		summary  string
		expected string
	}{
		{"plus claim", "10+ years of experience in fintech", "10+ years"},
		{"plain claim", "8 years of software engineering experience", "8 years"},
		{"award year is not a claim", "Engineer of the Year 2020", ""},
		{"no claim", "Passionate builder of distributed systems", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secs := []types.Section{{
				Kind:  types.SectionSummary,
				Lines: []types.Line{{Text: tt.summary}},
			}}
			assert.Equal(t, tt.expected, StatedExperience(secs))
		})
	}
}

func TestProjects_NameAndBullets(t *testing.T) {
	secs := []types.Section{{
		Kind: types.SectionProjects,
		Lines: []types.Line{
			{Text: "Ledger Sync - real-time reconciliation service"},
			{Text: "• Processes 1M events per day"},
			{Text: ""},
			{Text: "Resume Parser"},
		},
	}}

	entries := Projects(secs)
	require.Len(t, entries, 2)
	assert.Equal(t, "Ledger Sync", entries[0].Name)
	assert.Equal(t, "real-time reconciliation service Processes 1M events per day", entries[0].Description)
	assert.Equal(t, "Resume Parser", entries[1].Name)
	assert.Empty(t, entries[1].Description)
}

func TestKeyResponsibilities_CapAndOrder(t *testing.T) {
	positions := []types.Position{
		{Responsibilities: []string{"a", "b", "c"}},
		{Responsibilities: []string{"d"}},
	}

	assert.Equal(t, []string{"a", "b", "d"}, KeyResponsibilities(positions),
		"two leading bullets per position, document order")
}
