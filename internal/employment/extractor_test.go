package employment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/normalize"
	"github.com/jonathan/resume-extractor/internal/types"
)

var testNow = time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(lexicon.Default(), dates.NewParser(testNow))
}

func experienceSection(raw string) types.Section {
	doc := normalize.Text(raw)
	return types.Section{Kind: types.SectionExperience, Lines: doc.Lines}
}

func TestExtract_PipeDialect(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection("Senior Engineer | Acme Inc | 2020 - Present"))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "Senior Engineer", pos.JobTitle)
	assert.Equal(t, "Acme Inc", pos.CompanyName)
	require.NotNil(t, pos.DateRange.Start)
	assert.Equal(t, types.YearMonth{Year: 2020, Month: 1}, *pos.DateRange.Start)
	assert.True(t, pos.DateRange.IsCurrent)
	assert.Nil(t, pos.DateRange.End)
}

func TestExtract_PipeDialectWithLocationAndType(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(
		"Data Analyst | Globex Corp | Chicago, IL | Jan 2019 - Dec 2020 | Contract"))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "Data Analyst", pos.JobTitle)
	assert.Equal(t, "Globex Corp", pos.CompanyName)
	assert.Equal(t, "Chicago, IL", pos.Location)
	assert.Equal(t, "Contract", pos.EmploymentType)
	assert.Equal(t, types.YearMonth{Year: 2019, Month: 1}, *pos.DateRange.Start)
	assert.Equal(t, types.YearMonth{Year: 2020, Month: 12}, *pos.DateRange.End)
}

func TestExtract_ClientDialect(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(
		"Client: Visa, San Francisco, CA\t\tSep 2022 - Current\n" +
			"Senior Software Engineer\n" +
			"• Built payment reconciliation services"))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "Visa", pos.CompanyName)
	assert.Equal(t, "San Francisco, CA", pos.Location, "comma-bearing location must survive the two-stage split")
	assert.Equal(t, "Senior Software Engineer", pos.JobTitle)
	require.NotNil(t, pos.DateRange.Start)
	assert.Equal(t, types.YearMonth{Year: 2022, Month: 9}, *pos.DateRange.Start)
	assert.True(t, pos.DateRange.IsCurrent)
	assert.Equal(t, []string{"Built payment reconciliation services"}, pos.Responsibilities)
}

func TestExtract_TitleFirstDialect(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Senior Software Engineer",
		"",
		"Jan 2020 - Dec 2021",
		"Acme Solutions, Austin, TX",
		"• Led replatforming effort",
	}, "\n")))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "Senior Software Engineer", pos.JobTitle)
	assert.Equal(t, "Acme Solutions", pos.CompanyName)
	assert.Equal(t, "Austin, TX", pos.Location)
	assert.Equal(t, types.YearMonth{Year: 2020, Month: 1}, *pos.DateRange.Start)
	assert.Equal(t, types.YearMonth{Year: 2021, Month: 12}, *pos.DateRange.End)
}

func TestExtract_TraditionalDialect(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Acme Inc, Boston, MA",
		"Senior Software Engineer",
		"Jan 2020 - Mar 2022",
		"• Led data platform migrations",
		"• Managed a team of four",
	}, "\n")))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "Acme Inc", pos.CompanyName)
	assert.Equal(t, "Boston, MA", pos.Location)
	assert.Equal(t, "Senior Software Engineer", pos.JobTitle)
	assert.Equal(t, types.YearMonth{Year: 2020, Month: 1}, *pos.DateRange.Start)
	assert.Len(t, pos.Responsibilities, 2)
}

func TestExtract_TabularDialect(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection("QA Analyst\tGlobex Corp\tJan 2019\tDec 2020"))

	require.Len(t, positions, 1)
	pos := positions[0]
	assert.Equal(t, "QA Analyst", pos.JobTitle)
	assert.Equal(t, "Globex Corp", pos.CompanyName)
	assert.Equal(t, types.YearMonth{Year: 2019, Month: 1}, *pos.DateRange.Start)
	assert.Equal(t, types.YearMonth{Year: 2020, Month: 12}, *pos.DateRange.End)
}

func TestExtract_BoundaryGuard(t *testing.T) {
	// One structural header followed by five action-verb description lines
	// must yield exactly one position, never six.
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Senior Engineer | Acme Inc | 2020 - Present",
		"• Architected cloud infrastructure for three product lines",
		"• Led a team of five engineers across two time zones",
		"• Managed vendor relationships and procurement",
		"• Implemented CI pipelines and release automation",
		"• Delivered quarterly roadmap commitments",
	}, "\n")))

	require.Len(t, positions, 1)
	assert.Len(t, positions[0].Responsibilities, 5)
}

func TestExtract_UnbulletedActionVerbLinesStayDescription(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Senior Engineer | Acme Inc | 2020 - Present",
		"Architected the ingestion platform end to end",
		"Managed stakeholder reporting for leadership",
	}, "\n")))

	require.Len(t, positions, 1)
	assert.Contains(t, positions[0].Description, "Architected the ingestion platform")
}

func TestExtract_AmbiguousPipeIsDescription(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Senior Engineer | Acme Inc | 2020 - Present",
		"Results: 40% faster builds | 30% fewer incidents",
	}, "\n")))

	require.Len(t, positions, 1, "a pipe line without title or company indicators must not open a position")
	assert.Contains(t, positions[0].Description, "40% faster builds")
}

func TestExtract_MultiplePositionsInDocumentOrder(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(experienceSection(strings.Join([]string{
		"Senior Engineer | Acme Inc | Jun 2021 - Present",
		"• Led platform work",
		"",
		"Software Engineer | Initech LLC | Jul 2018 - May 2021",
		"• Built internal tooling",
	}, "\n")))

	require.Len(t, positions, 2)
	assert.Equal(t, "Acme Inc", positions[0].CompanyName)
	assert.Equal(t, "Initech LLC", positions[1].CompanyName)
}

func TestExtract_EmptySection(t *testing.T) {
	e := newTestExtractor(t)
	positions := e.Extract(types.Section{Kind: types.SectionExperience, Lines: []types.Line{}})
	assert.Empty(t, positions)
}
