// Package pipeline wires the extraction stages together and assembles the
// final record. Extract is pure: the same text always yields the same
// record, and document content never produces an error. Fields the text
// does not state stay empty.
package pipeline

import (
	"time"

	"github.com/jonathan/resume-extractor/internal/aggregate"
	"github.com/jonathan/resume-extractor/internal/contact"
	"github.com/jonathan/resume-extractor/internal/dates"
	"github.com/jonathan/resume-extractor/internal/domain"
	"github.com/jonathan/resume-extractor/internal/education"
	"github.com/jonathan/resume-extractor/internal/employment"
	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/logger"
	"github.com/jonathan/resume-extractor/internal/normalize"
	"github.com/jonathan/resume-extractor/internal/sections"
	"github.com/jonathan/resume-extractor/internal/skills"
	"github.com/jonathan/resume-extractor/internal/types"
)

// Pipeline runs the full extraction flow over raw resume text. Safe for
// concurrent use; each Extract call owns its per-document state.
type Pipeline struct {
	lex *lexicon.Lexicon
	now time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock fixes the pipeline's "now" for duration math. Tests and batch
// runs use it to keep output stable.
func WithClock(now time.Time) Option {
	return func(p *Pipeline) { p.now = now }
}

// New builds a pipeline over the given lexicon. A nil lexicon selects the
// embedded default.
func New(lex *lexicon.Lexicon, opts ...Option) *Pipeline {
	if lex == nil {
		lex = lexicon.Default()
	}
	p := &Pipeline{lex: lex, now: time.Now()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Extract converts raw resume text into a structurally complete
// ResumeRecord. Empty or unparseable input yields an empty record, never
// an error: downstream consumers need partial results, not parser health
// status.
func (p *Pipeline) Extract(text string) types.ResumeRecord {
	record := types.NewResumeRecord()

	doc := normalize.Text(text)
	if doc.IsEmpty() {
		return record
	}

	parser := dates.NewParser(p.now)
	parser.ObserveText(text)

	secs := sections.NewSegmenter(p.lex).Split(doc)
	logger.Debug().Int("sections", len(secs)).Msg("document segmented")

	record.PersonalDetails = contact.NewExtractor(p.lex).Extract(secs)
	record.OverallSummary = OverallSummary(secs)

	positions := []types.Position{}
	if sec, ok := sections.Find(secs, types.SectionExperience); ok {
		positions = employment.NewExtractor(p.lex, parser).Extract(sec)
	}
	positions, totalMonths := aggregate.Durations(positions, parser.Now())
	record.ListOfExperiences = positions
	record.TotalWorkExperience = types.ExperienceTotal{
		TotalMonths: totalMonths,
		Display:     aggregate.DisplayDuration(totalMonths),
		Stated:      StatedExperience(secs),
	}

	skillsExtractor := skills.NewExtractor(p.lex)
	record.ListOfSkills = skillsExtractor.Extract(secs)
	record.RelevantSkills = skillsExtractor.RelevantSkills(record.ListOfSkills)
	record.TotalSkills = len(record.ListOfSkills)
	record.Certifications = skillsExtractor.Certifications(secs)

	record.Education = education.NewExtractor(p.lex, parser).Extract(secs)
	record.Languages = Languages(secs)
	record.Achievements = Achievements(secs)
	record.Projects = Projects(secs)
	record.KeyResponsibilities = KeyResponsibilities(positions)
	record.Domain = domain.NewClassifier(p.lex).Classify(positions, record.ListOfSkills)

	logger.Debug().
		Int("positions", len(record.ListOfExperiences)).
		Int("skills", record.TotalSkills).
		Int("total_months", totalMonths).
		Msg("extraction complete")
	return record
}
