// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-extractor/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of an extracted record.
func (p *Printer) PrintRecord(record *types.ResumeRecord) {
	if record == nil {
		return
	}

	var sb strings.Builder

	if record.PersonalDetails.Name != "" {
		sb.WriteString(fmt.Sprintf("Candidate:  %s\n", record.PersonalDetails.Name))
	}
	if record.PersonalDetails.Email != "" {
		sb.WriteString(fmt.Sprintf("Email:      %s\n", record.PersonalDetails.Email))
	}
	sb.WriteString(fmt.Sprintf("Positions:  %d\n", len(record.ListOfExperiences)))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", record.TotalSkills))
	if record.TotalWorkExperience.Display != "" {
		sb.WriteString(fmt.Sprintf("Experience: %s\n", record.TotalWorkExperience.Display))
	}
	if len(record.Domain) > 0 {
		sb.WriteString(fmt.Sprintf("Domains:    %s\n", strings.Join(record.Domain, ", ")))
	}

	p.printBox("EXTRACTED RECORD", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPositions outputs the extracted employment history with durations.
func (p *Printer) PrintPositions(positions []types.Position) {
	if len(positions) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Positions found: %d\n\n", len(positions)))

	count := min(len(positions), maxItemsToShow)
	for i := 0; i < count; i++ {
		pos := positions[i]
		title := pos.JobTitle
		if title == "" {
			title = "(untitled)"
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		if pos.CompanyName != "" {
			sb.WriteString(fmt.Sprintf("    Company: %s\n", pos.CompanyName))
		}
		if pos.DurationMonths > 0 {
			sb.WriteString(fmt.Sprintf("    Duration: %d months\n", pos.DurationMonths))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(positions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(positions)-maxItemsToShow))
	}

	p.printBox("EMPLOYMENT HISTORY", sb.String())
}

// PrintSkills outputs the deduplicated skill list.
func (p *Printer) PrintSkills(skills []types.SkillEntry) {
	if len(skills) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills found: %d\n\n", len(skills)))

	count := min(len(skills), maxItemsToShow)
	for i := 0; i < count; i++ {
		skill := skills[i]
		sb.WriteString(fmt.Sprintf("• %s", skill.Name))
		if skill.ExperienceMonths > 0 {
			sb.WriteString(fmt.Sprintf(" (%d months)", skill.ExperienceMonths))
		}
		sb.WriteString("\n")
	}

	if len(skills) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more skills", len(skills)-maxItemsToShow))
	}

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}
