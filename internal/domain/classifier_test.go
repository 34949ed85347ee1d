package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-extractor/internal/lexicon"
	"github.com/jonathan/resume-extractor/internal/types"
)

func TestClassify_MultipleDomainsSorted(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	positions := []types.Position{
		{
			JobTitle:    "Software Engineer",
			CompanyName: "First National Bank",
			Description: "Built payment processing services for hospital billing",
		},
	}

	tags := c.Classify(positions, nil)
	assert.Equal(t, []string{"banking_financial_services", "healthcare", "technology"}, tags,
		"multi-industry careers carry every matching tag, sorted")
}

func TestClassify_SkillNamesCount(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	skills := []types.SkillEntry{{Name: "Machine Learning"}}

	tags := c.Classify(nil, skills)
	assert.Equal(t, []string{"technology"}, tags)
}

func TestClassify_ResponsibilitiesCount(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	positions := []types.Position{
		{
			JobTitle:         "Analyst",
			Responsibilities: []string{"Processed insurance claims for policyholders"},
		},
	}

	tags := c.Classify(positions, nil)
	assert.Equal(t, []string{"insurance"}, tags)
}

func TestClassify_NoMatchIsEmptyNotNil(t *testing.T) {
	c := NewClassifier(lexicon.Default())

	tags := c.Classify([]types.Position{{JobTitle: "Barista"}}, nil)
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	positions := []types.Position{
		{JobTitle: "DevOps Engineer", Description: "Cloud migrations for retail and telecom clients"},
	}

	first := c.Classify(positions, nil)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Classify(positions, nil))
	}
}
