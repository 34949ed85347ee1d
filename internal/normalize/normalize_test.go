package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_EmptyInput(t *testing.T) {
	doc := Text("")
	assert.Empty(t, doc.Lines)
	assert.True(t, doc.IsEmpty())
}

func TestText_UnicodeNormalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"right single quote", "Bachelor’s Degree", "Bachelor's Degree"},
		{"left single quote", "‘quoted", "'quoted"},
		{"modifier apostrophe", "OʼBrien", "O'Brien"},
		{"en dash range", "2020 – 2022", "2020 - 2022"},
		{"em dash", "Acme — Boston", "Acme - Boston"},
		{"non-breaking space", "Jan 2020", "Jan 2020"},
		{"middle dot bullet", "· Led a team", "• Led a team"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Text(tt.input)
			require.Len(t, doc.Lines, 1)
			assert.Equal(t, tt.expected, doc.Lines[0].Text)
		})
	}
}

func TestText_WhitespaceCollapsing(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single spaces preserved", "Senior Engineer", "Senior Engineer"},
		{"double space becomes tab", "Visa, San Francisco, CA  Sep 2022", "Visa, San Francisco, CA\tSep 2022"},
		{"tab stays tab", "Acme\tBoston", "Acme\tBoston"},
		{"tab run collapses", "Acme\t\t\tBoston", "Acme\tBoston"},
		{"mixed run collapses to one tab", "Acme \t  Boston", "Acme\tBoston"},
		{"leading whitespace trimmed", "   indented", "indented"},
		{"trailing whitespace trimmed", "text   ", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Text(tt.input)
			require.Len(t, doc.Lines, 1)
			assert.Equal(t, tt.expected, doc.Lines[0].Text)
		})
	}
}

func TestText_LineSegmentation(t *testing.T) {
	doc := Text("line one\r\n\r\nline three\rline four")

	require.Len(t, doc.Lines, 4)
	assert.Equal(t, "line one", doc.Lines[0].Text)
	assert.Equal(t, "", doc.Lines[1].Text, "blank line retained as boundary marker")
	assert.Equal(t, "line three", doc.Lines[2].Text)
	assert.Equal(t, "line four", doc.Lines[3].Text)

	for i, line := range doc.Lines {
		assert.Equal(t, i, line.Index)
	}
}

func TestSplitHardGaps(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "client line columns",
			input:    "Visa, San Francisco, CA\tSep 2022 - Current",
			expected: []string{"Visa, San Francisco, CA", "Sep 2022 - Current"},
		},
		{
			name:     "no gaps",
			input:    "Senior Engineer",
			expected: []string{"Senior Engineer"},
		},
		{
			name:     "empty fields dropped",
			input:    "\tAcme\t",
			expected: []string{"Acme"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitHardGaps(tt.input))
		})
	}
}
