package aggregate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-extractor/internal/types"
)

var now = types.YearMonth{Year: 2024, Month: 6}

func ym(year, month int) *types.YearMonth {
	return &types.YearMonth{Year: year, Month: month}
}

func position(start, end *types.YearMonth, current bool) types.Position {
	return types.Position{
		DateRange: types.DateRange{Start: start, End: end, IsCurrent: current},
	}
}

func TestDurations_OverlapMerge(t *testing.T) {
	// Overlapping months count once: [2020-01,2020-12] and
	// [2020-06,2021-06] span Jan 2020 through Jun 2021 = 18 months.
	positions := []types.Position{
		position(ym(2020, 1), ym(2020, 12), false),
		position(ym(2020, 6), ym(2021, 6), false),
	}

	_, total := Durations(positions, now)
	assert.Equal(t, 18, total, "overlapped months must not double-count")
}

func TestDurations_DisjointRangesSum(t *testing.T) {
	positions := []types.Position{
		position(ym(2018, 1), ym(2018, 12), false),
		position(ym(2020, 1), ym(2020, 12), false),
	}

	_, total := Durations(positions, now)
	assert.Equal(t, 24, total)
}

func TestDurations_CurrentPositionUsesNow(t *testing.T) {
	positions := []types.Position{
		position(ym(2024, 1), nil, true),
	}

	out, total := Durations(positions, now)
	require.Len(t, out, 1)
	assert.Equal(t, 5, out[0].DurationMonths)
	assert.Equal(t, 6, total, "Jan through Jun inclusive")
}

func TestDurations_AbsentRangeRetainedWithZero(t *testing.T) {
	positions := []types.Position{
		{JobTitle: "Engineer"},
		position(ym(2020, 1), ym(2020, 12), false),
	}

	out, total := Durations(positions, now)
	require.Len(t, out, 2, "positions without dates are retained, not dropped")
	assert.Equal(t, 0, out[0].DurationMonths)
	assert.Equal(t, 12, total)
}

func TestDurations_InvalidRangeContributesZero(t *testing.T) {
	positions := []types.Position{
		{DateRange: types.DateRange{Start: ym(2022, 1), End: ym(2020, 1), Invalid: true}},
	}

	out, total := Durations(positions, now)
	assert.Equal(t, 0, out[0].DurationMonths)
	assert.Equal(t, 0, total)
}

func TestDurations_PerPositionFormula(t *testing.T) {
	positions := []types.Position{
		position(ym(2020, 1), ym(2020, 12), false),
	}

	out, _ := Durations(positions, now)
	// durationMonths is the month-index difference.
	assert.Equal(t, 11, out[0].DurationMonths)
}

func TestDurations_Empty(t *testing.T) {
	out, total := Durations(nil, now)
	assert.Empty(t, out)
	assert.Equal(t, 0, total)
}

func TestDisplayDuration(t *testing.T) {
	tests := []struct {
		months   int
		expected string
	}{
		{0, ""},
		{-3, ""},
		{1, "1 month"},
		{7, "7 months"},
		{12, "1 year"},
		{24, "2 years"},
		{18, "1 year 6 months"},
		{145, "12 years 1 month"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, DisplayDuration(tt.months), "months=%d", tt.months)
	}
}
