// Package aggregate computes per-position and total career durations from
// extracted positions. Overlapping ranges are merged before totaling so
// concurrent engagements count their shared months once.
package aggregate

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-extractor/internal/types"
)

// interval is a half-open month span [start, end) in absolute months.
type interval struct {
	start int
	end   int
}

// Durations attaches DurationMonths to each position and returns the
// positions with the merged total. Positions with no usable date range are
// retained with a zero duration; losing them silently would hide data from
// the caller.
func Durations(positions []types.Position, now types.YearMonth) ([]types.Position, int) {
	out := make([]types.Position, len(positions))
	copy(out, positions)

	intervals := make([]interval, 0, len(out))
	for i := range out {
		dr := out[i].DateRange
		out[i].DurationMonths = dr.DurationMonths(now)

		if dr.Start == nil || dr.Invalid {
			continue
		}
		end := dr.End
		if end == nil {
			if !dr.IsCurrent {
				continue
			}
			end = &now
		}
		if end.Months() < dr.Start.Months() {
			continue
		}
		// Month spans are inclusive of the end month: Jan-Dec is a year
		// of employment.
		intervals = append(intervals, interval{
			start: dr.Start.Months(),
			end:   end.Months() + 1,
		})
	}

	return out, mergedTotal(intervals)
}

// mergedTotal sums interval lengths after merging overlaps.
func mergedTotal(intervals []interval) int {
	if len(intervals) == 0 {
		return 0
	}
	sort.Slice(intervals, func(i, j int) bool {
		return intervals[i].start < intervals[j].start
	})

	total := 0
	current := intervals[0]
	for _, iv := range intervals[1:] {
		if iv.start <= current.end {
			if iv.end > current.end {
				current.end = iv.end
			}
			continue
		}
		total += current.end - current.start
		current = iv
	}
	total += current.end - current.start
	return total
}

// DisplayDuration renders a month count as "X years Y months" the way
// resume summaries state it. Zero renders as an empty string so absent data
// stays absent.
func DisplayDuration(months int) string {
	if months <= 0 {
		return ""
	}
	years := months / 12
	rem := months % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%d %s", rem, plural(rem, "month"))
	case rem == 0:
		return fmt.Sprintf("%d %s", years, plural(years, "year"))
	default:
		return fmt.Sprintf("%d %s %d %s", years, plural(years, "year"), rem, plural(rem, "month"))
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
