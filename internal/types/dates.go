package types

import (
	"fmt"
	"time"
)

// YearMonth is a calendar month with no day component. Month is in 1..12; a
// year-only date token parses with Month set to January so duration math has
// a defined anchor.
type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// Months returns the absolute month index (year*12 + month) used for
// duration arithmetic.
func (ym YearMonth) Months() int {
	return ym.Year*12 + ym.Month
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	return ym.Months() < other.Months()
}

// String renders the YearMonth as YYYY-MM.
func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// CurrentYearMonth returns the YearMonth for the given clock time. The
// pipeline threads a fixed "now" through so results are deterministic for a
// given invocation.
func CurrentYearMonth(now time.Time) YearMonth {
	return YearMonth{Year: now.Year(), Month: int(now.Month())}
}

// DateRange is a normalized employment or education date span. When
// IsCurrent is true End is nil and is substituted with "now" only for
// duration math, never written back as a literal date. A range whose start
// is after its end is flagged Invalid rather than silently corrected.
type DateRange struct {
	Start     *YearMonth `json:"start"`
	End       *YearMonth `json:"end"`
	IsCurrent bool       `json:"is_current"`
	Invalid   bool       `json:"invalid,omitempty"`
}

// IsZero reports whether no date information was found at all.
func (dr DateRange) IsZero() bool {
	return dr.Start == nil && dr.End == nil && !dr.IsCurrent
}

// DurationMonths computes the inclusive-start exclusive-end month count of
// the range, substituting now for an open end. Ranges with no start, or
// flagged invalid, contribute zero.
func (dr DateRange) DurationMonths(now YearMonth) int {
	if dr.Start == nil || dr.Invalid {
		return 0
	}
	end := dr.End
	if end == nil {
		if !dr.IsCurrent {
			return 0
		}
		end = &now
	}
	months := end.Months() - dr.Start.Months()
	if months < 0 {
		return 0
	}
	return months
}
