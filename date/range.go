package date

import (
	"fmt"
	"time"
)

// Range is an inclusive range of days.
type Range struct{ From, To Date }

// NewRange returns the period p containing d.
func NewRange(d Date, p Period) Range { return Range{From: p.first(d), To: p.last(d)} }

// Contains reports whether d is within r, bounds included.
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }

// ContainsTime reports whether the day of t, in t's location, is within r.
func (r Range) ContainsTime(t time.Time) bool { return r.Contains(FromTime(t)) }

// period returns the calendar period r spans exactly, if any. Shorter
// periods win: a single day is Daily even on the first of January.
func (r Range) period() (Period, bool) {
	for _, p := range []Period{Daily, Weekly, Monthly, Quarterly, Yearly} {
		if NewRange(r.From, p) == r {
			return p, true
		}
	}
	return Daily, false
}

// IsStandard reports whether r is exactly one calendar period.
func (r Range) IsStandard() bool {
	_, ok := r.period()
	return ok
}

// Identifier names r: "2025-06-02", "2025-W23", "2025-06", "2025-Q2" or
// "2025" for calendar periods, "<from>_<to>" otherwise.
func (r Range) Identifier() string {
	p, ok := r.period()
	if !ok {
		return fmt.Sprintf("%s_%s", r.From, r.To)
	}
	switch p {
	case Weekly:
		y, w := r.From.midnight().ISOWeek()
		return fmt.Sprintf("%d-W%02d", y, w)
	case Monthly:
		return fmt.Sprintf("%d-%02d", r.From.y, r.From.m)
	case Quarterly:
		return fmt.Sprintf("%d-Q%d", r.From.y, (r.From.m-1)/3+1)
	case Yearly:
		return fmt.Sprintf("%d", r.From.y)
	default:
		return r.From.String()
	}
}
