package date

import (
	"fmt"
	"strings"
	"time"
)

// Period is a calendar period: a day, an ISO week (Monday first), a month,
// a quarter or a year.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
	Quarterly
	Yearly
)

// ParsePeriod reads a period from its name, "day" or "daily" and so on.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "day", "daily":
		return Daily, nil
	case "week", "weekly":
		return Weekly, nil
	case "month", "monthly":
		return Monthly, nil
	case "quarter", "quarterly":
		return Quarterly, nil
	case "year", "yearly":
		return Yearly, nil
	}
	return Daily, fmt.Errorf("unknown period %q", s)
}

// first returns the first day of the period containing d.
func (p Period) first(d Date) Date {
	switch p {
	case Weekly:
		// Monday is 1, Sunday 0 goes back six days.
		return d.Add(-(int(d.midnight().Weekday()) + 6) % 7)
	case Monthly:
		return New(d.y, d.m, 1)
	case Quarterly:
		return New(d.y, d.m-(d.m-1)%3, 1)
	case Yearly:
		return New(d.y, time.January, 1)
	default:
		return d
	}
}

// last returns the last day of the period containing d.
func (p Period) last(d Date) Date {
	switch p {
	case Weekly:
		return p.first(d).Add(6)
	case Monthly:
		return New(d.y, d.m+1, 0)
	case Quarterly:
		return New(d.y, p.first(d).m+3, 0)
	case Yearly:
		return New(d.y, time.December, 31)
	default:
		return d
	}
}
