// Package date provides a day-granularity Date type and the calendar ranges
// used to select poker sessions.
package date

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Layout is the ISO-8601 layout of dates. Reading also accepts single
// digit months and days ("2025-7-1").
const Layout = "2006-01-02"

const lenientLayout = "2006-1-2"

// Date is a calendar day, without time or location.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns the Date of year, month and day, normalized the way
// time.Date normalizes out of range values (day 0 is the last day of the
// previous month).
func New(year int, month time.Month, day int) Date {
	y, m, d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Date()
	return Date{y, m, d}
}

// FromTime returns the day of t, in t's own location.
func FromTime(t time.Time) Date { return New(t.Date()) }

// Today returns the current day in the local time zone.
func Today() Date { return FromTime(time.Now()) }

// Calendar fields of the date.

func (d Date) Year() int         { return d.y }
func (d Date) Month() time.Month { return d.m }
func (d Date) Day() int          { return d.d }
func (d Date) IsZero() bool      { return d == Date{} }

// midnight is the canonical instant of d, comparable with ==.
func (d Date) midnight() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Before and After compare days.

func (d Date) Before(x Date) bool { return d.midnight().Before(x.midnight()) }
func (d Date) After(x Date) bool  { return d.midnight().After(x.midnight()) }

// Add returns d shifted by days.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// String returns d in Layout, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.midnight().Format(Layout)
}

var offsetRE = regexp.MustCompile(`^([+-])(\d+)([dwmqy])$`)

// Parse reads a Date. It accepts ISO dates, "today" or "0d", and offsets
// from today such as "-1d", "+2w", "-3m", "-1q" or "+1y".
func Parse(s string) (Date, error) {
	s = strings.TrimSpace(s)
	switch s {
	case "today", "0d":
		return Today(), nil
	}
	if m := offsetRE.FindStringSubmatch(s); m != nil {
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return Date{}, fmt.Errorf("invalid offset %q: %w", s, err)
		}
		if m[1] == "-" {
			n = -n
		}
		return offset(Today(), n, m[3][0]), nil
	}
	t, err := time.Parse(lenientLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, want %s or an offset like -1w: %w", s, Layout, err)
	}
	return FromTime(t), nil
}

func offset(d Date, n int, unit byte) Date {
	switch unit {
	case 'w':
		return d.Add(7 * n)
	case 'm':
		return New(d.y, d.m+time.Month(n), d.d)
	case 'q':
		return New(d.y, d.m+time.Month(3*n), d.d)
	case 'y':
		return New(d.y+n, d.m, d.d)
	default:
		return d.Add(n)
	}
}

// MustParse is like Parse but panics on error. It is meant for tests and
// constants.
func MustParse(s string) Date {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}
