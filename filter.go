package bankroll

import (
	"fmt"
	"strings"
	"time"

	"github.com/etnz/bankroll/date"
	"github.com/google/uuid"
)

// DateFilter selects records by date. It is one of AllTime, ThisMonth,
// ThisYear or CustomRange.
type DateFilter interface {
	isDateFilter()
	String() string
}

// AllTime keeps every record.
type AllTime struct{}

// ThisMonth keeps records of the current calendar month.
type ThisMonth struct{}

// ThisYear keeps records of the current calendar year.
type ThisYear struct{}

// CustomRange keeps records whose day is within From and To, both included.
type CustomRange struct{ From, To date.Date }

func (AllTime) isDateFilter()     {}
func (ThisMonth) isDateFilter()   {}
func (ThisYear) isDateFilter()    {}
func (CustomRange) isDateFilter() {}

func (AllTime) String() string   { return "all time" }
func (ThisMonth) String() string { return "this month" }
func (ThisYear) String() string  { return "this year" }

// String returns the identifier of standard calendar ranges ("2025-Q1",
// "2025-06") and "<from> to <to>" otherwise.
func (f CustomRange) String() string {
	if r := date.Range(f); r.IsStandard() {
		return r.Identifier()
	}
	return fmt.Sprintf("%s to %s", f.From, f.To)
}

// matchDate reports whether a record dated on passes the filter. now is the
// reference for calendar filters.
func matchDate(f DateFilter, on, now time.Time) bool {
	switch f := f.(type) {
	case nil, AllTime:
		return true
	case ThisMonth:
		on = on.In(now.Location())
		return on.Year() == now.Year() && on.Month() == now.Month()
	case ThisYear:
		return on.In(now.Location()).Year() == now.Year()
	case CustomRange:
		return date.Range(f).ContainsTime(on)
	default:
		panic(fmt.Sprintf("unknown date filter %T", f))
	}
}

// ParseDateFilter returns the DateFilter named by period ("all", "month",
// "year" or "custom"). from and to are only used, and required, for
// "custom"; they accept every format date.Parse does. Other calendar
// periods ("day", "week", "quarter") select the one containing today.
func ParseDateFilter(period, from, to string) (DateFilter, error) {
	switch strings.ToLower(strings.TrimSpace(period)) {
	case "", "all", "alltime":
		return AllTime{}, nil
	case "month", "thismonth":
		return ThisMonth{}, nil
	case "year", "thisyear":
		return ThisYear{}, nil
	case "custom":
		start, err := date.Parse(from)
		if err != nil {
			return nil, fmt.Errorf("invalid custom range start: %w", err)
		}
		end, err := date.Parse(to)
		if err != nil {
			return nil, fmt.Errorf("invalid custom range end: %w", err)
		}
		if end.Before(start) {
			return nil, fmt.Errorf("invalid custom range: %s is before %s", end, start)
		}
		return CustomRange{From: start, To: end}, nil
	default:
		p, err := date.ParsePeriod(strings.TrimSpace(period))
		if err != nil {
			return nil, fmt.Errorf("unknown period %q", period)
		}
		return CustomRange(date.NewRange(date.Today(), p)), nil
	}
}

// SessionFilter selects sessions. It is one of AllSessions, LiveOnly,
// OnlineOnly, ByPlatform, ByGameType or ByLocation.
type SessionFilter interface {
	isSessionFilter()
	String() string
}

// AllSessions keeps every session.
type AllSessions struct{}

// LiveOnly keeps live sessions.
type LiveOnly struct{}

// OnlineOnly keeps online sessions.
type OnlineOnly struct{}

// ByPlatform keeps the online sessions of one platform. Live sessions are
// never linked to a platform and are dropped.
type ByPlatform struct{ ID uuid.UUID }

// ByGameType keeps sessions of both kinds playing Game.
type ByGameType struct{ Game string }

// ByLocation keeps the live sessions played at Location.
type ByLocation struct{ Location string }

func (AllSessions) isSessionFilter() {}
func (LiveOnly) isSessionFilter()    {}
func (OnlineOnly) isSessionFilter()  {}
func (ByPlatform) isSessionFilter()  {}
func (ByGameType) isSessionFilter()  {}
func (ByLocation) isSessionFilter()  {}

func (AllSessions) String() string  { return "all" }
func (LiveOnly) String() string     { return "live" }
func (OnlineOnly) String() string   { return "online" }
func (f ByPlatform) String() string { return "platform:" + f.ID.String() }
func (f ByGameType) String() string { return "game:" + f.Game }
func (f ByLocation) String() string { return "location:" + f.Location }

// filterSessions applies f to online and live sessions.
func filterSessions(f SessionFilter, online []OnlineCash, live []LiveCash) ([]OnlineCash, []LiveCash) {
	switch f := f.(type) {
	case nil, AllSessions:
		return online, live
	case LiveOnly:
		return nil, live
	case OnlineOnly:
		return online, nil
	case ByPlatform:
		return keep(online, func(s OnlineCash) bool { return s.PlatformID == f.ID }), nil
	case ByGameType:
		return keep(online, func(s OnlineCash) bool { return s.Game == f.Game }),
			keep(live, func(s LiveCash) bool { return s.Game == f.Game })
	case ByLocation:
		return nil, keep(live, func(s LiveCash) bool { return s.Location == f.Location })
	default:
		panic(fmt.Sprintf("unknown session filter %T", f))
	}
}

// keep returns the elements of list for which ok is true, in order.
func keep[T any](list []T, ok func(T) bool) []T {
	var kept []T
	for _, v := range list {
		if ok(v) {
			kept = append(kept, v)
		}
	}
	return kept
}

// ParseSessionFilter parses "all", "live", "online", "platform:<name>",
// "game:<game>" or "location:<location>". resolve maps a platform name (or
// id) to its id.
func ParseSessionFilter(s string, resolve func(string) (uuid.UUID, bool)) (SessionFilter, error) {
	kind, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(kind) {
	case "", "all":
		return AllSessions{}, nil
	case "live":
		return LiveOnly{}, nil
	case "online":
		return OnlineOnly{}, nil
	}
	if !hasArg || arg == "" {
		return nil, fmt.Errorf("unknown session filter %q", s)
	}
	switch strings.ToLower(kind) {
	case "platform":
		if id, err := uuid.Parse(arg); err == nil {
			return ByPlatform{ID: id}, nil
		}
		if resolve != nil {
			if id, ok := resolve(arg); ok {
				return ByPlatform{ID: id}, nil
			}
		}
		return nil, fmt.Errorf("unknown platform %q", arg)
	case "game":
		return ByGameType{Game: arg}, nil
	case "location":
		return ByLocation{Location: arg}, nil
	default:
		return nil, fmt.Errorf("unknown session filter %q", s)
	}
}
