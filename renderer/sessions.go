package renderer

import (
	"cmp"
	"slices"
	"time"

	"github.com/etnz/bankroll"
	"github.com/google/uuid"
)

// Sessions is the view model of the "sessions" report.
type Sessions struct {
	Base string
	Rows []SessionRow
}

// SessionRow is one session, preformatted.
type SessionRow struct {
	Date     string
	Kind     bankroll.SessionKind
	Where    string // platform name or venue
	Game     string
	Blinds   string
	Duration float64
	Hands    int
	Net      string // base currency
	BBPer100 string
	Active   bool

	start time.Time
}

// NewSessions builds the view model of the sessions, most recent first.
// platformName resolves the name of an online session's platform.
func NewSessions(online []bankroll.OnlineCash, live []bankroll.LiveCash, cfg bankroll.Settings, platformName func(uuid.UUID) string) *Sessions {
	base := cfg.Normalize().BaseCurrency
	s := &Sessions{Base: base}
	row := func(x bankroll.Session, where string, active bool) SessionRow {
		r := SessionRow{
			Kind:     x.Kind(),
			Where:    where,
			Game:     x.GameType(),
			Blinds:   x.DisplayBlinds(),
			Duration: x.ComputedDuration(),
			Hands:    x.EffectiveHands(cfg),
			Net:      signed(x.NetResultBase(), base),
			Active:   active,
			start:    x.SessionDate(),
		}
		if !r.start.IsZero() {
			r.Date = r.start.Format(time.DateOnly)
		}
		if bb := bankroll.BBPer100(x, cfg); !bb.IsZero() {
			r.BBPer100 = number(bb)
		}
		return r
	}
	for _, x := range online {
		where := ""
		if platformName != nil {
			where = platformName(x.PlatformID)
		}
		s.Rows = append(s.Rows, row(x, where, x.IsActive()))
	}
	for _, x := range live {
		s.Rows = append(s.Rows, row(x, x.Location, x.IsActive()))
	}
	slices.SortStableFunc(s.Rows, func(a, b SessionRow) int { return cmp.Compare(b.start.UnixNano(), a.start.UnixNano()) })
	return s
}
