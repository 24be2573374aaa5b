package bankroll

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/stat"
)

// Query describes which records ComputeStats reduces.
type Query struct {
	Date            DateFilter    // nil means AllTime
	Sessions        SessionFilter // nil means AllSessions
	ShowAdjustments bool
	Settings        Settings
	Now             time.Time // reference for calendar filters, time.Now() when zero
}

func (q Query) now() time.Time {
	if q.Now.IsZero() {
		return time.Now()
	}
	return q.Now
}

// StatsResult holds the performance statistics of a set of sessions. All
// amounts are in base currency.
type StatsResult struct {
	NetResult        decimal.Decimal `json:"netResult"`
	NetResultNoAdj   decimal.Decimal `json:"netResultNoAdj"`
	AdjustmentsTotal decimal.Decimal `json:"adjustmentsTotal"`

	TotalHours   float64 `json:"totalHours"`
	TotalHands   int     `json:"totalHands"`
	SessionCount int     `json:"sessionCount"`
	OnlineCount  int     `json:"onlineCount"`
	LiveCount    int     `json:"liveCount"`
	WinCount     int     `json:"winCount"`
	LoseCount    int     `json:"loseCount"`

	TotalBBWon decimal.Decimal `json:"totalBBWon"`
	TotalBuyIn decimal.Decimal `json:"totalBuyIn"`
	TotalTips  decimal.Decimal `json:"totalTips"`

	BiggestWin        decimal.Decimal `json:"biggestWin"`
	BiggestLoss       decimal.Decimal `json:"biggestLoss"`
	LongestSession    float64         `json:"longestSession"`
	LongestWinStreak  int             `json:"longestWinStreak"`
	LongestLoseStreak int             `json:"longestLoseStreak"`

	// StdDev is the population standard deviation of session results.
	StdDev float64 `json:"stdDev"`
}

// HourlyRate is the net result per hour played.
func (r StatsResult) HourlyRate() decimal.Decimal { return divFloat(r.NetResult, r.TotalHours) }

// AvgResult is the net result per session.
func (r StatsResult) AvgResult() decimal.Decimal { return divInt(r.NetResult, r.SessionCount) }

// AvgSessionDuration is the number of hours per session.
func (r StatsResult) AvgSessionDuration() float64 {
	if r.SessionCount == 0 {
		return 0
	}
	return r.TotalHours / float64(r.SessionCount)
}

// AvgBuyIn is the buy-in per session.
func (r StatsResult) AvgBuyIn() decimal.Decimal { return divInt(r.TotalBuyIn, r.SessionCount) }

// WinRate is the ratio of winning sessions, in [0,1].
func (r StatsResult) WinRate() float64 {
	if r.SessionCount == 0 {
		return 0
	}
	return float64(r.WinCount) / float64(r.SessionCount)
}

// WinPercent is the share of winning sessions.
func (r StatsResult) WinPercent() Percent { return Ratio(r.WinCount, r.SessionCount) }

// BBPerHour is the number of big blinds won per hour played.
func (r StatsResult) BBPerHour() decimal.Decimal { return divFloat(r.TotalBBWon, r.TotalHours) }

// BBPer100 is the number of big blinds won per hundred hands.
func (r StatsResult) BBPer100() decimal.Decimal {
	return divInt(r.TotalBBWon, r.TotalHands).Mul(decimal.NewFromInt(100))
}

func divFloat(v decimal.Decimal, d float64) decimal.Decimal {
	if d == 0 {
		return decimal.Zero
	}
	return v.Div(decimal.NewFromFloat(d))
}

func divInt(v decimal.Decimal, d int) decimal.Decimal {
	if d == 0 {
		return decimal.Zero
	}
	return v.Div(decimal.NewFromInt(int64(d)))
}

// outcome is a session reduced to what streaks need.
type outcome struct {
	on  time.Time
	win bool
}

// accumulator reduces sessions of both kinds into a StatsResult.
type accumulator struct {
	result   StatsResult
	settings Settings
	now      time.Time
	outcomes []outcome
	results  []float64
}

func (a *accumulator) add(s Session) {
	r := &a.result
	net := s.NetResultBase()
	hours := s.ComputedDuration()

	r.NetResultNoAdj = r.NetResultNoAdj.Add(net)
	r.TotalHours += hours
	r.TotalHands += s.EffectiveHands(a.settings)
	r.SessionCount++
	win := s.NetResult().IsPositive()
	if win {
		r.WinCount++
	} else {
		r.LoseCount++
	}
	r.TotalBBWon = r.TotalBBWon.Add(BBWon(s))
	r.TotalBuyIn = r.TotalBuyIn.Add(s.BuyInBase())
	if net.GreaterThan(r.BiggestWin) {
		r.BiggestWin = net
	}
	if net.LessThan(r.BiggestLoss) {
		r.BiggestLoss = net
	}
	r.LongestSession = max(r.LongestSession, hours)

	a.outcomes = append(a.outcomes, outcome{on: sessionDate(s, a.now), win: win})
	a.results = append(a.results, net.InexactFloat64())
}

// sessionDate returns the session date, or now when it has none so that it
// still shows in "all time" views.
func sessionDate(s Session, now time.Time) time.Time {
	if on := s.SessionDate(); !on.IsZero() {
		return on
	}
	return now
}

// streaks returns the longest runs of consecutive winning and losing
// sessions, in chronological order.
func streaks(outcomes []outcome) (longestWin, longestLose int) {
	// stable sort keeps the input order for sessions starting at the same time.
	slices.SortStableFunc(outcomes, func(a, b outcome) int { return a.on.Compare(b.on) })
	var win, lose int
	for _, o := range outcomes {
		if o.win {
			win, lose = win+1, 0
		} else {
			win, lose = 0, lose+1
		}
		longestWin = max(longestWin, win)
		longestLose = max(longestLose, lose)
	}
	return longestWin, longestLose
}

// FilterSessions returns the sessions that pass the date and session filters
// of q.
func FilterSessions(online []OnlineCash, live []LiveCash, q Query) ([]OnlineCash, []LiveCash) {
	now := q.now()
	online = keep(online, func(s OnlineCash) bool { return matchDate(q.Date, sessionDate(s, now), now) })
	live = keep(live, func(s LiveCash) bool { return matchDate(q.Date, sessionDate(s, now), now) })
	return filterSessions(q.Sessions, online, live)
}

// ComputeStats reduces online and live sessions, and optionally
// adjustments, into a StatsResult.
//
// Sessions are first filtered by date, then by the session filter.
// Adjustments follow the date filter and, for a ByPlatform filter, are
// restricted to that platform.
func ComputeStats(online []OnlineCash, live []LiveCash, adjustments []Adjustment, q Query) StatsResult {
	now := q.now()
	q.Now = now
	online, live = FilterSessions(online, live, q)

	a := &accumulator{settings: q.Settings.Normalize(), now: now}
	for _, s := range online {
		a.add(s)
		a.result.OnlineCount++
	}
	for _, s := range live {
		a.add(s)
		a.result.LiveCount++
		a.result.TotalTips = a.result.TotalTips.Add(s.TipsBase())
	}

	r := a.result
	r.LongestWinStreak, r.LongestLoseStreak = streaks(a.outcomes)
	if len(a.results) > 0 {
		r.StdDev = stat.PopStdDev(a.results, nil)
	}

	if q.ShowAdjustments {
		adjustments = keep(adjustments, func(adj Adjustment) bool { return matchDate(q.Date, adj.Date, now) })
		if f, ok := q.Sessions.(ByPlatform); ok {
			adjustments = keep(adjustments, func(adj Adjustment) bool { return adj.PlatformID == f.ID })
		}
		r.AdjustmentsTotal = sumAdjustments(adjustments)
	}
	r.NetResult = r.NetResultNoAdj.Add(r.AdjustmentsTotal)
	return r
}
