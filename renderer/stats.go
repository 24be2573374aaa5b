package renderer

import (
	"github.com/etnz/bankroll"
	"github.com/shopspring/decimal"
)

// Stats is the view model of the "stats" report. Amounts are preformatted
// in the base currency.
type Stats struct {
	Period string
	Filter string
	Base   string

	Sessions int
	Online   int
	Live     int

	Net             string
	NetNoAdj        string
	Adjustments     string
	ShowAdjustments bool
	Hourly          string
	AvgResult       string
	AvgBuyIn        string
	TotalBuyIn      string
	Tips            string
	BiggestWin      string
	BiggestLoss     string
	StdDev          string

	Hours       float64
	AvgDuration float64
	Longest     float64
	Hands       int
	WinRate     bankroll.Percent
	Wins        int
	Losses      int
	WinStreak   int
	LoseStreak  int

	BigBlinds bool // at least one session recorded its blinds
	BBWon     string
	BBPerHour string
	BBPer100  string
}

// NewStats builds the view model of r, computed for q, in base currency.
func NewStats(r bankroll.StatsResult, q bankroll.Query, base string) *Stats {
	period, filter := "all time", "all sessions"
	if q.Date != nil {
		period = q.Date.String()
	}
	if q.Sessions != nil {
		filter = q.Sessions.String()
	}
	return &Stats{
		Period: period,
		Filter: filter,
		Base:   base,

		Sessions: r.SessionCount,
		Online:   r.OnlineCount,
		Live:     r.LiveCount,

		Net:             signed(r.NetResult, base),
		NetNoAdj:        signed(r.NetResultNoAdj, base),
		Adjustments:     signed(r.AdjustmentsTotal, base),
		ShowAdjustments: q.ShowAdjustments,
		Hourly:          signed(r.HourlyRate(), base),
		AvgResult:       signed(r.AvgResult(), base),
		AvgBuyIn:        amount(r.AvgBuyIn(), base),
		TotalBuyIn:      amount(r.TotalBuyIn, base),
		Tips:            amount(r.TotalTips, base),
		BiggestWin:      signed(r.BiggestWin, base),
		BiggestLoss:     signed(r.BiggestLoss, base),
		StdDev:          amount(decimal.NewFromFloat(r.StdDev), base),

		Hours:       r.TotalHours,
		AvgDuration: r.AvgSessionDuration(),
		Longest:     r.LongestSession,
		Hands:       r.TotalHands,
		WinRate:     r.WinPercent(),
		Wins:        r.WinCount,
		Losses:      r.LoseCount,
		WinStreak:   r.LongestWinStreak,
		LoseStreak:  r.LongestLoseStreak,

		BigBlinds: !r.TotalBBWon.IsZero(),
		BBWon:     number(r.TotalBBWon),
		BBPerHour: number(r.BBPerHour()),
		BBPer100:  number(r.BBPer100()),
	}
}
