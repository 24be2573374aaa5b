package bankroll

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// live returns a finished live session of hours, starting at start, whose
// result is net.
func live(start time.Time, hours float64, net string) LiveCash {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	s := NewLiveCash("Casino", start, &end)
	s.BuyIn = dec("100")
	s.CashOut = dec("100").Add(dec(net))
	return s
}

// online returns a finished online session on platform, whose result is net.
func online(platform uuid.UUID, start time.Time, hours float64, net string) OnlineCash {
	end := start.Add(time.Duration(hours * float64(time.Hour)))
	s := NewOnlineCash(platform, start, &end)
	s.NetProfitLoss = dec(net)
	s.NetProfitLossBase = dec(net)
	s.BalanceBefore = dec("50")
	return s
}

func TestStreaks(t *testing.T) {
	results := []string{"10", "5", "-3", "-1", "2"}
	var sessions []LiveCash
	for i, r := range results {
		sessions = append(sessions, live(on("2025-06-01").AddDate(0, 0, i), 1, r))
	}
	r := ComputeStats(nil, sessions, nil, Query{})
	assert.Equal(t, 2, r.LongestWinStreak)
	assert.Equal(t, 2, r.LongestLoseStreak)
	assert.Equal(t, 3, r.WinCount)
	assert.Equal(t, 2, r.LoseCount)
}

func TestStreaks_ChronologicalOrder(t *testing.T) {
	// Listed out of order, sorted by start they alternate.
	outcomes := []outcome{
		{on: on("2025-01-01"), win: true},
		{on: on("2025-01-03"), win: true},
		{on: on("2025-01-02"), win: false},
		{on: on("2025-01-04"), win: false},
	}
	win, lose := streaks(outcomes)
	assert.Equal(t, 1, win)
	assert.Equal(t, 1, lose)
}

func TestComputeStats(t *testing.T) {
	p := uuid.New()
	now := on("2025-06-30").Add(12 * time.Hour)
	onlines := []OnlineCash{
		online(p, on("2025-06-02"), 2, "40"),
		online(p, on("2025-06-05"), 1, "-10"),
	}
	lives := []LiveCash{
		live(on("2025-06-10"), 4, "180"),
		live(on("2025-06-12"), 3, "0"),
	}
	lives[0].Tips = dec("20")
	lives[0].Blinds = Blinds{Small: dec("1"), Big: dec("2")}

	r := ComputeStats(onlines, lives, nil, Query{Now: now})

	assert.Equal(t, 4, r.SessionCount)
	assert.Equal(t, 2, r.OnlineCount)
	assert.Equal(t, 2, r.LiveCount)
	assert.Equal(t, r.SessionCount, r.WinCount+r.LoseCount)
	assert.Equal(t, 2, r.WinCount)
	assert.Equal(t, 2, r.LoseCount, "a break-even session is not a win")
	assertDecimal(t, dec("210"), r.NetResultNoAdj)
	assertDecimal(t, dec("210"), r.NetResult)
	assert.InDelta(t, 10, r.TotalHours, 1e-9)
	// online 2*60 + 1*60, live 4*30 + 3*30
	assert.Equal(t, 390, r.TotalHands)
	assertDecimal(t, dec("180"), r.BiggestWin)
	assertDecimal(t, dec("-10"), r.BiggestLoss)
	assert.InDelta(t, 4, r.LongestSession, 1e-9)
	assertDecimal(t, dec("20"), r.TotalTips)
	assertDecimal(t, dec("300"), r.TotalBuyIn)
	assertDecimal(t, dec("90"), r.TotalBBWon)
	assert.Greater(t, r.StdDev, 0.0)

	assertDecimal(t, dec("21"), r.HourlyRate())
	assertDecimal(t, dec("52.5"), r.AvgResult())
	assert.InDelta(t, 2.5, r.AvgSessionDuration(), 1e-9)
	assertDecimal(t, dec("75"), r.AvgBuyIn())
	assert.InDelta(t, 0.5, r.WinRate(), 1e-9)
	assert.Equal(t, "50.00%", r.WinPercent().String())
	assertDecimal(t, dec("9"), r.BBPerHour())
}

func TestComputeStats_Empty(t *testing.T) {
	r := ComputeStats(nil, nil, nil, Query{})
	assert.Zero(t, r.SessionCount)
	assertDecimal(t, decimal.Zero, r.HourlyRate())
	assertDecimal(t, decimal.Zero, r.AvgResult())
	assertDecimal(t, decimal.Zero, r.AvgBuyIn())
	assertDecimal(t, decimal.Zero, r.BBPerHour())
	assertDecimal(t, decimal.Zero, r.BBPer100())
	assert.Zero(t, r.AvgSessionDuration())
	assert.Zero(t, r.WinRate())
	assert.Zero(t, r.StdDev)
}

func TestComputeStats_Filters(t *testing.T) {
	pokerstars, winamax := uuid.New(), uuid.New()
	now := on("2025-06-30")
	onlines := []OnlineCash{
		online(pokerstars, on("2025-06-02"), 1, "40"),
		online(winamax, on("2025-05-05"), 1, "-10"),
		online(winamax, on("2024-12-31"), 1, "7"),
	}
	onlines[0].Game = "NLHE"
	lives := []LiveCash{
		live(on("2025-06-10"), 1, "100"),
		live(on("2025-01-12"), 1, "-50"),
	}
	lives[0].Game = "NLHE"
	lives[1].Location = "Club"
	adjustments := []Adjustment{
		{PlatformID: winamax, Date: on("2025-06-01"), AmountBase: dec("5")},
		{Date: on("2025-06-03"), AmountBase: dec("-1")},
		{Date: on("2024-06-03"), AmountBase: dec("1000")},
	}

	testCases := []struct {
		name     string
		q        Query
		sessions int
		net      string
	}{
		{name: "all", q: Query{}, sessions: 5, net: "87"},
		{name: "this month", q: Query{Date: ThisMonth{}}, sessions: 2, net: "140"},
		{name: "this year", q: Query{Date: ThisYear{}}, sessions: 4, net: "80"},
		{name: "custom", q: Query{Date: CustomRange{From: dateOf("2025-05-05"), To: dateOf("2025-06-02")}}, sessions: 2, net: "30"},
		{name: "live", q: Query{Sessions: LiveOnly{}}, sessions: 2, net: "50"},
		{name: "online", q: Query{Sessions: OnlineOnly{}}, sessions: 3, net: "37"},
		{name: "platform", q: Query{Sessions: ByPlatform{ID: winamax}}, sessions: 2, net: "-3"},
		{name: "game", q: Query{Sessions: ByGameType{Game: "NLHE"}}, sessions: 2, net: "140"},
		{name: "location", q: Query{Sessions: ByLocation{Location: "Club"}}, sessions: 1, net: "-50"},
		{name: "month and online", q: Query{Date: ThisMonth{}, Sessions: OnlineOnly{}}, sessions: 1, net: "40"},
		{name: "all with adjustments", q: Query{ShowAdjustments: true}, sessions: 5, net: "1091"},
		{name: "month with adjustments", q: Query{Date: ThisMonth{}, ShowAdjustments: true}, sessions: 2, net: "144"},
		{name: "platform with adjustments", q: Query{Sessions: ByPlatform{ID: winamax}, ShowAdjustments: true}, sessions: 2, net: "2"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tc.q.Now = now
			r := ComputeStats(onlines, lives, adjustments, tc.q)
			assert.Equal(t, tc.sessions, r.SessionCount)
			assert.Equal(t, r.SessionCount, r.WinCount+r.LoseCount)
			assertDecimal(t, dec(tc.net), r.NetResult)
			assertDecimal(t, r.NetResultNoAdj.Add(r.AdjustmentsTotal), r.NetResult)
		})
	}
}

func TestComputeStats_Idempotent(t *testing.T) {
	lives := []LiveCash{
		live(on("2025-06-10"), 2, "30"),
		live(on("2025-06-11"), 1.5, "-12.5"),
	}
	q := Query{Now: on("2025-06-30"), ShowAdjustments: true}
	first := ComputeStats(nil, lives, nil, q)
	second := ComputeStats(nil, lives, nil, q)
	assert.Equal(t, first, second)
}

func TestComputeStats_UndatedSessionIsNow(t *testing.T) {
	s := LiveCash{BuyIn: dec("10"), CashOut: dec("15")}
	r := ComputeStats(nil, []LiveCash{s}, nil, Query{Date: ThisMonth{}, Now: on("2025-06-30")})
	require.Equal(t, 1, r.SessionCount)
	assertDecimal(t, dec("5"), r.NetResult)
}
