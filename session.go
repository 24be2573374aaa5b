package bankroll

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionKind tells online play from live play.
type SessionKind string

const (
	Online SessionKind = "online"
	Live   SessionKind = "live"
)

// Blinds is the forced-bet structure of a table. A zero component is not used.
type Blinds struct {
	Small    decimal.Decimal `json:"sb"`
	Big      decimal.Decimal `json:"bb"`
	Straddle decimal.Decimal `json:"straddle"`
	Ante     decimal.Decimal `json:"ante"`
}

// String formats the blinds as "SB/BB[/straddle][ (ante)]". It returns ""
// when either blind is missing.
func (b Blinds) String() string {
	if b.Small.IsZero() || b.Big.IsZero() {
		return ""
	}
	var s strings.Builder
	s.WriteString(b.Small.String())
	s.WriteString("/")
	s.WriteString(b.Big.String())
	if !b.Straddle.IsZero() {
		s.WriteString("/")
		s.WriteString(b.Straddle.String())
	}
	if !b.Ante.IsZero() {
		s.WriteString(" (")
		s.WriteString(b.Ante.String())
		s.WriteString(")")
	}
	return s.String()
}

// Session is the analytic view shared by online and live sessions.
type Session interface {
	Kind() SessionKind
	// SessionDate returns the session start, zero when unknown.
	SessionDate() time.Time
	// ComputedDuration returns the hours played, net of breaks.
	ComputedDuration() float64
	EffectiveHands(cfg Settings) int
	DisplayBlinds() string
	BigBlind() decimal.Decimal
	GameType() string
	// NetResult is in the session currency.
	NetResult() decimal.Decimal
	NetResultBase() decimal.Decimal
	BuyInBase() decimal.Decimal
}

// timing is the temporal shape common to both session kinds.
type timing struct {
	Start        time.Time
	End          *time.Time // nil while the session is active
	Duration     float64    // legacy stored duration in hours, used when End is nil
	BreakMinutes float64
}

// IsActive reports whether the session has not ended yet.
func (t timing) IsActive() bool { return t.End == nil }

func (t timing) computedDuration() float64 {
	if t.End == nil {
		return max(0, t.Duration)
	}
	hours := t.End.Sub(t.Start).Hours() - t.BreakMinutes/60
	return max(0, hours)
}

// OnlineCash is a cash-game session played on a platform, possibly on
// several tables at once.
type OnlineCash struct {
	ID         uuid.UUID
	PlatformID uuid.UUID
	Game       string
	timing
	Tables     int
	TableSize  int
	HandsCount int // 0 means derive from duration
	Blinds     Blinds

	BalanceBefore      decimal.Decimal
	BalanceAfter       decimal.Decimal
	NetProfitLoss      decimal.Decimal // platform currency
	NetProfitLossBase  decimal.Decimal // base currency, computed when the session was saved
	ExchangeRateToBase Rate
}

// NewOnlineCash returns an online session that ran from start to end.
func NewOnlineCash(platform uuid.UUID, start time.Time, end *time.Time) OnlineCash {
	return OnlineCash{ID: uuid.New(), PlatformID: platform, timing: timing{Start: start, End: end}, Tables: 1}
}

func (s OnlineCash) Kind() SessionKind              { return Online }
func (s OnlineCash) SessionDate() time.Time         { return s.Start }
func (s OnlineCash) ComputedDuration() float64      { return s.computedDuration() }
func (s OnlineCash) DisplayBlinds() string          { return s.Blinds.String() }
func (s OnlineCash) BigBlind() decimal.Decimal      { return s.Blinds.Big }
func (s OnlineCash) GameType() string               { return s.Game }
func (s OnlineCash) NetResult() decimal.Decimal     { return s.NetProfitLoss }
func (s OnlineCash) NetResultBase() decimal.Decimal { return s.NetProfitLossBase }

// EffectiveHands returns HandsCount when recorded, otherwise an estimate
// from the duration, the configured hands per hour and the table count.
func (s OnlineCash) EffectiveHands(cfg Settings) int {
	if s.HandsCount > 0 {
		return s.HandsCount
	}
	tables := max(1, s.Tables)
	return int(s.ComputedDuration() * cfg.Normalize().HandsPerHourOnline * float64(tables))
}

// BuyInBase values the balance the session started with in base currency.
func (s OnlineCash) BuyInBase() decimal.Decimal {
	return s.ExchangeRateToBase.OrOne().Apply(s.BalanceBefore)
}

// LiveCash is a cash-game session played at a physical venue.
type LiveCash struct {
	ID       uuid.UUID
	Game     string
	Location string
	timing
	HandsCount int // 0 means derive from duration
	Blinds     Blinds

	BuyIn   decimal.Decimal
	CashOut decimal.Decimal
	Tips    decimal.Decimal // not part of the result

	ExchangeRateBuyIn   Rate
	ExchangeRateCashOut Rate
	ExchangeRateToBase  Rate // single rate, used when the dual rates are not recorded
}

// NewLiveCash returns a live session at location that ran from start to end.
func NewLiveCash(location string, start time.Time, end *time.Time) LiveCash {
	return LiveCash{ID: uuid.New(), Location: location, timing: timing{Start: start, End: end}}
}

func (s LiveCash) Kind() SessionKind          { return Live }
func (s LiveCash) SessionDate() time.Time     { return s.Start }
func (s LiveCash) ComputedDuration() float64  { return s.computedDuration() }
func (s LiveCash) DisplayBlinds() string      { return s.Blinds.String() }
func (s LiveCash) BigBlind() decimal.Decimal  { return s.Blinds.Big }
func (s LiveCash) GameType() string           { return s.Game }
func (s LiveCash) NetResult() decimal.Decimal { return s.CashOut.Sub(s.BuyIn) }

// EffectiveHands returns HandsCount when recorded, otherwise an estimate
// from the duration and the configured hands per hour.
func (s LiveCash) EffectiveHands(cfg Settings) int {
	if s.HandsCount > 0 {
		return s.HandsCount
	}
	return int(s.ComputedDuration() * cfg.Normalize().HandsPerHourLive)
}

// hasDualRates reports whether both the buy-in and cash-out rates are recorded.
func (s LiveCash) hasDualRates() bool {
	return s.ExchangeRateBuyIn.IsSet() && s.ExchangeRateCashOut.IsSet()
}

// NetResultBase converts each side at its own rate when both are recorded,
// and falls back to the single rate otherwise.
func (s LiveCash) NetResultBase() decimal.Decimal {
	if s.hasDualRates() {
		return s.ExchangeRateCashOut.Apply(s.CashOut).Sub(s.ExchangeRateBuyIn.Apply(s.BuyIn))
	}
	return s.ExchangeRateToBase.OrOne().Apply(s.NetResult())
}

// BuyInBase converts the buy-in at the buy-in rate.
func (s LiveCash) BuyInBase() decimal.Decimal {
	return s.ExchangeRateBuyIn.Or(s.ExchangeRateToBase).OrOne().Apply(s.BuyIn)
}

// TipsBase converts the tips at the cash-out rate.
func (s LiveCash) TipsBase() decimal.Decimal {
	return s.ExchangeRateCashOut.Or(s.ExchangeRateToBase).OrOne().Apply(s.Tips)
}

// BBWon returns the result expressed in big blinds, 0 without a big blind.
func BBWon(s Session) decimal.Decimal {
	bb := s.BigBlind()
	if !bb.IsPositive() {
		return decimal.Zero
	}
	return s.NetResult().Div(bb)
}

// BBPer100 returns the big blinds won per hundred hands.
func BBPer100(s Session, cfg Settings) decimal.Decimal {
	hands := s.EffectiveHands(cfg)
	if hands == 0 || !s.BigBlind().IsPositive() {
		return decimal.Zero
	}
	return BBWon(s).Div(decimal.NewFromInt(int64(hands))).Mul(decimal.NewFromInt(100))
}

var (
	_ Session = OnlineCash{}
	_ Session = LiveCash{}
)
