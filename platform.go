package bankroll

import (
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// datedRate is an exchange rate observed on a transaction date.
type datedRate struct {
	on   time.Time
	rate Rate
}

// hasActivity reports whether money ever moved in or out of the platform.
// A platform without deposits or withdrawals is unseeded and has no result.
func (p Platform) hasActivity() bool {
	return len(p.Deposits) > 0 || len(p.Withdrawals) > 0
}

// LatestFXConversionRate returns the number of base units one platform unit
// is worth, according to the most recent foreign-exchange transaction.
//
// Deposits record the rate as platform units per base unit and are
// inverted; withdrawals record base units per platform unit and are used as
// is. Transactions without a positive rate are ignored. It returns 1 when
// no foreign-exchange transaction exists.
func (p Platform) LatestFXConversionRate() Rate {
	rates := make([]datedRate, 0, len(p.Deposits)+len(p.Withdrawals))
	for _, d := range p.Deposits {
		if d.IsForeignExchange && d.EffectiveExchangeRate.IsSet() {
			rates = append(rates, datedRate{d.Date, d.EffectiveExchangeRate.Inverse()})
		}
	}
	for _, w := range p.Withdrawals {
		if w.IsForeignExchange && w.EffectiveExchangeRate.IsSet() {
			rates = append(rates, datedRate{w.Date, w.EffectiveExchangeRate})
		}
	}
	if len(rates) == 0 {
		return one
	}
	// zero dates sort first, so an undated transaction never wins over a dated one.
	slices.SortStableFunc(rates, func(a, b datedRate) int { return a.on.Compare(b.on) })
	return rates[len(rates)-1].rate
}

// TotalDeposited returns the base currency value of all deposits.
func (p Platform) TotalDeposited() decimal.Decimal {
	rate := p.LatestFXConversionRate()
	total := decimal.Zero
	for _, d := range p.Deposits {
		if d.IsForeignExchange {
			total = total.Add(d.AmountSent) // already in base currency
			continue
		}
		total = total.Add(rate.Apply(d.AmountSent))
	}
	return total
}

// TotalWithdrawn returns the base currency value of all withdrawals.
func (p Platform) TotalWithdrawn() decimal.Decimal {
	rate := p.LatestFXConversionRate()
	total := decimal.Zero
	for _, w := range p.Withdrawals {
		if w.IsForeignExchange {
			total = total.Add(w.AmountReceived) // already in base currency
			continue
		}
		total = total.Add(rate.Apply(w.AmountReceived))
	}
	return total
}

// TotalAdjustments returns the sum of the platform adjustments in base currency.
func (p Platform) TotalAdjustments() decimal.Decimal {
	return sumAdjustments(p.Adjustments)
}

func sumAdjustments(adjustments []Adjustment) decimal.Decimal {
	total := decimal.Zero
	for _, a := range adjustments {
		total = total.Add(a.AmountBase)
	}
	return total
}

// BalanceInBase returns the current balance valued at the latest rate.
func (p Platform) BalanceInBase() decimal.Decimal {
	return p.LatestFXConversionRate().Apply(p.CurrentBalance)
}

// NetResult returns the platform profit or loss in base currency: what was
// taken out, plus what is still held valued at the latest rate, minus what
// was put in, plus manual adjustments.
func (p Platform) NetResult() decimal.Decimal {
	if !p.hasActivity() {
		return decimal.Zero
	}
	return p.TotalWithdrawn().
		Add(p.BalanceInBase()).
		Sub(p.TotalDeposited()).
		Add(p.TotalAdjustments())
}

// NetResultInPlatformCurrency returns the platform profit or loss in the
// platform currency.
//
// It is derived from the platform side of every transaction and not from
// NetResult, so both figures may differ slightly.
func (p Platform) NetResultInPlatformCurrency() decimal.Decimal {
	if !p.hasActivity() {
		return decimal.Zero
	}
	deposited := decimal.Zero
	for _, d := range p.Deposits {
		deposited = deposited.Add(d.AmountReceived)
	}
	withdrawn := decimal.Zero
	for _, w := range p.Withdrawals {
		withdrawn = withdrawn.Add(w.AmountRequested)
	}
	adjustments := p.LatestFXConversionRate().Unapply(p.TotalAdjustments())
	return withdrawn.Add(p.CurrentBalance).Sub(deposited).Add(adjustments)
}

// Valuation is a snapshot of every figure the valuation engine derives for a
// platform.
type Valuation struct {
	Platform           string          `json:"platform"`
	Currency           string          `json:"currency"`
	BaseCurrency       string          `json:"baseCurrency"`
	Rate               Rate            `json:"rate"`
	Balance            decimal.Decimal `json:"balance"`
	BalanceBase        decimal.Decimal `json:"balanceBase"`
	Deposited          decimal.Decimal `json:"deposited"`
	Withdrawn          decimal.Decimal `json:"withdrawn"`
	Adjustments        decimal.Decimal `json:"adjustments"`
	NetResult          decimal.Decimal `json:"netResult"`
	NetResultPlatform  decimal.Decimal `json:"netResultPlatform"`
	DepositCount       int             `json:"depositCount"`
	WithdrawalCount    int             `json:"withdrawalCount"`
	OnlineSessionCount int             `json:"onlineSessionCount"`
}

// Value computes the valuation of the platform, reported in base currency.
func (p Platform) Value(base string) Valuation {
	return Valuation{
		Platform:           p.DisplayName(),
		Currency:           p.CurrencyCode(),
		BaseCurrency:       base,
		Rate:               p.LatestFXConversionRate(),
		Balance:            p.CurrentBalance,
		BalanceBase:        p.BalanceInBase(),
		Deposited:          p.TotalDeposited(),
		Withdrawn:          p.TotalWithdrawn(),
		Adjustments:        p.TotalAdjustments(),
		NetResult:          p.NetResult(),
		NetResultPlatform:  p.NetResultInPlatformCurrency(),
		DepositCount:       len(p.Deposits),
		WithdrawalCount:    len(p.Withdrawals),
		OnlineSessionCount: len(p.Sessions),
	}
}
