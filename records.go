package bankroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnnamedPlatform is displayed for platforms recorded without a name.
const UnnamedPlatform = "Unnamed platform"

// Platform is an account holding funds in its own currency (an online site,
// a cash-game venue). It owns its transactions and online sessions.
type Platform struct {
	ID             uuid.UUID
	Name           string
	Currency       string
	CurrentBalance decimal.Decimal // in the platform currency, as of last sync
	Created        time.Time

	Deposits    []Deposit
	Withdrawals []Withdrawal
	Sessions    []OnlineCash
	Adjustments []Adjustment
}

// DisplayName returns the platform name, or UnnamedPlatform.
func (p Platform) DisplayName() string {
	if p.Name == "" {
		return UnnamedPlatform
	}
	return p.Name
}

// CurrencyCode returns the platform currency, or DefaultCurrency.
func (p Platform) CurrencyCode() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}

// Deposit moves money into a platform.
//
// When IsForeignExchange is set, AmountSent is in base currency and
// AmountReceived in platform currency; otherwise both are in platform
// currency.
type Deposit struct {
	ID                    uuid.UUID
	PlatformID            uuid.UUID
	Date                  time.Time
	AmountSent            decimal.Decimal
	AmountReceived        decimal.Decimal
	IsForeignExchange     bool
	EffectiveExchangeRate Rate // platform units per base unit
	Fee                   decimal.Decimal
	Method                string
}

// Withdrawal moves money out of a platform.
//
// When IsForeignExchange is set, AmountReceived is in base currency and
// AmountRequested in platform currency; otherwise both are in platform
// currency.
type Withdrawal struct {
	ID                    uuid.UUID
	PlatformID            uuid.UUID
	Date                  time.Time
	AmountRequested       decimal.Decimal
	AmountReceived        decimal.Decimal
	IsForeignExchange     bool
	EffectiveExchangeRate Rate // base units per platform unit
	Fee                   decimal.Decimal
	Method                string
}

// Adjustment is a manual correction of the bankroll. PlatformID is uuid.Nil
// for standalone adjustments.
type Adjustment struct {
	ID         uuid.UUID
	PlatformID uuid.UUID
	Date       time.Time
	Amount     decimal.Decimal // in Currency
	Currency   string
	AmountBase decimal.Decimal
	Kind       SessionKind
	Notes      string
}
