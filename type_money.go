package bankroll

import (
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the currency code used when a record has none.
const DefaultCurrency = "USD"

// Money is a decimal amount tagged with its currency. It is the presentation
// form of the decimal amounts the engine computes.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns a Money of value in currency.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the money's currency
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// Accessors and predicates on the amount. Equal also compares currencies.

func (m Money) Currency() string       { return m.cur }
func (m Money) Value() decimal.Decimal { return m.value }
func (m Money) IsZero() bool           { return m.value.IsZero() }
func (m Money) IsPositive() bool       { return m.value.IsPositive() }
func (m Money) IsNegative() bool       { return m.value.IsNegative() }
func (m Money) Equal(n Money) bool     { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) AsFloat() float64       { return m.value.InexactFloat64() }
func (m Money) Neg() Money             { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Round() decimal.Decimal { return m.value.Round(int32(m.currency().Fraction)) }

// String returns the amount formatted the way its currency is usually written.
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.Round().IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

// ValidateCurrency checks that code is a known ISO 4217 currency code.
func ValidateCurrency(code string) error {
	if len(code) != 3 {
		return fmt.Errorf("invalid currency code %q: want three letters", code)
	}
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}
