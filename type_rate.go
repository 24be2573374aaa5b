package bankroll

import "github.com/shopspring/decimal"

// Rate is an exchange rate. A Rate that is zero or negative is treated as
// "not recorded".
type Rate struct {
	value decimal.Decimal
}

// R returns the Rate of value.
func R[T float64 | int | int64 | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// one is the neutral rate used whenever no rate is recorded.
var one = Rate{value: decimal.NewFromInt(1)}

// IsSet reports whether the rate is strictly positive.
func (r Rate) IsSet() bool { return r.value.IsPositive() }

// Or returns r when it is set, fallback otherwise.
func (r Rate) Or(fallback Rate) Rate {
	if r.IsSet() {
		return r
	}
	return fallback
}

// OrOne returns r when it is set, 1 otherwise.
func (r Rate) OrOne() Rate { return r.Or(one) }

// Inverse returns 1/r, or the zero Rate when r is not set.
func (r Rate) Inverse() Rate {
	if !r.IsSet() {
		return Rate{}
	}
	return Rate{value: decimal.NewFromInt(1).Div(r.value)}
}

// Apply converts amount with the rate.
func (r Rate) Apply(amount decimal.Decimal) decimal.Decimal { return amount.Mul(r.value) }

// Unapply converts amount back with the rate. The amount is returned
// unconverted when the rate is not set.
func (r Rate) Unapply(amount decimal.Decimal) decimal.Decimal {
	if !r.IsSet() {
		return amount
	}
	return amount.Div(r.value)
}

// Accessors and conversions of the rate value.

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Float() float64           { return r.value.InexactFloat64() }
func (r Rate) Equal(s Rate) bool        { return r.value.Equal(s.value) }
func (r Rate) String() string           { return r.value.String() }

// Rates are encoded as plain JSON numbers.

func (r Rate) MarshalJSON() ([]byte, error)     { return r.value.MarshalJSON() }
func (r *Rate) UnmarshalJSON(data []byte) error { return r.value.UnmarshalJSON(data) }
