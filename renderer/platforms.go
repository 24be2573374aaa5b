package renderer

import (
	"github.com/etnz/bankroll"
	"github.com/shopspring/decimal"
)

// Platforms is the view model of the "platforms" report.
type Platforms struct {
	Base  string
	Rows  []PlatformRow
	Total PlatformRow
}

// PlatformRow is one platform valuation, preformatted.
type PlatformRow struct {
	Name        string
	Currency    string
	Rate        string
	Balance     string // platform currency
	BalanceBase string
	Deposited   string
	Withdrawn   string
	Adjustments string
	Net         string
	NetPlatform string // platform currency
}

// NewPlatforms builds the view model of valuations reported in base.
func NewPlatforms(valuations []bankroll.Valuation, base string) *Platforms {
	p := &Platforms{Base: base}
	var balance, deposited, withdrawn, adjustments, net decimal.Decimal
	for _, v := range valuations {
		p.Rows = append(p.Rows, PlatformRow{
			Name:        v.Platform,
			Currency:    v.Currency,
			Rate:        v.Rate.Decimal().StringFixed(4),
			Balance:     amount(v.Balance, v.Currency),
			BalanceBase: amount(v.BalanceBase, base),
			Deposited:   amount(v.Deposited, base),
			Withdrawn:   amount(v.Withdrawn, base),
			Adjustments: signed(v.Adjustments, base),
			Net:         signed(v.NetResult, base),
			NetPlatform: signed(v.NetResultPlatform, v.Currency),
		})
		balance = balance.Add(v.BalanceBase)
		deposited = deposited.Add(v.Deposited)
		withdrawn = withdrawn.Add(v.Withdrawn)
		adjustments = adjustments.Add(v.Adjustments)
		net = net.Add(v.NetResult)
	}
	p.Total = PlatformRow{
		Name:        "Total",
		BalanceBase: amount(balance, base),
		Deposited:   amount(deposited, base),
		Withdrawn:   amount(withdrawn, base),
		Adjustments: signed(adjustments, base),
		Net:         signed(net, base),
	}
	return p
}
