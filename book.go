package bankroll

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Book is a snapshot of every record of a bankroll: the platforms with their
// transactions and online sessions, the live sessions, and the adjustments
// not linked to any platform.
//
// A Book is what the storage layer hands to the engine; the engine only
// reads it.
type Book struct {
	Settings    Settings // as recorded, possibly partial
	Platforms   []Platform
	Live        []LiveCash
	Adjustments []Adjustment // standalone ones only
}

// NewBook creates an empty book.
func NewBook() *Book { return &Book{} }

// Platform returns the platform with this id.
func (b *Book) Platform(id uuid.UUID) (Platform, bool) {
	for _, p := range b.Platforms {
		if p.ID == id {
			return p, true
		}
	}
	return Platform{}, false
}

// Resolve returns the id of the platform named name (case insensitive), or
// whose id is name.
func (b *Book) Resolve(name string) (uuid.UUID, bool) {
	for _, p := range b.Platforms {
		if strings.EqualFold(p.Name, name) || p.ID.String() == name {
			return p.ID, true
		}
	}
	return uuid.Nil, false
}

// OnlineSessions returns the online sessions of all platforms.
func (b *Book) OnlineSessions() []OnlineCash {
	var sessions []OnlineCash
	for _, p := range b.Platforms {
		sessions = append(sessions, p.Sessions...)
	}
	return sessions
}

// AllAdjustments returns the platform adjustments followed by the
// standalone ones.
func (b *Book) AllAdjustments() []Adjustment {
	var adjustments []Adjustment
	for _, p := range b.Platforms {
		adjustments = append(adjustments, p.Adjustments...)
	}
	return append(adjustments, b.Adjustments...)
}

// Stats computes the statistics of the whole book.
func (b *Book) Stats(q Query) StatsResult {
	return ComputeStats(b.OnlineSessions(), b.Live, b.AllAdjustments(), q)
}

// Valuations returns the valuation of every platform, reported in base.
func (b *Book) Valuations(base string) []Valuation {
	valuations := make([]Valuation, 0, len(b.Platforms))
	for _, p := range b.Platforms {
		valuations = append(valuations, p.Value(base))
	}
	return valuations
}

// TotalNetResult sums the net result of every platform, in base currency.
func (b *Book) TotalNetResult() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Platforms {
		total = total.Add(p.NetResult())
	}
	return total
}

// TotalBankroll sums the balance held on every platform, in base currency.
func (b *Book) TotalBankroll() decimal.Decimal {
	total := decimal.Zero
	for _, p := range b.Platforms {
		total = total.Add(p.BalanceInBase())
	}
	return total
}
