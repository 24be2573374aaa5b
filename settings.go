package bankroll

import "fmt"

// Settings is the read-only configuration the engine depends on.
//
// Settings are always passed explicitly: nothing in this package reads
// process-wide state.
type Settings struct {
	BaseCurrency       string  `json:"baseCurrency,omitempty"`
	HandsPerHourOnline float64 `json:"handsPerHourOnline,omitempty"`
	HandsPerHourLive   float64 `json:"handsPerHourLive,omitempty"`
}

// Default hands-per-hour rates, per table for online play.
const (
	DefaultHandsPerHourOnline = 60
	DefaultHandsPerHourLive   = 30
)

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		BaseCurrency:       DefaultCurrency,
		HandsPerHourOnline: DefaultHandsPerHourOnline,
		HandsPerHourLive:   DefaultHandsPerHourLive,
	}
}

// Normalize returns a copy of s where unset fields hold their default.
func (s Settings) Normalize() Settings {
	d := DefaultSettings()
	if s.BaseCurrency == "" {
		s.BaseCurrency = d.BaseCurrency
	}
	if s.HandsPerHourOnline <= 0 {
		s.HandsPerHourOnline = d.HandsPerHourOnline
	}
	if s.HandsPerHourLive <= 0 {
		s.HandsPerHourLive = d.HandsPerHourLive
	}
	return s
}

// Merge returns s where every set field of o overrides s.
func (s Settings) Merge(o Settings) Settings {
	if o.BaseCurrency != "" {
		s.BaseCurrency = o.BaseCurrency
	}
	if o.HandsPerHourOnline > 0 {
		s.HandsPerHourOnline = o.HandsPerHourOnline
	}
	if o.HandsPerHourLive > 0 {
		s.HandsPerHourLive = o.HandsPerHourLive
	}
	return s
}

// Validate checks the base currency code.
func (s Settings) Validate() error {
	if err := ValidateCurrency(s.BaseCurrency); err != nil {
		return fmt.Errorf("invalid base currency: %w", err)
	}
	return nil
}
