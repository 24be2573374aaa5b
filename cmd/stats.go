package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// statsCmd holds the flags for the 'stats' subcommand.
type statsCmd struct {
	cfg *Config

	period      string
	from, to    string
	filter      string
	adjustments bool
	json        bool
	path        string
}

func (*statsCmd) Name() string     { return "stats" }
func (*statsCmd) Synopsis() string { return "display performance statistics of the sessions" }
func (*statsCmd) Usage() string {
	return `bkr stats [-period all|day|week|month|quarter|year|custom] [-from <date>] [-to <date>] [-filter <filter>] [-adjustments] [-json] [-path <jsonpath>]

  Displays the performance statistics of the sessions selected by the
  period and the filter: results, volume, streaks and big blinds.

  Filters: all, live, online, platform:<name>, game:<game>, location:<venue>.

Usage Examples:
# Statistics of the current month, live sessions only.
$ bkr stats -period month -filter live

# Hourly rate of the first quarter, as a number.
$ bkr stats -period custom -from 2025-01-01 -to 2025-03-31 -path $.hourlyRate

`
}

func (c *statsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Period of the statistics: all, day, week, month, quarter, year or custom")
	f.StringVar(&c.from, "from", "", "Start of a custom period. See the user manual for supported date formats.")
	f.StringVar(&c.to, "to", "0d", "End of a custom period, today by default")
	f.StringVar(&c.filter, "filter", "all", "Sessions to include: all, live, online, platform:<name>, game:<game> or location:<venue>")
	f.BoolVar(&c.adjustments, "adjustments", false, "include manual adjustments in the net result")
	f.BoolVar(&c.json, "json", false, "print the statistics as JSON")
	f.StringVar(&c.path, "path", "", "print only the JSON value at this JSONPath, implies -json")
}

// statsJSON is the JSON form of the statistics, derived figures included.
type statsJSON struct {
	Period string `json:"period"`
	Filter string `json:"filter"`
	Base   string `json:"baseCurrency"`
	bankroll.StatsResult
	HourlyRate         decimal.Decimal `json:"hourlyRate"`
	AvgResult          decimal.Decimal `json:"avgResult"`
	AvgSessionDuration float64         `json:"avgSessionDuration"`
	AvgBuyIn           decimal.Decimal `json:"avgBuyIn"`
	WinRate            float64         `json:"winRate"`
	BBPerHour          decimal.Decimal `json:"bbPerHour"`
	BBPer100           decimal.Decimal `json:"bbPer100"`
}

func newStatsJSON(r bankroll.StatsResult, q bankroll.Query) statsJSON {
	return statsJSON{
		Period:             q.Date.String(),
		Filter:             q.Sessions.String(),
		Base:               q.Settings.BaseCurrency,
		StatsResult:        r,
		HourlyRate:         r.HourlyRate(),
		AvgResult:          r.AvgResult(),
		AvgSessionDuration: r.AvgSessionDuration(),
		AvgBuyIn:           r.AvgBuyIn(),
		WinRate:            r.WinRate(),
		BBPerHour:          r.BBPerHour(),
		BBPer100:           r.BBPer100(),
	}
}

// query builds the statistics query from the flags.
func (c *statsCmd) query(book *bankroll.Book, settings bankroll.Settings) (bankroll.Query, error) {
	df, err := bankroll.ParseDateFilter(c.period, c.from, c.to)
	if err != nil {
		return bankroll.Query{}, err
	}
	sf, err := bankroll.ParseSessionFilter(c.filter, book.Resolve)
	if err != nil {
		return bankroll.Query{}, err
	}
	return bankroll.Query{
		Date:            df,
		Sessions:        sf,
		ShowAdjustments: c.adjustments,
		Settings:        settings,
		Now:             time.Now(),
	}, nil
}

func (c *statsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, settings, err := OpenBook(c.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	q, err := c.query(book, settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	r := book.Stats(q)
	log.Debug().Str("period", q.Date.String()).Str("filter", q.Sessions.String()).Int("sessions", r.SessionCount).Msg("stats-computed")

	switch {
	case c.path != "":
		v, err := extract(newStatsJSON(r, q), c.path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if err := printJSON(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	case c.json:
		if err := printJSON(newStatsJSON(r, q)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	default:
		printMarkdown(renderer.RenderStats(renderer.NewStats(r, q, settings.BaseCurrency)), c.cfg.Raw)
	}
	return subcommands.ExitSuccess
}

// extract returns the value at the JSONPath path in the JSON form of v.
func extract(v any, path string) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	value, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	return value, nil
}
