package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/etnz/bankroll"
	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

// sessionsCmd holds the flags for the 'sessions' subcommand.
type sessionsCmd struct {
	cfg *Config

	period   string
	from, to string
	filter   string
}

func (*sessionsCmd) Name() string     { return "sessions" }
func (*sessionsCmd) Synopsis() string { return "list the sessions, most recent first" }
func (*sessionsCmd) Usage() string {
	return `bkr sessions [-period all|day|week|month|quarter|year|custom] [-from <date>] [-to <date>] [-filter <filter>]

  Lists online and live sessions with their duration, hands and result in
  base currency.
`
}

func (c *sessionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "all", "Period of the listing: all, day, week, month, quarter, year or custom")
	f.StringVar(&c.from, "from", "", "Start of a custom period")
	f.StringVar(&c.to, "to", "0d", "End of a custom period, today by default")
	f.StringVar(&c.filter, "filter", "all", "Sessions to list: all, live, online, platform:<name>, game:<game> or location:<venue>")
}

func (c *sessionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, settings, err := OpenBook(c.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	df, err := bankroll.ParseDateFilter(c.period, c.from, c.to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	sf, err := bankroll.ParseSessionFilter(c.filter, book.Resolve)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	q := bankroll.Query{Date: df, Sessions: sf, Settings: settings, Now: time.Now()}
	online, live := bankroll.FilterSessions(book.OnlineSessions(), book.Live, q)

	name := func(id uuid.UUID) string {
		p, _ := book.Platform(id)
		return p.DisplayName()
	}
	printMarkdown(renderer.RenderSessions(renderer.NewSessions(online, live, settings, name)), c.cfg.Raw)
	return subcommands.ExitSuccess
}
