package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll/renderer"
	"github.com/google/subcommands"
)

// platformsCmd holds the flags for the 'platforms' subcommand.
type platformsCmd struct {
	cfg  *Config
	json bool
}

func (*platformsCmd) Name() string     { return "platforms" }
func (*platformsCmd) Synopsis() string { return "display the valuation of every platform" }
func (*platformsCmd) Usage() string {
	return `bkr platforms [-json]

  Displays every platform with its balance, the money deposited and
  withdrawn, and its net result in base currency.
`
}

func (c *platformsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the valuations as JSON")
}

func (c *platformsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, settings, err := OpenBook(c.cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading book: %v\n", err)
		return subcommands.ExitFailure
	}

	valuations := book.Valuations(settings.BaseCurrency)
	if c.json {
		if err := printJSON(valuations); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.RenderPlatforms(renderer.NewPlatforms(valuations, settings.BaseCurrency)), c.cfg.Raw)
	return subcommands.ExitSuccess
}
