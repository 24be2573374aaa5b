package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/bankroll"
	"github.com/google/subcommands"
)

type fmtCmd struct {
	cfg *Config
}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the book file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `bkr fmt

  Validates and formats the book file. This command reads all records,
  attaches them to their platform, sorts them by date, and writes them
  back in a canonical JSONL format.

Usage Examples:
# Formats the default book file in-place.
$ bkr fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	// The book must exist, formatting an empty book makes no sense.
	book, err := bankroll.OpenBook(p.cfg.Book)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load book: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := bankroll.SaveBook(p.cfg.Book, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted book %q: %v\n", p.cfg.Book, err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "✅ Successfully formatted %s.\n", p.cfg.Book)
	return subcommands.ExitSuccess
}
