// Package cmd implements the CLI application to analyse a bankroll.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/bankroll"
	"github.com/google/subcommands"
	"github.com/rs/zerolog/log"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	c.Register(&statsCmd{cfg: cfg}, "reports")
	c.Register(&platformsCmd{cfg: cfg}, "reports")
	c.Register(&sessionsCmd{cfg: cfg}, "reports")

	c.Register(&fmtCmd{cfg: cfg}, "book")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var stdout io.Writer = os.Stdout

// OpenBook is the central function to open the configured book, and the
// settings that apply to it: the book settings overridden by the
// configuration.
func OpenBook(cfg *Config) (*bankroll.Book, bankroll.Settings, error) {
	book, err := bankroll.OpenBook(cfg.Book)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn().Str("file", cfg.Book).Msg("book does not exist, using an empty book instead")
		book, err = bankroll.NewBook(), nil
	}
	if err != nil {
		return nil, bankroll.Settings{}, err
	}

	settings := bankroll.DefaultSettings().Merge(book.Settings).Merge(cfg.Settings)
	if err := settings.Validate(); err != nil {
		return nil, bankroll.Settings{}, err
	}
	log.Debug().
		Str("file", cfg.Book).
		Str("base", settings.BaseCurrency).
		Int("platforms", len(book.Platforms)).
		Int("live", len(book.Live)).
		Msg("book-opened")
	return book, settings, nil
}

// printMarkdown prints md rendered for the terminal, or as is when raw is
// set or rendering fails.
func printMarkdown(md string, raw bool) {
	if !raw {
		r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(160))
		if err == nil {
			var out string
			if out, err = r.Render(md); err == nil {
				fmt.Fprint(stdout, out)
				return
			}
		}
		log.Warn().Err(err).Msg("cannot render markdown, printing it raw")
	}
	fmt.Fprint(stdout, md)
}

// printJSON prints v as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
