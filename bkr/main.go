// Command bkr analyses a poker bankroll book.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/bankroll/cmd"
	"github.com/etnz/bankroll/logger"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var (
	periods = predict.Set{"all", "day", "week", "month", "quarter", "year", "custom"}
	filters = predict.Set{"all", "live", "online", "platform:", "game:", "location:"}
)

// completion describes the command line for shell completion.
func completion() *complete.Command {
	global := map[string]complete.Predictor{
		"book":       predict.Files("*.jsonl"),
		"base":       predict.Something,
		"online-hph": predict.Something,
		"live-hph":   predict.Something,
		"log-level":  predict.Set{"debug", "info", "warn", "error"},
		"pretty-log": predict.Nothing,
		"raw":        predict.Nothing,
	}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"stats": {Flags: map[string]complete.Predictor{
				"period":      periods,
				"from":        predict.Something,
				"to":          predict.Something,
				"filter":      filters,
				"adjustments": predict.Nothing,
				"json":        predict.Nothing,
				"path":        predict.Something,
			}},
			"platforms": {Flags: map[string]complete.Predictor{
				"json": predict.Nothing,
			}},
			"sessions": {Flags: map[string]complete.Predictor{
				"period": periods,
				"from":   predict.Something,
				"to":     predict.Something,
				"filter": filters,
			}},
			"fmt":  {},
			"help": {},
		},
		Flags: global,
	}
}

func main() {
	// Exits when invoked by the shell for completion.
	completion().Complete(path.Base(os.Args[0]))

	cfg, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(int(subcommands.ExitUsageError))
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, &cfg)

	cfg.SetFlags(flag.CommandLine)
	flag.Parse()

	logger.SetGlobalLogger(logger.New(logger.Config{Level: cfg.LogLevel, Pretty: cfg.Pretty}))

	os.Exit(int(commander.Execute(context.Background())))
}
