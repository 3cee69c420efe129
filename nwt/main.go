package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/krizek/networth/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: this returns immediately unless the shell is
	// asking for completions.
	completion().Complete("nwt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary":     {},
			"accounts":    {},
			"investments": {},
			"loans":       {},
			"zones": {Flags: map[string]complete.Predictor{
				"account": predict.Nothing,
			}},
			"rates": {Flags: map[string]complete.Predictor{
				"refresh":   predict.Nothing,
				"reporting": predict.Set{"CZK", "EUR", "USD", "GBP", "CHF", "PLN"},
			}},
			"fmt": {},
			"topic": {
				Args: predict.Set{"readme", "zones", "currencies", "files", "*"},
			},
			"assist": {},
		},
		Flags: map[string]complete.Predictor{
			"data": predict.Dirs("*"),
		},
	}
}
