package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/krizek/networth/renderer"
)

// zonesCmd holds the flags for the 'zones' subcommand.
type zonesCmd struct {
	account string
}

func (*zonesCmd) Name() string     { return "zones" }
func (*zonesCmd) Synopsis() string { return "display the interest breakdown of a zoned account" }
func (*zonesCmd) Usage() string {
	return `nwt zones -account <id>

  Displays how each rate zone of a zoned savings account contributes
  to its yearly interest. Without -account, lists every zoned account.
`
}

func (c *zonesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account to break down. Lists zoned accounts when omitted.")
}

func (c *zonesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.account == "" {
		for _, a := range snap.Accounts {
			if a.Zoned {
				fmt.Println(a.ID)
			}
		}
		return subcommands.ExitSuccess
	}

	for _, a := range snap.Accounts {
		if a.ID == c.account {
			printMarkdown(renderer.ZonesMarkdown(a, snap.Zones[a.ID]))
			return subcommands.ExitSuccess
		}
	}

	fmt.Fprintf(os.Stderr, "Error: no account %q\n", c.account)
	return subcommands.ExitUsageError
}
