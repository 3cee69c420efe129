package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/krizek/networth/renderer"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display accounts and their interest" }
func (*accountsCmd) Usage() string {
	return `nwt accounts

  Displays every bank account with its balance, rate and expected
  yearly interest, and the aggregate account metrics.
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.AccountsMarkdown(snap))
	return subcommands.ExitSuccess
}
