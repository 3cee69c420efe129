package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/krizek/networth/renderer"
)

type loansCmd struct{}

func (*loansCmd) Name() string     { return "loans" }
func (*loansCmd) Synopsis() string { return "display loans and liabilities" }
func (*loansCmd) Usage() string {
	return `nwt loans

  Displays every loan with its principal, monthly payment and rate,
  and the aggregate loan metrics.
`
}

func (c *loansCmd) SetFlags(f *flag.FlagSet) {}

func (c *loansCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LoansMarkdown(snap.Loans, snap.Rates))
	return subcommands.ExitSuccess
}
