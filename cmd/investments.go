package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/krizek/networth/renderer"
)

type investmentsCmd struct{}

func (*investmentsCmd) Name() string     { return "investments" }
func (*investmentsCmd) Synopsis() string { return "display investment holdings" }
func (*investmentsCmd) Usage() string {
	return `nwt investments

  Displays every holding with its cost, market value, gain and
  projected dividends.
`
}

func (c *investmentsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investmentsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.InvestmentsMarkdown(snap.Holdings))
	return subcommands.ExitSuccess
}
