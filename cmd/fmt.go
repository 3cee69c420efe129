package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/krizek/networth"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the data files into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `nwt fmt

  Validates and formats the data files. This command reads every
  record, validates it, sorts records by id, and writes the files back
  in a canonical JSONL format.
`
}

func (c *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := networth.WriteSnapshot(DataDir(), snap); err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting data files: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Fprintf(os.Stderr, "Formatted data files in %q.\n", DataDir())
	return subcommands.ExitSuccess
}
