package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/krizek/networth"
)

// ratesCmd holds the flags for the 'rates' subcommand.
type ratesCmd struct {
	refresh   bool
	reporting string
}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display or refresh the exchange rates" }
func (*ratesCmd) Usage() string {
	return `nwt rates [-refresh] [-reporting <currency>]

  Displays the configured exchange rates. With -refresh, fetches the
  latest rates for every currency present in the data files and
  rewrites rates.json.
`
}

func (c *ratesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Fetch the latest exchange rates and rewrite rates.json.")
	f.StringVar(&c.reporting, "reporting", "", "Reporting currency. Defaults to the one in rates.json.")
}

func (c *ratesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snap, err := LoadSnapshot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rates := snap.Rates
	if c.reporting == "" {
		c.reporting = rates.Reporting()
	}

	if c.refresh {
		rates, err = networth.FetchRates(c.reporting, c.currencies(snap))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error fetching rates: %v\n", err)
			return subcommands.ExitFailure
		}
		if err := networth.WriteRates(DataDir(), rates); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing rates: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("reporting: %s\n", rates.Reporting())
	for _, code := range rates.Currencies() {
		factor, _ := rates.Factor(code)
		fmt.Printf("%s: %s\n", code, factor)
	}
	return subcommands.ExitSuccess
}

// currencies lists every foreign currency present in the data files.
func (c *ratesCmd) currencies(snap *networth.Snapshot) []string {
	var codes []string
	add := func(code string) {
		if code != "" && code != c.reporting && !slices.Contains(codes, code) {
			codes = append(codes, code)
		}
	}
	for _, a := range snap.Accounts {
		add(a.Currency)
	}
	for _, l := range snap.Loans {
		add(l.Currency)
	}
	slices.Sort(codes)
	return codes
}
