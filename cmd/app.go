// Package cmd implements the CLI application to track a net worth.
package cmd

import (
	"flag"
	"fmt"

	"github.com/google/subcommands"
	"github.com/krizek/networth"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&summaryCmd{}, "reports")
	c.Register(&accountsCmd{}, "reports")
	c.Register(&investmentsCmd{}, "reports")
	c.Register(&loansCmd{}, "reports")
	c.Register(&zonesCmd{}, "reports")

	c.Register(&ratesCmd{}, "data")
	c.Register(&fmtCmd{}, "data")

	c.Register(&topicCmd{}, "documentation")
	c.Register(&assistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDir = flag.String("data", ".", "Directory holding the data files (accounts, holdings, loans, zones, rates)")

// DataDir returns the directory holding the data files.
func DataDir() string { return *dataDir }

// LoadSnapshot loads all data files from the app data directory.
func LoadSnapshot() (*networth.Snapshot, error) {
	snap, err := networth.LoadSnapshot(*dataDir)
	if err != nil {
		return nil, fmt.Errorf("could not load data from %q: %w", *dataDir, err)
	}
	return snap, nil
}
