package networth

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of a snapshot directory. Each collection lives in its own
// file so the data source can refresh them independently.
const (
	AccountsFile = "accounts.jsonl"
	HoldingsFile = "holdings.jsonl"
	LoansFile    = "loans.jsonl"
	ZonesFile    = "zones.jsonl"
	RatesFile    = "rates.json"
)

// LoadSnapshot loads a snapshot from a data directory. Missing collection
// files mean empty collections: the zones file in particular may not have
// been written yet when the per-account lookups are still in flight, and
// the snapshot must still aggregate (zoned accounts then contribute no
// interest this cycle). A missing rate table is an error, because without
// a reporting currency no figure can be produced.
func LoadSnapshot(dir string) (*Snapshot, error) {
	rates, err := loadFile(filepath.Join(dir, RatesFile), DecodeRates)
	if err != nil {
		return nil, err
	}
	if rates == nil {
		return nil, fmt.Errorf("no rate table found in %q", dir)
	}

	accounts, err := loadFile(filepath.Join(dir, AccountsFile), DecodeAccounts)
	if err != nil {
		return nil, err
	}
	holdings, err := loadFile(filepath.Join(dir, HoldingsFile), DecodeHoldings)
	if err != nil {
		return nil, err
	}
	loans, err := loadFile(filepath.Join(dir, LoansFile), DecodeLoans)
	if err != nil {
		return nil, err
	}
	zones, err := loadFile(filepath.Join(dir, ZonesFile), DecodeZones)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Accounts: accounts,
		Holdings: holdings,
		Loans:    loans,
		Zones:    zones,
		Rates:    rates,
	}, nil
}

// loadFile opens and decodes a single snapshot file. A file that does not
// exist yields the zero value of T without error.
func loadFile[T any](path string, decode func(r io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return zero, nil
	}
	if err != nil {
		return zero, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	v, err := decode(f)
	if err != nil {
		return zero, fmt.Errorf("could not decode %q: %w", path, err)
	}
	return v, nil
}

// WriteSnapshot persists all collections of a snapshot in canonical form
// under the data directory, creating it if needed.
func WriteSnapshot(dir string, s *Snapshot) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	if err := writeFile(filepath.Join(dir, AccountsFile), s.Accounts, EncodeAccounts); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, HoldingsFile), s.Holdings, EncodeHoldings); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, LoansFile), s.Loans, EncodeLoans); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(dir, ZonesFile), s.Zones, EncodeZones); err != nil {
		return err
	}
	return writeFile(filepath.Join(dir, RatesFile), s.Rates, EncodeRates)
}

// WriteRates persists only the rate table, used by the rates refresher.
func WriteRates(dir string, rates *Rates) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create data directory %q: %w", dir, err)
	}
	return writeFile(filepath.Join(dir, RatesFile), rates, EncodeRates)
}

func writeFile[T any](path string, v T, encode func(w io.Writer, v T) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error opening %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := encode(f, v); err != nil {
		return fmt.Errorf("error writing %q: %w", path, err)
	}
	return nil
}
