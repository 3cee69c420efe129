package networth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func TestWriteAndLoadSnapshot(t *testing.T) {
	dir := t.TempDir()
	rates := testRates(t)

	snap := &Snapshot{
		Accounts: []Account{
			{ID: "main", Currency: "CZK", Balance: decimal.NewFromInt(50000), Zoned: true, Type: Savings},
		},
		Holdings: []Holding{holding("etf", 10, 2000, 2500, 12)},
		Loans: []Loan{
			{ID: "car", Currency: "CZK", Principal: decimal.NewFromInt(50000), MonthlyPayment: decimal.NewFromInt(2000), InterestRate: decimal.NewFromInt(6)},
		},
		Zones: map[string][]RateZone{"main": {Zone(0, 50000, 3), TopZone(50000, 1)}},
		Rates: rates,
	}

	if err := WriteSnapshot(dir, snap); err != nil {
		t.Fatalf("WriteSnapshot() error = %v", err)
	}

	loaded, err := LoadSnapshot(dir)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}

	if len(loaded.Accounts) != 1 || loaded.Accounts[0].ID != "main" {
		t.Errorf("Accounts = %+v, want the written account", loaded.Accounts)
	}
	if len(loaded.Holdings) != 1 || len(loaded.Loans) != 1 {
		t.Errorf("Holdings/Loans not round-tripped: %+v %+v", loaded.Holdings, loaded.Loans)
	}
	if len(loaded.Zones["main"]) != 2 {
		t.Errorf("Zones = %+v, want 2 zones for %q", loaded.Zones, "main")
	}
	if loaded.Rates.Reporting() != "CZK" {
		t.Errorf("Rates.Reporting() = %q, want CZK", loaded.Rates.Reporting())
	}

	// the loaded snapshot aggregates like the original
	want := snap.Summary()
	got := loaded.Summary()
	if !got.NetWorth.Equal(want.NetWorth) {
		t.Errorf("NetWorth = %v, want %v", got.NetWorth, want.NetWorth)
	}
}

func TestLoadSnapshot_missingCollectionsAreEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := WriteRates(dir, testRates(t)); err != nil {
		t.Fatalf("WriteRates() error = %v", err)
	}

	snap, err := LoadSnapshot(dir)
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if len(snap.Accounts) != 0 || len(snap.Holdings) != 0 || len(snap.Loans) != 0 || len(snap.Zones) != 0 {
		t.Errorf("expected empty collections, got %+v", snap)
	}

	// an empty snapshot still yields a defined summary
	s := snap.Summary()
	if !s.NetWorth.IsZero() {
		t.Errorf("NetWorth = %v, want 0", s.NetWorth)
	}
}

func TestLoadSnapshot_missingRates(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadSnapshot(dir); err == nil {
		t.Fatal("LoadSnapshot() expected an error without a rate table")
	}
}

func TestLoadSnapshot_badFile(t *testing.T) {
	dir := t.TempDir()
	if err := WriteRates(dir, testRates(t)); err != nil {
		t.Fatalf("WriteRates() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, AccountsFile), []byte("{broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSnapshot(dir); err == nil {
		t.Fatal("LoadSnapshot() expected an error for a corrupt accounts file")
	}
}
