package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSnapshot_Summary(t *testing.T) {
	rates := testRates(t)
	snap := &Snapshot{
		Accounts: []Account{
			{ID: "main", Currency: "CZK", Balance: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(1), Type: Savings},
			{ID: "daily", Currency: "CZK", Balance: decimal.NewFromInt(20000), Type: Checking},
		},
		Holdings: []Holding{
			holding("etf", 10, 2000, 2500, 0),
		},
		Loans: []Loan{
			{ID: "car", Currency: "CZK", Principal: decimal.NewFromInt(50000), MonthlyPayment: decimal.NewFromInt(2000), InterestRate: decimal.NewFromInt(6)},
		},
		Rates: rates,
	}

	s := snap.Summary()

	if s.ReportingCurrency != "CZK" {
		t.Errorf("ReportingCurrency = %q, want %q", s.ReportingCurrency, "CZK")
	}
	if want := M(120000, "CZK"); !s.Accounts.TotalBalance.Equal(want) {
		t.Errorf("Accounts.TotalBalance = %v, want %v", s.Accounts.TotalBalance, want)
	}
	if want := decimal.NewFromInt(25000); !s.Investments.TotalValue.Equal(want) {
		t.Errorf("Investments.TotalValue = %v, want %v", s.Investments.TotalValue, want)
	}
	if want := M(50000, "CZK"); !s.Loans.TotalPrincipal.Equal(want) {
		t.Errorf("Loans.TotalPrincipal = %v, want %v", s.Loans.TotalPrincipal, want)
	}
	// 120000 + 25000 - 50000
	if want := M(95000, "CZK"); !s.NetWorth.Equal(want) {
		t.Errorf("NetWorth = %v, want %v", s.NetWorth, want)
	}
}

func TestSnapshot_Summary_isReproducible(t *testing.T) {
	rates := testRates(t)
	snap := &Snapshot{
		Accounts: []Account{
			{ID: "a", Currency: "EUR", Balance: decimal.NewFromInt(100), Zoned: true, Type: Savings},
		},
		Zones: map[string][]RateZone{"a": {Zone(0, 50, 1), TopZone(50, 2)}},
		Rates: rates,
	}

	first := snap.Summary()
	second := snap.Summary()

	if !first.NetWorth.Equal(second.NetWorth) {
		t.Errorf("NetWorth differs between identical runs: %v != %v", first.NetWorth, second.NetWorth)
	}
	if !first.Accounts.ExpectedYearlyInterest.Equal(second.Accounts.ExpectedYearlyInterest) {
		t.Errorf("ExpectedYearlyInterest differs between identical runs: %v != %v",
			first.Accounts.ExpectedYearlyInterest, second.Accounts.ExpectedYearlyInterest)
	}
}
