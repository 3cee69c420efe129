package networth

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestAggregateAccounts(t *testing.T) {
	rates := testRates(t)

	t.Run("two savings accounts, one zoned one flat", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(50000), Zoned: true, Type: Savings},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(1), Type: Savings},
		}
		zones := map[string][]RateZone{
			"a": {Zone(0, 50000, 3)},
		}

		m := AggregateAccounts(accounts, zones, rates)

		if want := M(150000, "CZK"); !m.TotalBalance.Equal(want) {
			t.Errorf("TotalBalance = %v, want %v", m.TotalBalance, want)
		}
		if want := M(150000, "CZK"); !m.SavingsBalance.Equal(want) {
			t.Errorf("SavingsBalance = %v, want %v", m.SavingsBalance, want)
		}
		if !m.CheckingBalance.IsZero() {
			t.Errorf("CheckingBalance = %v, want 0", m.CheckingBalance)
		}
		if m.AccountCount != 2 {
			t.Errorf("AccountCount = %d, want 2", m.AccountCount)
		}
		// zoned: 50000*3% = 1500, flat: 100000*1% = 1000
		if want := M(2500, "CZK"); !m.ExpectedYearlyInterest.Equal(want) {
			t.Errorf("ExpectedYearlyInterest = %v, want %v", m.ExpectedYearlyInterest, want)
		}
		// (50000*3 + 100000*1) / 150000
		if want := Percent(5.0 / 3.0); !m.AverageInterestRate.Equal(want) {
			t.Errorf("AverageInterestRate = %v, want %v", m.AverageInterestRate, want)
		}
	})

	t.Run("single account weighted average is its own rate", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(2000), InterestRate: decimal.NewFromFloat(1.5), Type: Savings},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if want := Percent(1.5); !m.AverageInterestRate.Equal(want) {
			t.Errorf("AverageInterestRate = %v, want %v", m.AverageInterestRate, want)
		}
		if want := M(30, "CZK"); !m.ExpectedYearlyInterest.Equal(want) {
			t.Errorf("ExpectedYearlyInterest = %v, want %v", m.ExpectedYearlyInterest, want)
		}
	})

	t.Run("excluded account is counted but not summed", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(100), ExcludeFromBalance: true, Type: Savings},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(500), Type: Checking},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if m.AccountCount != 2 {
			t.Errorf("AccountCount = %d, want 2", m.AccountCount)
		}
		if want := M(500, "CZK"); !m.TotalBalance.Equal(want) {
			t.Errorf("TotalBalance = %v, want %v", m.TotalBalance, want)
		}
		if !m.SavingsBalance.IsZero() {
			t.Errorf("SavingsBalance = %v, want 0", m.SavingsBalance)
		}
		if want := M(500, "CZK"); !m.CheckingBalance.Equal(want) {
			t.Errorf("CheckingBalance = %v, want %v", m.CheckingBalance, want)
		}
	})

	t.Run("foreign balances are converted before summing", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "EUR", Balance: decimal.NewFromInt(100), Type: Checking},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(1000), Type: Checking},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if want := M(3500, "CZK"); !m.TotalBalance.Equal(want) {
			t.Errorf("TotalBalance = %v, want %v", m.TotalBalance, want)
		}
	})

	t.Run("foreign interest weights use reporting currency balances", func(t *testing.T) {
		// 100 EUR at 2% and 2500 CZK at 1% weigh equally after conversion.
		accounts := []Account{
			{ID: "a", Currency: "EUR", Balance: decimal.NewFromInt(100), InterestRate: decimal.NewFromInt(2), Type: Savings},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(2500), InterestRate: decimal.NewFromInt(1), Type: Savings},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if want := Percent(1.5); !m.AverageInterestRate.Equal(want) {
			t.Errorf("AverageInterestRate = %v, want %v", m.AverageInterestRate, want)
		}
		// 2500*2% + 2500*1%
		if want := M(75, "CZK"); !m.ExpectedYearlyInterest.Equal(want) {
			t.Errorf("ExpectedYearlyInterest = %v, want %v", m.ExpectedYearlyInterest, want)
		}
	})

	t.Run("zoned account without resolved zones contributes no interest", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(50000), Zoned: true, Type: Savings},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(10000), InterestRate: decimal.NewFromInt(2), Type: Savings},
		}
		m := AggregateAccounts(accounts, map[string][]RateZone{}, rates)
		// the balance still counts
		if want := M(60000, "CZK"); !m.TotalBalance.Equal(want) {
			t.Errorf("TotalBalance = %v, want %v", m.TotalBalance, want)
		}
		// but neither the interest nor the weight does
		if want := M(200, "CZK"); !m.ExpectedYearlyInterest.Equal(want) {
			t.Errorf("ExpectedYearlyInterest = %v, want %v", m.ExpectedYearlyInterest, want)
		}
		if want := Percent(2); !m.AverageInterestRate.Equal(want) {
			t.Errorf("AverageInterestRate = %v, want %v", m.AverageInterestRate, want)
		}
	})

	t.Run("zoned designation wins over a stated flat rate", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(1000), InterestRate: decimal.NewFromInt(9), Zoned: true, Type: Savings},
		}
		zones := map[string][]RateZone{"a": {TopZone(0, 1)}}
		m := AggregateAccounts(accounts, zones, rates)
		if want := M(10, "CZK"); !m.ExpectedYearlyInterest.Equal(want) {
			t.Errorf("ExpectedYearlyInterest = %v, want %v", m.ExpectedYearlyInterest, want)
		}
		if want := Percent(1); !m.AverageInterestRate.Equal(want) {
			t.Errorf("AverageInterestRate = %v, want %v", m.AverageInterestRate, want)
		}
	})

	t.Run("unsupported currency account is skipped but counted", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "GBP", Balance: decimal.NewFromInt(100), InterestRate: decimal.NewFromInt(5), Type: Savings},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(1000), Type: Checking},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if m.AccountCount != 2 {
			t.Errorf("AccountCount = %d, want 2", m.AccountCount)
		}
		if want := M(1000, "CZK"); !m.TotalBalance.Equal(want) {
			t.Errorf("TotalBalance = %v, want %v", m.TotalBalance, want)
		}
		if !m.ExpectedYearlyInterest.IsZero() {
			t.Errorf("ExpectedYearlyInterest = %v, want 0", m.ExpectedYearlyInterest)
		}
	})

	t.Run("no contributing accounts degrade the average to zero", func(t *testing.T) {
		accounts := []Account{
			{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(1000), Type: Checking},
			{ID: "b", Currency: "CZK", Balance: decimal.NewFromInt(2000), Type: Checking},
		}
		m := AggregateAccounts(accounts, nil, rates)
		if m.AverageInterestRate != 0 {
			t.Errorf("AverageInterestRate = %v, want 0", m.AverageInterestRate)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		m := AggregateAccounts(nil, nil, rates)
		if m.AccountCount != 0 || !m.TotalBalance.IsZero() || m.AverageInterestRate != 0 {
			t.Errorf("unexpected metrics for empty input: %+v", m)
		}
	})
}

func TestAggregateAccounts_orderIndependent(t *testing.T) {
	rates := testRates(t)
	accounts := []Account{
		{ID: "a", Currency: "CZK", Balance: decimal.NewFromInt(50000), Zoned: true, Type: Savings},
		{ID: "b", Currency: "EUR", Balance: decimal.NewFromInt(100), InterestRate: decimal.NewFromInt(2), Type: Checking},
		{ID: "c", Currency: "CZK", Balance: decimal.NewFromInt(100000), InterestRate: decimal.NewFromInt(1), Type: Savings},
	}
	zones := map[string][]RateZone{"a": {Zone(0, 50000, 3)}}

	forward := AggregateAccounts(accounts, zones, rates)
	reversed := AggregateAccounts([]Account{accounts[2], accounts[1], accounts[0]}, zones, rates)

	if !forward.TotalBalance.Equal(reversed.TotalBalance) {
		t.Errorf("TotalBalance depends on ordering: %v != %v", forward.TotalBalance, reversed.TotalBalance)
	}
	if !forward.ExpectedYearlyInterest.Equal(reversed.ExpectedYearlyInterest) {
		t.Errorf("ExpectedYearlyInterest depends on ordering: %v != %v", forward.ExpectedYearlyInterest, reversed.ExpectedYearlyInterest)
	}
	if !forward.AverageInterestRate.Equal(reversed.AverageInterestRate) {
		t.Errorf("AverageInterestRate depends on ordering: %v != %v", forward.AverageInterestRate, reversed.AverageInterestRate)
	}
}
