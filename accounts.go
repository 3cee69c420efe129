package networth

import (
	"log"

	"github.com/shopspring/decimal"
)

// AccountType partitions bank accounts for the balance breakdown.
type AccountType string

const (
	Savings  AccountType = "savings"
	Checking AccountType = "checking"
)

// Account is a read-only snapshot of a bank account as supplied by the data
// source. When Zoned is true the effective interest is always derived from
// the account's rate zones, never from InterestRate.
type Account struct {
	ID                 string          `json:"id"`
	Currency           string          `json:"currency"`
	Balance            decimal.Decimal `json:"balance"`
	InterestRate       decimal.Decimal `json:"interestRate,omitempty"` // annual percent, flat accounts only
	Zoned              bool            `json:"zoned,omitempty"`
	ExcludeFromBalance bool            `json:"excludeFromBalance,omitempty"`
	Type               AccountType     `json:"type"`
}

// Money returns the account balance in the account's own currency.
func (a Account) Money() Money { return M(a.Balance, a.Currency) }

// AccountMetrics are the portfolio-level aggregates over bank accounts.
// All monetary figures are in the reporting currency.
type AccountMetrics struct {
	TotalBalance           Money
	SavingsBalance         Money
	CheckingBalance        Money
	AccountCount           int
	AverageInterestRate    Percent
	ExpectedYearlyInterest Money
}

// AggregateAccounts computes the account aggregates over a snapshot of
// accounts. Zone data arrives through a side map keyed by account ID; a
// zoned account whose zones have not resolved yet simply contributes no
// interest and no weight this cycle.
//
// AccountCount reflects the raw input length, while the balance sums cover
// only accounts not excluded from the balance. This asymmetry is
// intentional: the dashboard counts every account it knows about but sums
// only the ones the user opted in.
//
// An account in a currency absent from the rate table is logged and
// skipped; one bad record must not blank the whole summary.
func AggregateAccounts(accounts []Account, zones map[string][]RateZone, rates *Rates) AccountMetrics {
	reporting := rates.Reporting()
	m := AccountMetrics{
		TotalBalance:           M(0, reporting),
		SavingsBalance:         M(0, reporting),
		CheckingBalance:        M(0, reporting),
		ExpectedYearlyInterest: M(0, reporting),
		AccountCount:           len(accounts),
	}

	weightSum := decimal.Zero     // Σ balance_i, reporting currency
	weightedRates := decimal.Zero // Σ balance_i * rate_i

	for _, a := range accounts {
		if a.ExcludeFromBalance {
			continue
		}
		balance, err := rates.Convert(a.Money())
		if err != nil {
			log.Printf("skipping account %q: %v", a.ID, err)
			continue
		}

		m.TotalBalance = m.TotalBalance.Add(balance)
		switch a.Type {
		case Savings:
			m.SavingsBalance = m.SavingsBalance.Add(balance)
		case Checking:
			m.CheckingBalance = m.CheckingBalance.Add(balance)
		}

		// An account earns interest if it is zoned or has a positive flat
		// rate; everything else stays out of the weighted average too.
		var rate decimal.Decimal
		var yearly Money
		switch {
		case a.Zoned:
			zs := zones[a.ID]
			if len(zs) == 0 {
				// zones not resolved yet, recomputed next cycle
				continue
			}
			interest := ZonedInterest(a.Money(), zs)
			yearly, err = rates.Convert(interest)
			if err != nil {
				log.Printf("skipping interest of account %q: %v", a.ID, err)
				continue
			}
			rate = effectiveRateDecimal(interest, a.Money())
		case a.InterestRate.IsPositive():
			rate = a.InterestRate
			yearly = M(balance.value.Mul(rate).Div(oneHundred), reporting)
		default:
			continue
		}

		m.ExpectedYearlyInterest = m.ExpectedYearlyInterest.Add(yearly)
		weightSum = weightSum.Add(balance.value)
		weightedRates = weightedRates.Add(balance.value.Mul(rate))
	}

	// zero total weight degrades to 0, never to NaN
	if weightSum.IsPositive() {
		m.AverageInterestRate = Percent(weightedRates.Div(weightSum).InexactFloat64())
	}
	return m
}

// effectiveRateDecimal is EffectiveRate before the float conversion, kept
// in decimal for weighting.
func effectiveRateDecimal(interest, balance Money) decimal.Decimal {
	if !balance.IsPositive() {
		return decimal.Zero
	}
	return interest.value.Div(balance.value).Mul(oneHundred)
}
