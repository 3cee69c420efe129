package networth

import (
	"log"

	"github.com/shopspring/decimal"
)

// Loan is a read-only snapshot of a liability.
type Loan struct {
	ID             string          `json:"id"`
	Currency       string          `json:"currency"`
	Principal      decimal.Decimal `json:"principal"`
	MonthlyPayment decimal.Decimal `json:"monthlyPayment"`
	InterestRate   decimal.Decimal `json:"interestRate"` // annual percent
}

// LoanMetrics are the aggregates over loans, in the reporting currency.
type LoanMetrics struct {
	TotalPrincipal      Money
	TotalMonthlyPayment Money
	AverageInterestRate Percent
	Count               int
}

// AggregateLoans sums outstanding principal and monthly payments in the
// reporting currency and derives the principal-weighted mean rate. A loan
// in an unsupported currency is logged and skipped; zero total principal
// degrades the average rate to 0.
func AggregateLoans(loans []Loan, rates *Rates) LoanMetrics {
	reporting := rates.Reporting()
	m := LoanMetrics{
		TotalPrincipal:      M(0, reporting),
		TotalMonthlyPayment: M(0, reporting),
		Count:               len(loans),
	}

	weightSum := decimal.Zero
	weightedRates := decimal.Zero

	for _, l := range loans {
		principal, err := rates.Convert(M(l.Principal, l.Currency))
		if err != nil {
			log.Printf("skipping loan %q: %v", l.ID, err)
			continue
		}
		payment, err := rates.Convert(M(l.MonthlyPayment, l.Currency))
		if err != nil {
			log.Printf("skipping loan %q: %v", l.ID, err)
			continue
		}

		m.TotalPrincipal = m.TotalPrincipal.Add(principal)
		m.TotalMonthlyPayment = m.TotalMonthlyPayment.Add(payment)
		weightSum = weightSum.Add(principal.value)
		weightedRates = weightedRates.Add(principal.value.Mul(l.InterestRate))
	}

	if weightSum.IsPositive() {
		m.AverageInterestRate = Percent(weightedRates.Div(weightSum).InexactFloat64())
	}
	return m
}
