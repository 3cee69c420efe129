package renderer

import (
	"github.com/krizek/networth"
)

// LoanRow is one liability of the loans report, in the loan's own currency.
type LoanRow struct {
	ID        string
	Principal string
	Payment   string
	Rate      string
}

// LoansReport is the view model of the loans report.
type LoansReport struct {
	Rows []LoanRow

	TotalPrincipal string
	TotalPayment   string
	AverageRate    string
	Count          int
}

// NewLoansReport builds the per-loan rows and the aggregate footer.
func NewLoansReport(loans []networth.Loan, rates *networth.Rates) *LoansReport {
	m := networth.AggregateLoans(loans, rates)
	report := &LoansReport{
		TotalPrincipal: m.TotalPrincipal.String(),
		TotalPayment:   m.TotalMonthlyPayment.String(),
		AverageRate:    m.AverageInterestRate.String(),
		Count:          m.Count,
	}
	for _, l := range loans {
		report.Rows = append(report.Rows, LoanRow{
			ID:        l.ID,
			Principal: networth.M(l.Principal, l.Currency).String(),
			Payment:   networth.M(l.MonthlyPayment, l.Currency).String(),
			Rate:      networth.Percent(l.InterestRate.InexactFloat64()).String(),
		})
	}
	return report
}

// LoansMarkdown renders the loans report to a markdown string.
func LoansMarkdown(loans []networth.Loan, rates *networth.Rates) string {
	return renderTemplate("loans", "loans.md", nil, NewLoansReport(loans, rates))
}
