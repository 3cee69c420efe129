package renderer

import (
	"fmt"

	"github.com/krizek/networth"
)

// Summary is the view model of the net worth summary report. All figures
// are preformatted strings so the template stays trivial.
type Summary struct {
	ReportingCurrency string
	NetWorth          string

	TotalBalance   string
	Savings        string
	Checking       string
	AccountCount   int
	AverageRate    string
	YearlyInterest string

	InvestmentValue string
	InvestmentCost  string
	Gain            string
	GainPercent     string
	Dividends       string

	LoanPrincipal string
	LoanPayment   string
	LoanRate      string
	LoanCount     int
}

// NewSummary builds the summary view from computed metrics.
func NewSummary(s *networth.Summary) *Summary {
	inReporting := func(d fmt.Stringer) string {
		return fmt.Sprintf("%s %s", d, s.ReportingCurrency)
	}
	return &Summary{
		ReportingCurrency: s.ReportingCurrency,
		NetWorth:          s.NetWorth.String(),

		TotalBalance:   s.Accounts.TotalBalance.String(),
		Savings:        s.Accounts.SavingsBalance.String(),
		Checking:       s.Accounts.CheckingBalance.String(),
		AccountCount:   s.Accounts.AccountCount,
		AverageRate:    s.Accounts.AverageInterestRate.String(),
		YearlyInterest: s.Accounts.ExpectedYearlyInterest.String(),

		InvestmentValue: inReporting(s.Investments.TotalValue),
		InvestmentCost:  inReporting(s.Investments.TotalCost),
		Gain:            inReporting(s.Investments.TotalGain),
		GainPercent:     s.Investments.TotalGainPercent.SignedString(),
		Dividends:       inReporting(s.Investments.TotalDividends),

		LoanPrincipal: s.Loans.TotalPrincipal.String(),
		LoanPayment:   s.Loans.TotalMonthlyPayment.String(),
		LoanRate:      s.Loans.AverageInterestRate.String(),
		LoanCount:     s.Loans.Count,
	}
}

// SummaryMarkdown renders the net worth summary to a markdown string.
func SummaryMarkdown(s *networth.Summary) string {
	return renderTemplate("summary", "summary.md", nil, NewSummary(s))
}
