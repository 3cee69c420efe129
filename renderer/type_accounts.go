package renderer

import (
	"github.com/krizek/networth"
)

// AccountRow is one account of the accounts report, in the account's own
// currency.
type AccountRow struct {
	ID       string
	Type     string
	Balance  string
	Rate     string // flat rate, or effective rate for zoned accounts
	Interest string
	Note     string
}

// AccountsReport is the view model of the accounts report.
type AccountsReport struct {
	Rows []AccountRow

	TotalBalance   string
	Savings        string
	Checking       string
	AverageRate    string
	YearlyInterest string
}

// NewAccountsReport builds the per-account rows and the aggregate footer
// from a snapshot.
func NewAccountsReport(snap *networth.Snapshot) *AccountsReport {
	m := snap.AccountMetrics()
	report := &AccountsReport{
		TotalBalance:   m.TotalBalance.String(),
		Savings:        m.SavingsBalance.String(),
		Checking:       m.CheckingBalance.String(),
		AverageRate:    m.AverageInterestRate.String(),
		YearlyInterest: m.ExpectedYearlyInterest.String(),
	}

	for _, a := range snap.Accounts {
		row := AccountRow{
			ID:      a.ID,
			Type:    string(a.Type),
			Balance: a.Money().String(),
		}
		switch {
		case a.ExcludeFromBalance:
			row.Note = "excluded"
		case a.Zoned:
			zones := snap.Zones[a.ID]
			if len(zones) == 0 {
				row.Note = "zones pending"
				break
			}
			interest := networth.ZonedInterest(a.Money(), zones)
			row.Interest = interest.String()
			row.Rate = networth.EffectiveRate(interest, a.Money()).String()
			row.Note = "zoned"
		case a.InterestRate.IsPositive():
			rate := networth.Percent(a.InterestRate.InexactFloat64())
			row.Rate = rate.String()
			interest := a.Money().Mul(networth.Q(a.InterestRate.Div(hundred)))
			row.Interest = interest.String()
		}
		report.Rows = append(report.Rows, row)
	}
	return report
}

// AccountsMarkdown renders the accounts report to a markdown string.
func AccountsMarkdown(snap *networth.Snapshot) string {
	return renderTemplate("accounts", "accounts.md", nil, NewAccountsReport(snap))
}
