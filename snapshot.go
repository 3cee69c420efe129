package networth

// Snapshot is the read-only input of one computation cycle: the account,
// holding and loan records fetched from the data source, the zone side-map
// (keyed by account ID, possibly still missing entries for zoned accounts
// whose lookups have not resolved), and the rate table.
//
// The engine never mutates a snapshot; to refresh the figures a caller
// simply builds a new snapshot and aggregates again.
type Snapshot struct {
	Accounts []Account
	Holdings []Holding
	Loans    []Loan
	Zones    map[string][]RateZone
	Rates    *Rates
}

// Summary provides a comprehensive, at-a-glance overview of the portfolio's
// state: the three aggregate records plus the derived net worth.
type Summary struct {
	ReportingCurrency string
	Accounts          AccountMetrics
	Investments       InvestmentMetrics
	Loans             LoanMetrics
	NetWorth          Money
}

// AccountMetrics aggregates the snapshot's bank accounts.
func (s *Snapshot) AccountMetrics() AccountMetrics {
	return AggregateAccounts(s.Accounts, s.Zones, s.Rates)
}

// InvestmentMetrics aggregates the snapshot's holdings.
func (s *Snapshot) InvestmentMetrics() InvestmentMetrics {
	return AggregateInvestments(s.Holdings)
}

// LoanMetrics aggregates the snapshot's loans.
func (s *Snapshot) LoanMetrics() LoanMetrics {
	return AggregateLoans(s.Loans, s.Rates)
}

// Summary computes all three aggregates and the net worth:
// account balances plus holding value minus loan principal. Holdings carry
// no currency of their own and are taken as already denominated in the
// reporting currency.
func (s *Snapshot) Summary() *Summary {
	accounts := s.AccountMetrics()
	investments := s.InvestmentMetrics()
	loans := s.LoanMetrics()

	reporting := s.Rates.Reporting()
	net := accounts.TotalBalance.
		Add(M(investments.TotalValue, reporting)).
		Sub(loans.TotalPrincipal)

	return &Summary{
		ReportingCurrency: reporting,
		Accounts:          accounts,
		Investments:       investments,
		Loans:             loans,
		NetWorth:          net,
	}
}
