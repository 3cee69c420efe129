package renderer

import (
	"github.com/krizek/networth"
)

// HoldingRow is one position of the investments report.
type HoldingRow struct {
	ID          string
	Quantity    string
	Cost        string
	Value       string
	Gain        string
	GainPercent string
	Dividends   string
}

// InvestmentsReport is the view model of the investments report.
type InvestmentsReport struct {
	Rows []HoldingRow

	TotalValue  string
	TotalCost   string
	Gain        string
	GainPercent string
	Dividends   string
}

// NewInvestmentsReport builds the per-holding rows and the aggregate footer.
func NewInvestmentsReport(holdings []networth.Holding) *InvestmentsReport {
	m := networth.AggregateInvestments(holdings)
	report := &InvestmentsReport{
		TotalValue:  m.TotalValue.String(),
		TotalCost:   m.TotalCost.String(),
		Gain:        m.TotalGain.String(),
		GainPercent: m.TotalGainPercent.SignedString(),
		Dividends:   m.TotalDividends.String(),
	}

	for _, h := range holdings {
		gain := h.Value().Sub(h.Cost())
		var gainPercent networth.Percent
		if h.Cost().IsPositive() {
			gainPercent = networth.Percent(gain.Div(h.Cost()).Mul(hundred).InexactFloat64())
		}
		report.Rows = append(report.Rows, HoldingRow{
			ID:          h.ID,
			Quantity:    h.Quantity.String(),
			Cost:        h.Cost().String(),
			Value:       h.Value().String(),
			Gain:        gain.String(),
			GainPercent: gainPercent.SignedString(),
			Dividends:   h.Quantity.Mul(h.DividendPerShare).String(),
		})
	}
	return report
}

// InvestmentsMarkdown renders the investments report to a markdown string.
func InvestmentsMarkdown(holdings []networth.Holding) string {
	return renderTemplate("investments", "investments.md", nil, NewInvestmentsReport(holdings))
}
