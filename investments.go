package networth

import "github.com/shopspring/decimal"

// Holding is a read-only snapshot of an investment position. Prices are
// assumed to share one currency; the engine applies no conversion here.
//
// DividendPerShare is the projected annual dividend as a per-share cash
// amount, not a percentage yield. The JSON key keeps the historical name.
type Holding struct {
	ID               string          `json:"id"`
	Quantity         decimal.Decimal `json:"quantity"`
	AveragePrice     decimal.Decimal `json:"averagePrice"`
	CurrentPrice     decimal.Decimal `json:"currentPrice"`
	DividendPerShare decimal.Decimal `json:"dividendYield,omitempty"`
}

// Value returns the current market value of the position.
func (h Holding) Value() decimal.Decimal { return h.Quantity.Mul(h.CurrentPrice) }

// Cost returns the acquisition cost of the position.
func (h Holding) Cost() decimal.Decimal { return h.Quantity.Mul(h.AveragePrice) }

// InvestmentMetrics are the aggregates over investment holdings. Figures
// are plain decimals in the holdings' shared currency.
type InvestmentMetrics struct {
	TotalValue       decimal.Decimal
	TotalCost        decimal.Decimal
	TotalGain        decimal.Decimal
	TotalGainPercent Percent
	TotalDividends   decimal.Decimal
}

// AggregateInvestments computes gain/loss and projected dividend income
// over a snapshot of holdings. A zero total cost degrades the gain percent
// to 0 rather than an indeterminate value.
func AggregateInvestments(holdings []Holding) InvestmentMetrics {
	m := InvestmentMetrics{
		TotalValue:     decimal.Zero,
		TotalCost:      decimal.Zero,
		TotalGain:      decimal.Zero,
		TotalDividends: decimal.Zero,
	}
	for _, h := range holdings {
		m.TotalValue = m.TotalValue.Add(h.Value())
		m.TotalCost = m.TotalCost.Add(h.Cost())
		m.TotalDividends = m.TotalDividends.Add(h.Quantity.Mul(h.DividendPerShare))
	}
	m.TotalGain = m.TotalValue.Sub(m.TotalCost)
	if m.TotalCost.IsPositive() {
		m.TotalGainPercent = Percent(m.TotalGain.Div(m.TotalCost).Mul(oneHundred).InexactFloat64())
	}
	return m
}
