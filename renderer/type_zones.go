package renderer

import (
	"github.com/krizek/networth"
)

// ZoneRow is one bracket of the zone breakdown report.
type ZoneRow struct {
	Range    string
	Rate     string
	Portion  string
	Interest string
}

// ZonesReport is the view model of a single account's interest breakdown.
type ZonesReport struct {
	Account       string
	Balance       string
	Rows          []ZoneRow
	Total         string
	EffectiveRate string
}

// NewZonesReport details how each rate zone contributes to an account's
// yearly interest.
func NewZonesReport(account networth.Account, zones []networth.RateZone) *ZonesReport {
	balance := account.Money()
	report := &ZonesReport{
		Account: account.ID,
		Balance: balance.String(),
	}

	for _, p := range networth.ZoneBreakdown(balance, zones) {
		rng := "[" + p.Zone.Low.String() + ", "
		if p.Zone.Unbounded {
			rng += "∞)"
		} else {
			rng += p.Zone.High.String() + ")"
		}
		report.Rows = append(report.Rows, ZoneRow{
			Range:    rng,
			Rate:     networth.Percent(p.Zone.Rate.InexactFloat64()).String(),
			Portion:  p.Portion.String(),
			Interest: p.Interest.String(),
		})
	}

	total := networth.ZonedInterest(balance, zones)
	report.Total = total.String()
	report.EffectiveRate = networth.EffectiveRate(total, balance).String()
	return report
}

// ZonesMarkdown renders a single account's interest breakdown to markdown.
func ZonesMarkdown(account networth.Account, zones []networth.RateZone) string {
	return renderTemplate("zones", "zones.md", nil, NewZonesReport(account, zones))
}
