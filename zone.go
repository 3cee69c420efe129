package networth

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// RateZone is a balance bracket carrying its own annual interest rate.
// The lower bound is inclusive, the upper bound is exclusive: a balance
// sitting exactly on a bound belongs to the next zone up.
type RateZone struct {
	Low       decimal.Decimal `json:"low"`
	High      decimal.Decimal `json:"high,omitempty"` // ignored when Unbounded
	Unbounded bool            `json:"unbounded,omitempty"`
	Rate      decimal.Decimal `json:"rate"` // annual rate in percent
}

// Zone creates a bounded rate zone [low, high) at the given annual percent rate.
func Zone(low, high, ratePercent float64) RateZone {
	return RateZone{
		Low:  decimal.NewFromFloat(low),
		High: decimal.NewFromFloat(high),
		Rate: decimal.NewFromFloat(ratePercent),
	}
}

// TopZone creates an unbounded rate zone [low, +inf) at the given annual percent rate.
func TopZone(low, ratePercent float64) RateZone {
	return RateZone{
		Low:       decimal.NewFromFloat(low),
		Unbounded: true,
		Rate:      decimal.NewFromFloat(ratePercent),
	}
}

// portion returns the part of balance that falls within the zone.
func (z RateZone) portion(balance decimal.Decimal) decimal.Decimal {
	upper := balance
	if !z.Unbounded && z.High.LessThan(upper) {
		upper = z.High
	}
	p := upper.Sub(z.Low)
	if p.IsNegative() {
		return decimal.Zero
	}
	return p
}

// interest returns the yearly interest earned by the zone's portion of balance.
func (z RateZone) interest(balance decimal.Decimal) decimal.Decimal {
	return z.portion(balance).Mul(z.Rate).Div(oneHundred)
}

// sortZones returns a copy of zones sorted by ascending lower bound.
// Callers are expected to supply them sorted already, but the calculator
// must not depend on it.
func sortZones(zones []RateZone) []RateZone {
	sorted := slices.Clone(zones)
	slices.SortStableFunc(sorted, func(a, b RateZone) int {
		return a.Low.Cmp(b.Low)
	})
	return sorted
}

// ZonedInterest computes the yearly interest earned by a balance under
// progressive-bracket semantics: each zone earns its rate on the portion of
// the balance that falls inside it, and the results are summed. The result
// is in the balance's own currency.
//
// A balance of zero or less earns nothing. Malformed zone sets (gaps,
// overlaps, a balance above the last bounded zone) are not an error: the sum
// runs over whatever zones legitimately cover the balance, so stale zone
// data degrades the figure instead of failing the whole summary.
func ZonedInterest(balance Money, zones []RateZone) Money {
	if !balance.IsPositive() {
		return M(0, balance.cur)
	}
	total := decimal.Zero
	for _, z := range sortZones(zones) {
		total = total.Add(z.interest(balance.value))
	}
	return M(total, balance.cur)
}

// ZonePortion details how one zone contributes to a balance's yearly
// interest, for breakdown views.
type ZonePortion struct {
	Zone     RateZone
	Portion  Money // part of the balance inside the zone
	Interest Money // yearly interest earned by that part
}

// ZoneBreakdown returns the per-zone contributions summed by ZonedInterest,
// sorted by ascending lower bound. For a non-positive balance every portion
// is zero.
func ZoneBreakdown(balance Money, zones []RateZone) []ZonePortion {
	breakdown := make([]ZonePortion, 0, len(zones))
	for _, z := range sortZones(zones) {
		p := ZonePortion{
			Zone:     z,
			Portion:  M(0, balance.cur),
			Interest: M(0, balance.cur),
		}
		if balance.IsPositive() {
			p.Portion = M(z.portion(balance.value), balance.cur)
			p.Interest = M(z.interest(balance.value), balance.cur)
		}
		breakdown = append(breakdown, p)
	}
	return breakdown
}

// EffectiveRate is the annual percent rate implied by dividing yearly
// interest back by the balance that earned it. It makes zoned accounts
// comparable to flat-rate accounts in a weighted average. A zero or
// negative balance yields 0.
func EffectiveRate(interest, balance Money) Percent {
	if !balance.IsPositive() {
		return 0
	}
	return Percent(interest.value.Div(balance.value).Mul(oneHundred).InexactFloat64())
}

// ValidateZones checks the structural invariants of a zone set: sorted zones
// must start at 0, be contiguous and non-overlapping, and at most one zone
// may be unbounded, in last position. The engine tolerates violations (see
// ZonedInterest); this is for callers that want to surface bad data.
func ValidateZones(zones []RateZone) error {
	if len(zones) == 0 {
		return fmt.Errorf("no zones defined")
	}
	sorted := sortZones(zones)
	if !sorted[0].Low.IsZero() {
		return fmt.Errorf("first zone must start at 0, starts at %s", sorted[0].Low)
	}
	for i, z := range sorted {
		last := i == len(sorted)-1
		if z.Unbounded {
			if !last {
				return fmt.Errorf("unbounded zone at %s is not the last zone", z.Low)
			}
			continue
		}
		if z.High.LessThanOrEqual(z.Low) {
			return fmt.Errorf("zone [%s, %s) is empty", z.Low, z.High)
		}
		if !last && !sorted[i+1].Low.Equal(z.High) {
			return fmt.Errorf("zones are not contiguous at %s: next starts at %s", z.High, sorted[i+1].Low)
		}
	}
	return nil
}
