package networth

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedCurrency is returned when an amount is converted from a
// currency that has no entry in the rate table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ValidateCurrency checks that a currency code is a known ISO 4217 code.
func ValidateCurrency(code string) error {
	if money.GetCurrency(code) == nil {
		return fmt.Errorf("unknown currency code %q", code)
	}
	return nil
}

// Rates converts monetary amounts into a single reporting currency using a
// static table of multiplicative factors. It is immutable after creation, so
// conversions are deterministic within a computation cycle.
type Rates struct {
	reporting string
	factors   map[string]decimal.Decimal // source currency -> factor into reporting
}

// NewRates creates a rate table for the given reporting currency. Keys of
// factors are source currency codes; values multiply an amount in that
// currency into the reporting currency. The reporting currency itself never
// needs an entry.
func NewRates(reporting string, factors map[string]float64) (*Rates, error) {
	if err := ValidateCurrency(reporting); err != nil {
		return nil, fmt.Errorf("invalid reporting currency: %w", err)
	}
	r := &Rates{reporting: reporting, factors: make(map[string]decimal.Decimal, len(factors))}
	for code, f := range factors {
		if err := ValidateCurrency(code); err != nil {
			return nil, fmt.Errorf("invalid rate table entry: %w", err)
		}
		if f <= 0 {
			return nil, fmt.Errorf("invalid rate table entry: factor for %q must be positive, got %v", code, f)
		}
		r.factors[code] = decimal.NewFromFloat(f)
	}
	return r, nil
}

// Reporting returns the reporting currency code.
func (r *Rates) Reporting() string { return r.reporting }

// Supports reports whether an amount in the given currency can be converted.
func (r *Rates) Supports(code string) bool {
	if code == r.reporting || code == "" {
		return true
	}
	_, ok := r.factors[code]
	return ok
}

// Currencies returns the foreign currency codes of the table, sorted.
func (r *Rates) Currencies() []string {
	codes := make([]string, 0, len(r.factors))
	for code := range r.factors {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Factor returns the multiplicative factor from the given currency into the
// reporting currency.
func (r *Rates) Factor(code string) (decimal.Decimal, bool) {
	if code == r.reporting {
		return decimal.NewFromInt(1), true
	}
	f, ok := r.factors[code]
	return f, ok
}

// Convert returns the amount expressed in the reporting currency.
//
// An amount already in the reporting currency (or with the weak "" currency)
// is returned unchanged, with no rounding drift. Otherwise the amount is
// multiplied by the table factor; a currency absent from the table yields
// ErrUnsupportedCurrency.
func (r *Rates) Convert(m Money) (Money, error) {
	if m.cur == r.reporting || m.cur == "" {
		return M(m.value, r.reporting), nil
	}
	f, ok := r.factors[m.cur]
	if !ok {
		return Money{}, fmt.Errorf("cannot convert %s to %s: %w", m.cur, r.reporting, ErrUnsupportedCurrency)
	}
	return M(m.value.Mul(f), r.reporting), nil
}
