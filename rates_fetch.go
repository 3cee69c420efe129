package networth

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

/*
	{
	    "base": "CZK",
	    "date": "2025-08-29",
	    "rates": {
	        "EUR": 0.0411,
	        "USD": 0.0478
	    }
	}
*/
const frankfurterLatest = "https://api.frankfurter.dev/v1/latest"

// FetchRates retrieves the latest exchange rates for the given foreign
// currencies and returns a fresh rate table into the reporting currency.
// Responses are cached on disk for a day, which is plenty for a summary view.
//
// The feed quotes how much foreign currency one unit of the base buys, so
// the table factor (foreign into reporting) is the inverse.
func FetchRates(reporting string, currencies []string) (*Rates, error) {
	if err := ValidateCurrency(reporting); err != nil {
		return nil, fmt.Errorf("invalid reporting currency: %w", err)
	}
	rates := &Rates{reporting: reporting, factors: make(map[string]decimal.Decimal, len(currencies))}

	if len(currencies) == 0 {
		return rates, nil
	}

	addr := frankfurterLatest + "?" + url.Values{
		"base":    {reporting},
		"symbols": {strings.Join(currencies, ",")},
	}.Encode()

	var jobj any
	if err := jwget(daily(), addr, &jobj); err != nil {
		return nil, fmt.Errorf("error in wget %q: %w", addr, err)
	}

	for _, code := range currencies {
		path := "$.rates." + code
		jval, err := jsonpath.Get(path, jobj)
		if err != nil {
			return nil, fmt.Errorf("error parsing rate for %q: %q %w", code, path, err)
		}
		// because jsonpath is never clear about whether it returns a list of
		// 1 answer, or a single answer: keep the first one if any
		if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
			jval = jlist[0]
		}
		val, ok := jval.(float64)
		if !ok {
			return nil, fmt.Errorf("error parsing rate for %q: %q not a float: %v", code, path, jval)
		}
		if val == 0 {
			return nil, fmt.Errorf("rate for %q is zero, cannot invert", code)
		}
		rates.factors[code] = decimal.NewFromInt(1).Div(decimal.NewFromFloat(val))
	}
	return rates, nil
}
