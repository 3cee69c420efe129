package networth

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// decodeJSONL decodes one record per line from a stream of JSONL data,
// skipping empty lines.
func decodeJSONL[T any](r io.Reader) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var record T
		if err := json.Unmarshal(lineBytes, &record); err != nil {
			return nil, fmt.Errorf("could not decode line %q: %w", string(lineBytes), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return records, nil
}

// encodeJSONL writes one record per line in JSONL format.
func encodeJSONL[T any](w io.Writer, records []T) error {
	decimal.MarshalJSONWithoutQuotes = true
	for _, record := range records {
		data, err := json.Marshal(record)
		if err != nil {
			return fmt.Errorf("failed to marshal record: %w", err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	return nil
}

// DecodeAccounts decodes account records from a JSONL stream.
func DecodeAccounts(r io.Reader) ([]Account, error) { return decodeJSONL[Account](r) }

// EncodeAccounts persists accounts in canonical JSONL form, sorted by ID.
func EncodeAccounts(w io.Writer, accounts []Account) error {
	sorted := slices.Clone(accounts)
	slices.SortStableFunc(sorted, func(a, b Account) int { return strings.Compare(a.ID, b.ID) })
	return encodeJSONL(w, sorted)
}

// DecodeHoldings decodes holding records from a JSONL stream.
func DecodeHoldings(r io.Reader) ([]Holding, error) { return decodeJSONL[Holding](r) }

// EncodeHoldings persists holdings in canonical JSONL form, sorted by ID.
func EncodeHoldings(w io.Writer, holdings []Holding) error {
	sorted := slices.Clone(holdings)
	slices.SortStableFunc(sorted, func(a, b Holding) int { return strings.Compare(a.ID, b.ID) })
	return encodeJSONL(w, sorted)
}

// DecodeLoans decodes loan records from a JSONL stream.
func DecodeLoans(r io.Reader) ([]Loan, error) { return decodeJSONL[Loan](r) }

// EncodeLoans persists loans in canonical JSONL form, sorted by ID.
func EncodeLoans(w io.Writer, loans []Loan) error {
	sorted := slices.Clone(loans)
	slices.SortStableFunc(sorted, func(a, b Loan) int { return strings.Compare(a.ID, b.ID) })
	return encodeJSONL(w, sorted)
}

// zoneRecord ties an ordered zone list to its account in the side-channel
// zones file.
type zoneRecord struct {
	Account string     `json:"account"`
	Zones   []RateZone `json:"zones"`
}

// DecodeZones decodes the account-to-zones side map from a JSONL stream.
// Zones are kept in the order the calculator expects (ascending lower
// bound); the calculator re-sorts defensively anyway.
func DecodeZones(r io.Reader) (map[string][]RateZone, error) {
	records, err := decodeJSONL[zoneRecord](r)
	if err != nil {
		return nil, err
	}
	zones := make(map[string][]RateZone, len(records))
	for _, record := range records {
		zones[record.Account] = sortZones(record.Zones)
	}
	return zones, nil
}

// EncodeZones persists the zone side map in canonical JSONL form, sorted by
// account ID and zone lower bound.
func EncodeZones(w io.Writer, zones map[string][]RateZone) error {
	records := make([]zoneRecord, 0, len(zones))
	for account, zs := range zones {
		records = append(records, zoneRecord{Account: account, Zones: sortZones(zs)})
	}
	slices.SortStableFunc(records, func(a, b zoneRecord) int { return strings.Compare(a.Account, b.Account) })
	return encodeJSONL(w, records)
}

// ratesFile is the persisted form of the rate table.
type ratesFile struct {
	Reporting string                     `json:"reporting"`
	Rates     map[string]decimal.Decimal `json:"rates"`
}

// DecodeRates decodes the rate table from its JSON file form.
func DecodeRates(r io.Reader) (*Rates, error) {
	var file ratesFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not decode rate table: %w", err)
	}
	if err := ValidateCurrency(file.Reporting); err != nil {
		return nil, fmt.Errorf("invalid rate table: %w", err)
	}
	rates := &Rates{reporting: file.Reporting, factors: make(map[string]decimal.Decimal, len(file.Rates))}
	for code, f := range file.Rates {
		if err := ValidateCurrency(code); err != nil {
			return nil, fmt.Errorf("invalid rate table: %w", err)
		}
		if !f.IsPositive() {
			return nil, fmt.Errorf("invalid rate table: factor for %q must be positive, got %s", code, f)
		}
		rates.factors[code] = f
	}
	return rates, nil
}

// EncodeRates persists the rate table as JSON.
func EncodeRates(w io.Writer, rates *Rates) error {
	decimal.MarshalJSONWithoutQuotes = true
	file := ratesFile{Reporting: rates.reporting, Rates: rates.factors}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(file)
}
