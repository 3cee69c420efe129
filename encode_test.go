package networth

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDecodeAccounts(t *testing.T) {
	input := `{"id":"main","currency":"CZK","balance":50000,"zoned":true,"type":"savings"}

{"id":"daily","currency":"EUR","balance":120.50,"interestRate":0.5,"excludeFromBalance":true,"type":"checking"}
`
	accounts, err := DecodeAccounts(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("DecodeAccounts() decoded %d accounts, want 2", len(accounts))
	}

	main := accounts[0]
	if main.ID != "main" || main.Currency != "CZK" || !main.Zoned || main.Type != Savings {
		t.Errorf("unexpected first account: %+v", main)
	}
	if !main.Balance.Equal(decimal.NewFromInt(50000)) {
		t.Errorf("Balance = %v, want 50000", main.Balance)
	}

	daily := accounts[1]
	if !daily.ExcludeFromBalance || daily.Type != Checking {
		t.Errorf("unexpected second account: %+v", daily)
	}
	if !daily.Balance.Equal(decimal.NewFromFloat(120.50)) {
		t.Errorf("Balance = %v, want 120.50", daily.Balance)
	}
	if !daily.InterestRate.Equal(decimal.NewFromFloat(0.5)) {
		t.Errorf("InterestRate = %v, want 0.5", daily.InterestRate)
	}
}

func TestDecodeAccounts_malformedLine(t *testing.T) {
	_, err := DecodeAccounts(strings.NewReader(`{"id":`))
	if err == nil {
		t.Fatal("DecodeAccounts() expected an error for a malformed line")
	}
}

func TestEncodeAccounts_canonicalOrder(t *testing.T) {
	accounts := []Account{
		{ID: "zzz", Currency: "CZK", Balance: decimal.NewFromInt(1), Type: Checking},
		{ID: "aaa", Currency: "CZK", Balance: decimal.NewFromInt(2), Type: Savings},
	}
	var b bytes.Buffer
	if err := EncodeAccounts(&b, accounts); err != nil {
		t.Fatalf("EncodeAccounts() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("EncodeAccounts() wrote %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], `"aaa"`) || !strings.Contains(lines[1], `"zzz"`) {
		t.Errorf("accounts are not sorted by ID:\n%s", b.String())
	}
	// canonical form round-trips
	decoded, err := DecodeAccounts(&b)
	if err != nil {
		t.Fatalf("DecodeAccounts() error = %v", err)
	}
	if len(decoded) != 2 || decoded[0].ID != "aaa" {
		t.Errorf("unexpected round-trip result: %+v", decoded)
	}
}

func TestDecodeZones(t *testing.T) {
	input := `{"account":"main","zones":[{"low":50000,"rate":2,"unbounded":true},{"low":0,"high":50000,"rate":3}]}
`
	zones, err := DecodeZones(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeZones() error = %v", err)
	}
	zs, ok := zones["main"]
	if !ok || len(zs) != 2 {
		t.Fatalf("zones for %q = %v, want 2 zones", "main", zs)
	}
	// decoded zones come out sorted by lower bound
	if !zs[0].Low.IsZero() || zs[0].Unbounded {
		t.Errorf("first zone = %+v, want bounded zone starting at 0", zs[0])
	}
	if !zs[1].Unbounded {
		t.Errorf("second zone = %+v, want the unbounded top zone", zs[1])
	}

	got := ZonedInterest(M(60000, "CZK"), zs)
	// 50000*3% + 10000*2%
	if want := M(1700, "CZK"); !got.Equal(want) {
		t.Errorf("ZonedInterest() = %v, want %v", got, want)
	}
}

func TestDecodeRates(t *testing.T) {
	input := `{"reporting":"CZK","rates":{"EUR":25.0,"USD":22.5}}`
	rates, err := DecodeRates(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	if rates.Reporting() != "CZK" {
		t.Errorf("Reporting() = %q, want CZK", rates.Reporting())
	}
	got, err := rates.Convert(M(2, "EUR"))
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if want := M(50, "CZK"); !got.Equal(want) {
		t.Errorf("Convert(2 EUR) = %v, want %v", got, want)
	}
}

func TestDecodeRates_rejectsBadTables(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"unknown reporting", `{"reporting":"NOPE","rates":{}}`},
		{"unknown entry", `{"reporting":"CZK","rates":{"NOPE":1}}`},
		{"non positive factor", `{"reporting":"CZK","rates":{"EUR":0}}`},
		{"garbage", `not json`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeRates(strings.NewReader(tc.input)); err == nil {
				t.Errorf("DecodeRates(%q) expected an error", tc.input)
			}
		})
	}
}

func TestEncodeRates_roundTrip(t *testing.T) {
	rates := testRates(t)
	var b bytes.Buffer
	if err := EncodeRates(&b, rates); err != nil {
		t.Fatalf("EncodeRates() error = %v", err)
	}
	decoded, err := DecodeRates(&b)
	if err != nil {
		t.Fatalf("DecodeRates() error = %v", err)
	}
	for _, code := range []string{"EUR", "USD"} {
		want, _ := rates.Factor(code)
		got, ok := decoded.Factor(code)
		if !ok || !got.Equal(want) {
			t.Errorf("Factor(%q) = %v, want %v", code, got, want)
		}
	}
}
