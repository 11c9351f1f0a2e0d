package fundboard

import (
	"fmt"
	"io"
	"strings"
)

// Investor table headers. "Name" and "Shares" are accepted as aliases:
// source revisions disagree on the long forms.
var (
	nameHeaders     = []string{"Full Name", "Name"}
	investedHeaders = []string{"Invested Capital", "Invested"}
	sharesHeaders   = []string{"Total Shares", "Shares"}
)

// InvestorRecord is one capital holder as reported by the source.
// Derived metrics (current value, return, ROI) live on the Report, not
// here: they depend on the price series.
type InvestorRecord struct {
	Name     string
	Invested Money
	Shares   Quantity
}

// InvestorTable is the validated investor roster, in source order.
type InvestorTable struct {
	Currency string
	Records  []InvestorRecord
}

// DecodeInvestors decodes and validates the investor capital CSV table.
//
// Invested capital is currency-formatted text in either locale convention.
// Share counts may be fractional but never negative; names must be
// non-blank. Any bad row fails the whole decode.
func DecodeInvestors(r io.Reader, currency string) (*InvestorTable, error) {
	const source = "investors"

	header, rows, err := readTable(r, source)
	if err != nil {
		return nil, err
	}

	nameIdx, err := findColumn(header, nameHeaders, source)
	if err != nil {
		return nil, err
	}
	investedIdx, err := findColumn(header, investedHeaders, source)
	if err != nil {
		return nil, err
	}
	sharesIdx, err := findColumn(header, sharesHeaders, source)
	if err != nil {
		return nil, err
	}

	t := &InvestorTable{Currency: currency}
	for i, row := range rows {
		rec := InvestorRecord{Name: strings.TrimSpace(row[nameIdx])}
		if rec.Name == "" {
			return nil, &ValidationError{Source: source, Reason: fmt.Sprintf("row %d has a blank name", i+1)}
		}
		if rec.Invested, err = ParseMoney(row[investedIdx], currency); err != nil {
			return nil, &ParseError{Source: source, Column: header[investedIdx], Value: row[investedIdx], Err: err}
		}
		if rec.Invested.IsNegative() {
			return nil, &ValidationError{Source: source, Reason: fmt.Sprintf("investor %q has negative invested capital", rec.Name)}
		}
		if rec.Shares, err = ParseQuantity(row[sharesIdx]); err != nil {
			return nil, &ParseError{Source: source, Column: header[sharesIdx], Value: row[sharesIdx], Err: err}
		}
		if rec.Shares.IsNegative() {
			return nil, &ValidationError{Source: source, Reason: fmt.Sprintf("investor %q has negative shares", rec.Name)}
		}
		t.Records = append(t.Records, rec)
	}
	return t, nil
}

// findColumn locates the first header matching one of the accepted names.
func findColumn(header, accepted []string, source string) (int, error) {
	for i, h := range header {
		for _, want := range accepted {
			if strings.EqualFold(h, want) {
				return i, nil
			}
		}
	}
	return 0, &ValidationError{Source: source, Reason: fmt.Sprintf("missing required column %q", accepted[0])}
}
