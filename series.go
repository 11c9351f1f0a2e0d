package fundboard

import (
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/hbofund/fundboard/date"
)

// Canonical price series headers. Every column that is not one of these
// (nor Date) is treated as a per-broker valuation column.
const (
	colDate       = "Date"
	colTotal      = "Total Value"
	colShares     = "Shares"
	colSharePrice = "Share Price"
)

// PricePoint is one row of the fund valuation series.
type PricePoint struct {
	Date       date.Date
	Brokers    []Money // aligned with PriceSeries.Brokers
	Total      Money   // independently reported total fund value
	Shares     Quantity
	SharePrice Money
}

// PriceSeries is the validated fund valuation series, sorted ascending by
// date. It is rebuilt wholesale on every fetch and never mutated.
type PriceSeries struct {
	Currency string
	Brokers  []string // per-broker column names, in source order
	Points   []PricePoint
}

// DecodePriceSeries decodes and validates a CSV price series.
//
// The header row must contain Date, Total Value, Shares and Share Price
// (matched case-insensitively after header cleanup); all remaining columns
// are per-broker valuations. Dates are day-first. Any cell that fails to
// parse fails the whole decode: partial tables are never returned.
func DecodePriceSeries(r io.Reader, currency string) (*PriceSeries, error) {
	const source = "prices"

	header, rows, err := readTable(r, source)
	if err != nil {
		return nil, err
	}

	idx := map[string]int{}
	var brokers []string
	var brokerIdx []int
	for i, h := range header {
		switch {
		case strings.EqualFold(h, colDate):
			idx[colDate] = i
		case strings.EqualFold(h, colTotal):
			idx[colTotal] = i
		case strings.EqualFold(h, colShares):
			idx[colShares] = i
		case strings.EqualFold(h, colSharePrice):
			idx[colSharePrice] = i
		default:
			brokers = append(brokers, h)
			brokerIdx = append(brokerIdx, i)
		}
	}
	for _, required := range []string{colDate, colTotal, colShares, colSharePrice} {
		if _, ok := idx[required]; !ok {
			return nil, &ValidationError{Source: source, Reason: fmt.Sprintf("missing required column %q", required)}
		}
	}

	s := &PriceSeries{Currency: currency, Brokers: brokers}
	for _, row := range rows {
		var p PricePoint
		p.Date, err = date.ParseDayFirst(row[idx[colDate]])
		if err != nil {
			return nil, &ParseError{Source: source, Column: colDate, Value: row[idx[colDate]], Err: err}
		}
		for _, bi := range brokerIdx {
			v, err := ParseMoney(row[bi], currency)
			if err != nil {
				return nil, &ParseError{Source: source, Column: header[bi], Value: row[bi], Err: err}
			}
			p.Brokers = append(p.Brokers, v)
		}
		if p.Total, err = ParseMoney(row[idx[colTotal]], currency); err != nil {
			return nil, &ParseError{Source: source, Column: colTotal, Value: row[idx[colTotal]], Err: err}
		}
		if p.Shares, err = ParseQuantity(row[idx[colShares]]); err != nil {
			return nil, &ParseError{Source: source, Column: colShares, Value: row[idx[colShares]], Err: err}
		}
		if p.SharePrice, err = ParseMoney(row[idx[colSharePrice]], currency); err != nil {
			return nil, &ParseError{Source: source, Column: colSharePrice, Value: row[idx[colSharePrice]], Err: err}
		}
		s.Points = append(s.Points, p)
	}

	slices.SortStableFunc(s.Points, func(a, b PricePoint) int { return a.Date.Compare(b.Date) })
	for i := 1; i < len(s.Points); i++ {
		if s.Points[i].Date == s.Points[i-1].Date {
			return nil, &ValidationError{Source: source, Reason: fmt.Sprintf("duplicate date %s", s.Points[i].Date)}
		}
	}
	return s, nil
}

// Latest returns the most recent point of the series.
func (s *PriceSeries) Latest() (PricePoint, error) {
	if len(s.Points) == 0 {
		return PricePoint{}, &DomainError{Reason: "price series is empty: no latest share price can be determined"}
	}
	return s.Points[len(s.Points)-1], nil
}

// Performance returns the share price change from the first to the last
// point of the series.
func (s *PriceSeries) Performance() (Percent, error) {
	if len(s.Points) == 0 {
		return 0, &DomainError{Reason: "price series is empty: no performance can be determined"}
	}
	first, last := s.Points[0].SharePrice, s.Points[len(s.Points)-1].SharePrice
	return last.Sub(first).RatioOf(first), nil
}

// readTable reads a delimited table, cleans its headers and checks row
// widths. It returns the header row and the data rows.
func readTable(r io.Reader, source string) (header []string, rows [][]string, err error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, &ValidationError{Source: source, Reason: fmt.Sprintf("malformed delimited text: %v", err)}
	}
	if len(records) == 0 {
		return nil, nil, &ValidationError{Source: source, Reason: "missing header row"}
	}
	header = records[0]
	for i, h := range header {
		header[i] = CleanHeader(h)
	}
	return header, records[1:], nil
}
