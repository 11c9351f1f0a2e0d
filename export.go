package fundboard

import (
	"encoding/csv"
	"fmt"
	"io"
)

// This file handles the download format: a verbatim re-serialization of
// the two output tables as UTF-8 delimited text with a header row.

// ExportPriceSeries writes the price series to 'w' as CSV with canonical
// formatting: ISO-8601 dates and plain decimals, no currency symbols.
func ExportPriceSeries(w io.Writer, s *PriceSeries) error {
	cw := csv.NewWriter(w)

	header := append([]string{colDate}, s.Brokers...)
	header = append(header, colTotal, colShares, colSharePrice)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write price series export: %w", err)
	}

	for _, p := range s.Points {
		row := []string{p.Date.String()}
		for _, b := range p.Brokers {
			row = append(row, b.Text())
		}
		row = append(row, p.Total.Text(), p.Shares.String(), p.SharePrice.Text())
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write price series export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportInvestorMetrics writes the derived investor table, aggregate row
// included, to 'w' as CSV.
func ExportInvestorMetrics(w io.Writer, r *Report) error {
	cw := csv.NewWriter(w)

	header := []string{"Name", "Invested", "Shares", "Current Value", "Return", "ROI"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("cannot write investor export: %w", err)
	}

	rows := append([]InvestorMetrics{}, r.Investors...)
	rows = append(rows, r.Total)
	for _, m := range rows {
		row := []string{
			m.Name,
			m.Invested.Text(),
			m.Shares.String(),
			m.CurrentValue.Text(),
			m.Return.Text(),
			fmt.Sprintf("%.2f", float64(m.ROI)),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write investor export: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
