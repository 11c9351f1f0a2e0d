// Package renderer turns fund reports into markdown documents.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/hbofund/fundboard"
	md "github.com/nao1215/markdown"
)

// PriceMarkdown renders the headline figures and the share price history.
func PriceMarkdown(r *fundboard.Report, s *fundboard.PriceSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Share Price on %s", r.Date))
	doc.PlainText(fmt.Sprintf("Assets Under Management: %s", r.AUM))
	doc.PlainText(fmt.Sprintf("Latest Share Price: %s", r.SharePrice))

	doc.H2("Share Price History")
	table := md.TableSet{
		Header: []string{"Date", "Share Price"},
		Rows:   make([][]string, 0, len(s.Points)),
	}
	for _, p := range s.Points {
		table.Rows = append(table.Rows, []string{p.Date.String(), p.SharePrice.String()})
	}
	doc.Table(table)

	return doc.String()
}

// PortfolioMarkdown renders the per-broker valuation history.
func PortfolioMarkdown(s *fundboard.PriceSeries) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Portfolio Value by Broker")

	header := append([]string{"Date"}, s.Brokers...)
	header = append(header, "Total")
	table := md.TableSet{Header: header, Rows: make([][]string, 0, len(s.Points))}
	for _, p := range s.Points {
		row := []string{p.Date.String()}
		for _, b := range p.Brokers {
			row = append(row, b.String())
		}
		row = append(row, p.Total.String())
		table.Rows = append(table.Rows, row)
	}
	doc.Table(table)

	return doc.String()
}

// InvestorsMarkdown renders the investor performance table with its
// aggregate row, plus each investor's share of the invested capital.
func InvestorsMarkdown(r *fundboard.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Investor Performance on %s", r.Date))

	table := md.TableSet{
		Header: []string{"Name", "Invested", "Shares", "Current Value", "Return", "ROI", "Capital Share"},
		Rows:   make([][]string, 0, len(r.Investors)+1),
	}
	for _, m := range r.Investors {
		table.Rows = append(table.Rows, []string{
			m.Name,
			m.Invested.String(),
			m.Shares.String(),
			m.CurrentValue.String(),
			m.Return.SignedString(),
			m.ROI.SignedString(),
			m.Invested.RatioOf(r.Total.Invested).String(),
		})
	}
	t := r.Total
	table.Rows = append(table.Rows, []string{
		md.Bold(t.Name),
		md.Bold(t.Invested.String()),
		md.Bold(t.Shares.String()),
		md.Bold(t.CurrentValue.String()),
		md.Bold(t.Return.SignedString()),
		md.Bold(t.ROI.SignedString()),
		md.Bold(fundboard.Percent(100).String()),
	})
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Sum of investor values: %s (reported AUM %s)", r.InvestorAUM, r.AUM))

	return doc.String()
}

// BenchmarkMarkdown renders the fund-versus-benchmark comparison over the
// series range.
func BenchmarkMarkdown(ticker string, fund, bench fundboard.Percent) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Fund vs %s", ticker))
	table := md.TableSet{
		Header: []string{"Series", "Return"},
		Rows: [][]string{
			{"Fund share price", fund.SignedString()},
			{ticker, bench.SignedString()},
			{"Difference", (fund - bench).SignedString()},
		},
	}
	doc.Table(table)

	return doc.String()
}

// Warning renders a degradation notice (stale cache, missing benchmark)
// as a blockquote so it stands out above the data.
func Warning(msg string) string {
	return fmt.Sprintf("> ⚠️ %s\n", msg)
}
