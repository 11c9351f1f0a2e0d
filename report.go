package fundboard

import (
	"github.com/hbofund/fundboard/date"
)

// InvestorMetrics is one row of the derived performance table.
type InvestorMetrics struct {
	Name         string
	Invested     Money
	Shares       Quantity
	CurrentValue Money // Shares × latest share price
	Return       Money // CurrentValue − Invested
	ROI          Percent
}

// Report is the derived view of the fund on the latest known date. It is
// a pure function of its two inputs; calling NewReport again with the
// same tables yields an equal Report.
type Report struct {
	Date       date.Date // date of the latest price point
	Currency   string
	SharePrice Money
	AUM        Money // total fund value as reported by the price series

	// InvestorAUM is the sum of all investors' current values. It is kept
	// separate from AUM on purpose: the two diverge when the investor
	// roster is incomplete, and the reported figure stays authoritative.
	InvestorAUM Money

	Investors []InvestorMetrics
	Total     InvestorMetrics // aggregate row, Name "TOTAL"
}

// NewReport derives the per-investor metrics and aggregate row from a
// validated price series and investor table.
//
// ROI of a zero-capital investor is exactly 0 by policy. The aggregate
// ROI is recomputed from the summed return and capital, never averaged
// from the per-row values.
func NewReport(series *PriceSeries, investors *InvestorTable) (*Report, error) {
	latest, err := series.Latest()
	if err != nil {
		return nil, err
	}

	r := &Report{
		Date:       latest.Date,
		Currency:   series.Currency,
		SharePrice: latest.SharePrice,
		AUM:        latest.Total,
	}

	total := InvestorMetrics{
		Name:         "TOTAL",
		Invested:     M(0, series.Currency),
		CurrentValue: M(0, series.Currency),
		Return:       M(0, series.Currency),
	}
	for _, rec := range investors.Records {
		m := InvestorMetrics{
			Name:         rec.Name,
			Invested:     rec.Invested,
			Shares:       rec.Shares,
			CurrentValue: latest.SharePrice.Mul(rec.Shares),
		}
		m.Return = m.CurrentValue.Sub(m.Invested)
		m.ROI = m.Return.RatioOf(m.Invested)
		r.Investors = append(r.Investors, m)

		total.Invested = total.Invested.Add(m.Invested)
		total.Shares = total.Shares.Add(m.Shares)
		total.CurrentValue = total.CurrentValue.Add(m.CurrentValue)
		total.Return = total.Return.Add(m.Return)
	}
	total.ROI = total.Return.RatioOf(total.Invested)

	r.Total = total
	r.InvestorAUM = total.CurrentValue
	return r, nil
}
