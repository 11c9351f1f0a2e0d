package fundboard

import (
	"strings"
	"testing"
)

func TestExportPriceSeries(t *testing.T) {
	s, err := DecodePriceSeries(strings.NewReader(priceCSV), "EUR")
	if err != nil {
		t.Fatalf("DecodePriceSeries() error = %v", err)
	}

	var buf strings.Builder
	if err := ExportPriceSeries(&buf, s); err != nil {
		t.Fatalf("ExportPriceSeries() error = %v", err)
	}

	want := "Date,Degiro,InteractiveBrokers,Total Value,Shares,Share Price\n" +
		"2024-01-01,1000.00,1000.00,2000.00,200,10.00\n" +
		"2024-06-01,1250.00,850.50,2100.50,200,10.50\n"
	if got := buf.String(); got != want {
		t.Errorf("ExportPriceSeries() =\n%s\nwant\n%s", got, want)
	}
}

func TestExportInvestorMetrics(t *testing.T) {
	investors := &InvestorTable{
		Currency: "EUR",
		Records: []InvestorRecord{
			{Name: "Alice", Invested: EUR(1000), Shares: Q(100)},
		},
	}
	r, err := NewReport(testSeries(), investors)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}

	var buf strings.Builder
	if err := ExportInvestorMetrics(&buf, r); err != nil {
		t.Fatalf("ExportInvestorMetrics() error = %v", err)
	}

	want := "Name,Invested,Shares,Current Value,Return,ROI\n" +
		"Alice,1000.00,100,1200.00,200.00,20.00\n" +
		"TOTAL,1000.00,100,1200.00,200.00,20.00\n"
	if got := buf.String(); got != want {
		t.Errorf("ExportInvestorMetrics() =\n%s\nwant\n%s", got, want)
	}
}

func TestExport_roundTrips(t *testing.T) {
	s, err := DecodePriceSeries(strings.NewReader(priceCSV), "EUR")
	if err != nil {
		t.Fatalf("DecodePriceSeries() error = %v", err)
	}
	var buf strings.Builder
	if err := ExportPriceSeries(&buf, s); err != nil {
		t.Fatalf("ExportPriceSeries() error = %v", err)
	}
	// the canonical export parses back to the same series
	again, err := DecodePriceSeries(strings.NewReader(buf.String()), "EUR")
	if err != nil {
		t.Fatalf("re-decode error = %v", err)
	}
	if len(again.Points) != len(s.Points) {
		t.Fatalf("re-decoded %d points, want %d", len(again.Points), len(s.Points))
	}
	for i := range s.Points {
		if again.Points[i].Date != s.Points[i].Date {
			t.Errorf("Points[%d].Date = %s, want %s", i, again.Points[i].Date, s.Points[i].Date)
		}
		if !again.Points[i].Total.Equal(s.Points[i].Total) {
			t.Errorf("Points[%d].Total = %s, want %s", i, again.Points[i].Total, s.Points[i].Total)
		}
	}
}
