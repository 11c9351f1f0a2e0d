package fundboard

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"
)

// fakeSource serves fixed bytes and counts fetches.
type fakeSource struct {
	name    string
	data    string
	err     error
	fetches int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Fetch() (io.ReadCloser, error) {
	f.fetches++
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.data)), nil
}

const servicePriceCSV = "Date,Degiro,Total Value,Shares,Share Price\n" +
	"01/01/2024,1000,1000,100,10\n" +
	"01/06/2024,1200,1200,100,12\n"

const serviceInvestorCSV = "Full Name,Invested Capital,Total Shares\n" +
	"Alice,1000,100\n"

func newTestService(prices, investors *fakeSource) *Service {
	return NewService(prices, investors, "EUR", time.Minute)
}

func TestServiceReport(t *testing.T) {
	prices := &fakeSource{name: "prices", data: servicePriceCSV}
	investors := &fakeSource{name: "investors", data: serviceInvestorCSV}
	s := newTestService(prices, investors)

	r, stale, err := s.Report()
	if err != nil || stale {
		t.Fatalf("Report() stale %v, error %v", stale, err)
	}
	if !r.AUM.Equal(EUR(1200)) {
		t.Errorf("AUM = %s, want %s", r.AUM, EUR(1200))
	}
	if !r.Total.ROI.Equal(Percent(20)) {
		t.Errorf("Total.ROI = %s, want 20.00%%", r.Total.ROI)
	}

	// second call is served from cache
	if _, _, err := s.Report(); err != nil {
		t.Fatalf("second Report() error = %v", err)
	}
	if prices.fetches != 1 || investors.fetches != 1 {
		t.Errorf("fetches = %d, %d within the window, want 1, 1", prices.fetches, investors.fetches)
	}
}

func TestServiceReport_malformedPrices(t *testing.T) {
	prices := &fakeSource{name: "prices", data: "Date,Degiro,Total Value,Shares,Share Price\n32/13/2024,1,1,1,1\n"}
	investors := &fakeSource{name: "investors", data: serviceInvestorCSV}
	s := newTestService(prices, investors)

	_, _, err := s.Report()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Report() error = %v, want *ParseError", err)
	}
}

func TestServiceReport_sourceDown(t *testing.T) {
	prices := &fakeSource{name: "prices", err: errors.New("connection refused")}
	investors := &fakeSource{name: "investors", data: serviceInvestorCSV}
	s := newTestService(prices, investors)

	_, _, err := s.Report()
	var uerr *UnavailableError
	if !errors.As(err, &uerr) {
		t.Fatalf("Report() error = %v, want *UnavailableError", err)
	}
	if uerr.Service != "prices" {
		t.Errorf("UnavailableError.Service = %q, want prices", uerr.Service)
	}
}

func TestServiceReport_staleAfterFailedRefresh(t *testing.T) {
	prices := &fakeSource{name: "prices", data: servicePriceCSV}
	investors := &fakeSource{name: "investors", data: serviceInvestorCSV}
	s := newTestService(prices, investors)

	clock := time.Unix(0, 0)
	s.priceCache.now = func() time.Time { return clock }
	s.investorCache.now = func() time.Time { return clock }

	if _, stale, err := s.Report(); err != nil || stale {
		t.Fatalf("seed Report() stale %v, error %v", stale, err)
	}

	// the refresh after expiry fails; the prior report must survive
	prices.err = errors.New("quota exceeded")
	clock = clock.Add(2 * time.Minute)

	r, stale, err := s.Report()
	if r == nil {
		t.Fatalf("Report() = nil after failed refresh, want prior data")
	}
	if !stale {
		t.Error("stale = false, want true after failed refresh")
	}
	if err == nil {
		t.Error("err = nil, want the refresh failure alongside the data")
	}
	if !r.AUM.Equal(EUR(1200)) {
		t.Errorf("AUM = %s, want prior value %s", r.AUM, EUR(1200))
	}
}

func TestServiceReport_malformedRefreshKeepsPriorTable(t *testing.T) {
	prices := &fakeSource{name: "prices", data: servicePriceCSV}
	investors := &fakeSource{name: "investors", data: serviceInvestorCSV}
	s := newTestService(prices, investors)

	clock := time.Unix(0, 0)
	s.priceCache.now = func() time.Time { return clock }
	s.investorCache.now = func() time.Time { return clock }

	first, _, err := s.PriceSeries()
	if err != nil {
		t.Fatalf("seed PriceSeries() error = %v", err)
	}

	prices.data = "Date,Degiro,Total Value,Shares,Share Price\nnot-a-date,1,1,1,1\n"
	clock = clock.Add(2 * time.Minute)

	again, stale, err := s.PriceSeries()
	if !stale {
		t.Fatal("stale = false, want true when the refresh fails to parse")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("err = %v, want *ParseError", err)
	}
	if again != first {
		t.Error("PriceSeries() after failed refresh must return the prior table unmodified")
	}
}
