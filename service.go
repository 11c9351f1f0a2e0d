package fundboard

import (
	"fmt"
	"io"
	"time"
)

// Source delivers the raw bytes of one tabular input.
type Source interface {
	// Name identifies the source in errors and cache keys.
	Name() string
	// Fetch returns the raw delimited text. The caller closes the reader.
	Fetch() (io.ReadCloser, error)
}

// DefaultTTL bounds how long a fetched-and-parsed table is served before
// a refresh is attempted.
const DefaultTTL = 10 * time.Minute

// Service ties the two sources, the TTL cache and the parsers together.
// Each accessor performs one fetch+normalize pass at most per TTL window;
// the parsed tables are shared and must not be mutated by callers.
type Service struct {
	Currency string
	TTL      time.Duration

	prices    Source
	investors Source

	priceCache    *Store[*PriceSeries]
	investorCache *Store[*InvestorTable]
}

// NewService returns a Service reading from the given sources.
func NewService(prices, investors Source, currency string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Service{
		Currency:      currency,
		TTL:           ttl,
		prices:        prices,
		investors:     investors,
		priceCache:    NewStore[*PriceSeries](),
		investorCache: NewStore[*InvestorTable](),
	}
}

// PriceSeries returns the validated price series, from cache when fresh.
// stale reports that a refresh failed and prior data is being served;
// err then carries the failure for display next to the data.
func (s *Service) PriceSeries() (series *PriceSeries, stale bool, err error) {
	return s.priceCache.GetOrFetch(s.prices.Name(), s.TTL, func() (*PriceSeries, error) {
		r, err := s.prices.Fetch()
		if err != nil {
			return nil, &UnavailableError{Service: s.prices.Name(), Err: err}
		}
		defer r.Close()
		return DecodePriceSeries(r, s.Currency)
	})
}

// Investors returns the validated investor table, from cache when fresh.
func (s *Service) Investors() (table *InvestorTable, stale bool, err error) {
	return s.investorCache.GetOrFetch(s.investors.Name(), s.TTL, func() (*InvestorTable, error) {
		r, err := s.investors.Fetch()
		if err != nil {
			return nil, &UnavailableError{Service: s.investors.Name(), Err: err}
		}
		defer r.Close()
		return DecodeInvestors(r, s.Currency)
	})
}

// Report loads both tables and derives the metrics report. stale is true
// when either table was served past its TTL after a failed refresh; the
// accompanying error is returned alongside the report so the caller can
// show a warning without losing the data.
func (s *Service) Report() (report *Report, stale bool, err error) {
	series, staleP, errP := s.PriceSeries()
	if series == nil {
		return nil, false, errP
	}
	table, staleI, errI := s.Investors()
	if table == nil {
		return nil, false, errI
	}

	report, err = NewReport(series, table)
	if err != nil {
		return nil, false, err
	}
	if staleP || staleI {
		staleErr := errP
		if staleErr == nil {
			staleErr = errI
		}
		return report, true, fmt.Errorf("serving cached data: %w", staleErr)
	}
	return report, false, nil
}
