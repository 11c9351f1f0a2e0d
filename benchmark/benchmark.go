// Package benchmark looks up market benchmark prices by ticker, as a
// best-effort collaborator: when the API is down or answers garbage the
// caller omits the comparison and shows a warning, nothing more.
package benchmark

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
	"github.com/hbofund/fundboard"
	"github.com/hbofund/fundboard/date"
	"github.com/shopspring/decimal"
)

// DefaultBase is the EODHD API endpoint.
const DefaultBase = "https://eodhd.com/api"

// Quote is one end-of-day close for the benchmark ticker.
type Quote struct {
	Date  date.Date
	Close decimal.Decimal
}

// Client queries the market data API.
type Client struct {
	APIKey string
	Base   string // overridable for tests
	HTTP   *http.Client
}

// New returns a Client for the given API key.
func New(apiKey string) *Client {
	return &Client{APIKey: apiKey}
}

func (c *Client) base() string {
	if c.Base == "" {
		return DefaultBase
	}
	return c.Base
}

func (c *Client) client() *http.Client {
	if c.HTTP == nil {
		return http.DefaultClient
	}
	return c.HTTP
}

// Closes fetches the daily close prices for a ticker over a date range,
// bounds included. The ticker format is typically "SYMBOL.EXCHANGE".
func (c *Client) Closes(ticker string, from, to date.Date) ([]Quote, error) {
	addr := fmt.Sprintf("%s/eod/%s?fmt=json&api_token=%s&from=%s&to=%s", c.base(), ticker, c.APIKey, from, to)

	type info struct {
		Date  date.Date       `json:"date"`
		Close decimal.Decimal `json:"close"`
	}
	content := make([]info, 0)
	if err := c.jwget(addr, &content); err != nil {
		return nil, &fundboard.UnavailableError{Service: "benchmark " + ticker, Err: err}
	}

	quotes := make([]Quote, 0, len(content))
	for _, i := range content {
		quotes = append(quotes, Quote{Date: i.Date, Close: i.Close})
	}
	if len(quotes) == 0 {
		return nil, &fundboard.UnavailableError{Service: "benchmark " + ticker, Err: fmt.Errorf("no quotes in range %s..%s", from, to)}
	}
	return quotes, nil
}

// Latest fetches the most recent traded price for a ticker from the
// real-time endpoint.
func (c *Client) Latest(ticker string) (decimal.Decimal, error) {
	addr := fmt.Sprintf("%s/real-time/%s?fmt=json&api_token=%s", c.base(), ticker, c.APIKey)

	var jobj any
	if err := c.jwget(addr, &jobj); err != nil {
		return decimal.Decimal{}, &fundboard.UnavailableError{Service: "benchmark " + ticker, Err: err}
	}
	const path = "$.close"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return decimal.Decimal{}, &fundboard.UnavailableError{Service: "benchmark " + ticker, Err: fmt.Errorf("cannot pick %q: %w", path, err)}
	}
	// jsonpath is never clear about whether it returns a list of one
	// answer or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return decimal.Decimal{}, &fundboard.UnavailableError{Service: "benchmark " + ticker, Err: fmt.Errorf("%q is not a number: %v", path, jval)}
	}
	return decimal.NewFromFloat(val), nil
}

// Performance returns the close price change from the first to the last
// quote, as a percentage.
func Performance(quotes []Quote) (fundboard.Percent, error) {
	if len(quotes) == 0 {
		return 0, fmt.Errorf("no benchmark quotes")
	}
	first, last := quotes[0].Close, quotes[len(quotes)-1].Close
	if first.IsZero() {
		return 0, fmt.Errorf("benchmark starts at zero on %s", quotes[0].Date)
	}
	ratio := last.Sub(first).Div(first).Mul(decimal.NewFromInt(100))
	return fundboard.Percent(ratio.InexactFloat64()), nil
}

// jwget performs an HTTP GET request to the given address and unmarshals
// the JSON response body into the provided data structure.
func (c *Client) jwget(addr string, data any) error {
	resp, err := c.client().Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	resp.Body.Close()
	if err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}
