// Package gsheets fetches tables published as spreadsheet CSV exports.
//
// A shared spreadsheet exposes each of its tabs at
// .../spreadsheets/d/<document>/export?format=csv&gid=<tab>; that is the
// whole protocol. Authentication, retries and caching are deliberately
// not here: the document must be link-readable, and callers memoize the
// result themselves.
package gsheets

import (
	"fmt"
	"io"
	"net/http"
)

// DefaultBase is the public spreadsheet export endpoint.
const DefaultBase = "https://docs.google.com/spreadsheets/d"

// Tab is one CSV-exportable sheet tab. It implements the Source contract
// of the root package.
type Tab struct {
	Document string // spreadsheet document ID
	GID      string // tab identifier within the document
	Label    string // short name used in errors and cache keys

	// Base and Client may be overridden, for tests mostly.
	Base   string
	Client *http.Client
}

// New returns a Tab for the given document and tab id.
func New(document, gid, label string) *Tab {
	return &Tab{Document: document, GID: gid, Label: label}
}

// Name identifies the tab in errors and cache keys.
func (t *Tab) Name() string {
	if t.Label != "" {
		return t.Label
	}
	return fmt.Sprintf("sheet %s gid %s", t.Document, t.GID)
}

// URL returns the CSV export locator for the tab.
func (t *Tab) URL() string {
	base := t.Base
	if base == "" {
		base = DefaultBase
	}
	return fmt.Sprintf("%s/%s/export?format=csv&gid=%s", base, t.Document, t.GID)
}

// Fetch GETs the CSV export. The caller closes the returned reader.
func (t *Tab) Fetch() (io.ReadCloser, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Get(t.URL())
	if err != nil {
		return nil, fmt.Errorf("cannot fetch %s: %w", t.Name(), err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("cannot fetch %s: %v", t.Name(), resp.Status)
	}
	return resp.Body, nil
}
