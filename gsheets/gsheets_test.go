package gsheets

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestURL(t *testing.T) {
	tab := New("1AbC", "42", "prices")
	want := "https://docs.google.com/spreadsheets/d/1AbC/export?format=csv&gid=42"
	if got := tab.URL(); got != want {
		t.Errorf("URL() = %q, want %q", got, want)
	}
}

func TestName(t *testing.T) {
	if got := New("1AbC", "42", "prices").Name(); got != "prices" {
		t.Errorf("Name() = %q, want prices", got)
	}
	if got := New("1AbC", "42", "").Name(); got != "sheet 1AbC gid 42" {
		t.Errorf("Name() = %q, want the document fallback", got)
	}
}

func TestFetch(t *testing.T) {
	const body = "\ufeffDate,Total Value\n01/01/2024,100\n"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/1AbC/export" {
			t.Errorf("path = %q, want /1AbC/export", r.URL.Path)
		}
		if got := r.URL.Query().Get("format"); got != "csv" {
			t.Errorf("format = %q, want csv", got)
		}
		if got := r.URL.Query().Get("gid"); got != "42" {
			t.Errorf("gid = %q, want 42", got)
		}
		fmt.Fprint(w, body)
	}))
	defer srv.Close()

	tab := New("1AbC", "42", "prices")
	tab.Base = srv.URL
	r, err := tab.Fetch()
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	// the byte order mark passes through untouched, stripping is the
	// decoder's job
	if string(got) != body {
		t.Errorf("Fetch() body = %q, want %q", got, body)
	}
}

func TestFetch_notFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such sheet", http.StatusNotFound)
	}))
	defer srv.Close()

	tab := New("1AbC", "42", "prices")
	tab.Base = srv.URL
	_, err := tab.Fetch()
	if err == nil {
		t.Fatal("Fetch() error = nil, want error on 404")
	}
	if !strings.Contains(err.Error(), "prices") {
		t.Errorf("error %q does not name the tab", err)
	}
}
