package fundboard

import "fmt"

// Ingestion never falls through to default values: a malformed cell fails
// the whole source, and the caller shows the message instead of rendering
// corrupted numbers. The types below separate what is fatal to a fetch
// (ParseError, ValidationError), fatal to derivation (DomainError), and
// merely degraded (UnavailableError).

// ParseError reports a cell that could not be converted to its typed
// value, naming the offending source, column and text.
type ParseError struct {
	Source string // which table, e.g. "prices" or "investors"
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: cannot parse column %q value %q: %v", e.Source, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports a structurally invalid row or table: a blank
// investor name, a negative share count, a duplicated date, a missing
// required column.
type ValidationError struct {
	Source string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: invalid data: %s", e.Source, e.Reason)
}

// DomainError reports inputs over which no report can be derived, such as
// an empty price series.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string { return e.Reason }

// UnavailableError reports an external collaborator (sheet export,
// benchmark API) that could not be reached or answered garbage. It is
// non-fatal by design: callers degrade by omitting the section or by
// serving the last good value with a staleness warning.
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("%s unavailable: %v", e.Service, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }
