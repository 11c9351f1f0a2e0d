// Package fundboard turns the raw spreadsheet exports of a small private
// fund into validated tables and per-investor return metrics.
//
// The pipeline is strictly one-way: two CSV sources (the fund valuation
// time series and the investor capital table) are fetched, their
// locale-ambiguous numeric and date text normalized into exact decimal
// values, and a report derived from the result. Nothing is persisted and
// nothing is mutated in place; every refresh rebuilds the tables
// wholesale.
//
// The core functionalities include:
//   - Ingestion: decoding and validating the two tabular sources,
//     including day-first dates and European/US number formats
//     ("1.500,00" and "1,500.00" both parse to fifteen hundred).
//   - Derivation: computing the latest share price, assets under
//     management, and each investor's current value, absolute return and
//     return on investment, plus an aggregate TOTAL row.
//   - Caching: a bounded time-to-live memo over the fetch+parse step that
//     serves the last good tables when a refresh fails.
//   - Export: verbatim re-serialization of both tables as CSV.
//
// This package is the foundational logic for the `fb` command-line tool;
// rendering, benchmark lookup and the AI explainer live in subpackages
// and only ever consume this package's outputs.
package fundboard
