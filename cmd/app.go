// Package cmd implements the CLI application to report on the fund.
package cmd

import (
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard"
	"github.com/hbofund/fundboard/gsheets"
)

// Commands is the full command set, registered by the main package.
var Commands = []subcommands.Command{
	&priceCmd{},
	&portfolioCmd{},
	&investorsCmd{},
	&exportCmd{},
	&benchmarkCmd{},
	&explainCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	sheetID      = flag.String("sheet", os.Getenv("FB_SHEET"), "Spreadsheet document ID holding the fund data")
	pricesGID    = flag.String("prices-gid", "0", "Tab GID of the price series")
	investorsGID = flag.String("investors-gid", "", "Tab GID of the investor table")
	currency     = flag.String("currency", "EUR", "Reporting currency of the fund")
	ttl          = flag.Duration("ttl", fundboard.DefaultTTL, "How long fetched tables stay fresh")
	password     = flag.String("password", "", "Access password, checked against the FB_SECRET environment variable")
)

// NewService is the central function to build the data service from the
// app flags.
func NewService() *fundboard.Service {
	prices := gsheets.New(*sheetID, *pricesGID, "prices")
	investors := gsheets.New(*sheetID, *investorsGID, "investors")
	return fundboard.NewService(prices, investors, *currency, *ttl)
}

// Authenticate checks the -password flag against the configured secret.
// With no secret configured the gate is open.
func Authenticate() error {
	session := fundboard.NewSession(os.Getenv("FB_SECRET"), *password)
	return session.Check()
}
