package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard/renderer"
)

// portfolioCmd displays the per-broker valuation history.
type portfolioCmd struct{}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "display portfolio value over time by broker" }
func (*portfolioCmd) Usage() string {
	return `fb portfolio

  Displays the fund's valuation over time, broken down by broker account,
  with the reported total.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {}

func (c *portfolioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Authenticate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	series, stale, err := NewService().PriceSeries()
	if series == nil {
		fmt.Fprintf(os.Stderr, "Error loading price series: %v\n", err)
		return subcommands.ExitFailure
	}

	if stale {
		printMarkdown(renderer.Warning(fmt.Sprintf("showing previously loaded data: %v", err)))
	}
	printMarkdown(renderer.PortfolioMarkdown(series))
	return subcommands.ExitSuccess
}
