package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard/renderer"
)

// priceCmd displays the headline figures and the share price history.
type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "display the latest share price, AUM and price history" }
func (*priceCmd) Usage() string {
	return `fb price

  Displays the fund's latest share price, total assets under management,
  and the full share price history.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Authenticate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc := NewService()
	series, stale, err := svc.PriceSeries()
	if series == nil {
		fmt.Fprintf(os.Stderr, "Error loading price series: %v\n", err)
		return subcommands.ExitFailure
	}
	report, _, rerr := svc.Report()
	if report == nil {
		fmt.Fprintf(os.Stderr, "Error deriving report: %v\n", rerr)
		return subcommands.ExitFailure
	}

	if stale {
		printMarkdown(renderer.Warning(fmt.Sprintf("showing previously loaded data: %v", err)))
	}
	printMarkdown(renderer.PriceMarkdown(report, series))
	return subcommands.ExitSuccess
}
