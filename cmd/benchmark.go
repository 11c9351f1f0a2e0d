package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard"
	"github.com/hbofund/fundboard/benchmark"
	"github.com/hbofund/fundboard/renderer"
)

// benchmarkCmd compares the fund's share price performance against an
// external ticker over the same period.
type benchmarkCmd struct {
	ticker string
}

func (*benchmarkCmd) Name() string     { return "benchmark" }
func (*benchmarkCmd) Synopsis() string { return "compare fund performance against a market ticker" }
func (*benchmarkCmd) Usage() string {
	return `fb benchmark [-t <ticker>]

  Compares the fund share price return against a market benchmark over
  the price series' date range. The benchmark is best effort: when the
  market data API is unavailable the fund report is shown with a warning
  and the comparison is omitted.
`
}

func (c *benchmarkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "IWDA.AS", "Benchmark ticker, format SYMBOL.EXCHANGE")
}

func (c *benchmarkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	fund, err := series.Performance()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing fund performance: %v\n", err)
		return subcommands.ExitFailure
	}

	bench, err := c.benchmarkPerformance(series)
	if err != nil {
		// degrade: the comparison is gone, the report is not
		var unavailable *fundboard.UnavailableError
		if errors.As(err, &unavailable) {
			printMarkdown(renderer.Warning(fmt.Sprintf("benchmark comparison omitted: %v", err)))
			printMarkdown(fmt.Sprintf("Fund share price return over the period: %s\n", fund.SignedString()))
			return subcommands.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error fetching benchmark: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.BenchmarkMarkdown(c.ticker, fund, bench))
	return subcommands.ExitSuccess
}

func (c *benchmarkCmd) benchmarkPerformance(series *fundboard.PriceSeries) (fundboard.Percent, error) {
	client := benchmark.New(os.Getenv("EODHD_API_KEY"))
	from := series.Points[0].Date
	to := series.Points[len(series.Points)-1].Date
	quotes, err := client.Closes(c.ticker, from, to)
	if err != nil {
		return 0, err
	}
	return benchmark.Performance(quotes)
}
