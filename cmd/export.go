package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard"
)

// exportCmd writes the two output tables as CSV files.
type exportCmd struct {
	pricesFile    string
	investorsFile string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write the price history and investor tables as CSV" }
func (*exportCmd) Usage() string {
	return `fb export [-prices <file>] [-investors <file>]

  Writes the validated price history and the derived investor performance
  table (TOTAL row included) as UTF-8 CSV files with a header row.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.pricesFile, "prices", "price_history.csv", "Destination file for the price series")
	f.StringVar(&c.investorsFile, "investors", "investor_performance.csv", "Destination file for the investor table")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Authenticate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	svc := NewService()
	series, _, err := svc.PriceSeries()
	if series == nil {
		fmt.Fprintf(os.Stderr, "Error loading price series: %v\n", err)
		return subcommands.ExitFailure
	}
	report, _, err := svc.Report()
	if report == nil {
		fmt.Fprintf(os.Stderr, "Error deriving report: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := writeCSV(c.pricesFile, func(f *os.File) error {
		return fundboard.ExportPriceSeries(f, series)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting price series: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := writeCSV(c.investorsFile, func(f *os.File) error {
		return fundboard.ExportInvestorMetrics(f, report)
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting investor table: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s and %s\n", c.pricesFile, c.investorsFile)
	return subcommands.ExitSuccess
}

func writeCSV(filename string, write func(*os.File) error) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
