package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard/renderer"
)

// investorsCmd displays the derived investor performance table.
type investorsCmd struct{}

func (*investorsCmd) Name() string { return "investors" }
func (*investorsCmd) Synopsis() string {
	return "display per-investor value, return and ROI with a TOTAL row"
}
func (*investorsCmd) Usage() string {
	return `fb investors

  Displays each investor's invested capital, shares, current value,
  absolute return and return on investment, plus the aggregate TOTAL row.
`
}

func (c *investorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *investorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Authenticate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	report, stale, err := NewService().Report()
	if report == nil {
		fmt.Fprintf(os.Stderr, "Error deriving report: %v\n", err)
		return subcommands.ExitFailure
	}

	if stale {
		printMarkdown(renderer.Warning(fmt.Sprintf("showing previously loaded data: %v", err)))
	}
	printMarkdown(renderer.InvestorsMarkdown(report))
	return subcommands.ExitSuccess
}
