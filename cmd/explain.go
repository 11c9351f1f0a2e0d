package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/hbofund/fundboard/agent"
	"github.com/hbofund/fundboard/renderer"
	"google.golang.org/genai"
)

// explainCmd asks the AI analyst to explain the current report.
type explainCmd struct {
	model string
}

func (*explainCmd) Name() string     { return "explain" }
func (*explainCmd) Synopsis() string { return "ask the AI analyst about the current report" }
func (*explainCmd) Usage() string {
	return `fb explain [-model <model>] [question...]

  Sends the current investor report to the AI analyst and prints its
  plain-language answer. With no question, asks for a general summary.
`
}

func (c *explainCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.model, "model", "", "Gemini model to use (empty for the default)")
}

func (c *explainCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if err := Authenticate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	question := "Summarize how the fund and its investors are doing."
	if f.NArg() > 0 {
		question = strings.Join(f.Args(), " ")
	}

	report, _, err := NewService().Report()
	if report == nil {
		fmt.Fprintf(os.Stderr, "Error deriving report: %v\n", err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	analyst := agent.NewAnalyst(c.model)
	if err := analyst.Start(ctx, client); err != nil {
		fmt.Fprintln(os.Stderr, "Error starting analyst session:", err)
		return subcommands.ExitFailure
	}

	answer, err := analyst.Ask(ctx, renderer.InvestorsMarkdown(report), question)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Analyst failed:", err)
		return subcommands.ExitFailure
	}
	printMarkdown(answer)
	return subcommands.ExitSuccess
}
