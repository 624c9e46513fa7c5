package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/chart"
	"github.com/etnz/chart/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	seriesFlags
	title string
	scrub float64
	cols  int
	plain bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the value and performance of a series" }
func (*summaryCmd) Usage() string {
	return `chartctl summary [-title <title>] [-scrub <x>] [-timeframe <tf>] <series>

  Displays the latest value of the series, or the value inspected at -scrub,
  with its change over the timeframe and a sparkline.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.SetFlags(f)
	f.StringVar(&c.title, "title", "Balance", "Title of the summary")
	f.Float64Var(&c.scrub, "scrub", -1, "Inspect the value at this normalized position in [0,1]")
	f.IntVar(&c.cols, "cols", 40, "Columns of the sparkline, -1 for none")
	f.BoolVar(&c.plain, "plain", false, "Print the raw markdown")
}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	opts, err := options(chart.Interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, tf, err := c.load(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	var st chart.ScrubState
	if c.scrub >= 0 {
		st = pressAt(opts, s, size(), c.scrub)
	}
	sum, ok := renderer.NewSummary(c.title, tf, s, st, *currency, c.cols)
	if !ok {
		fmt.Fprintln(os.Stderr, "Error: the series is empty")
		return subcommands.ExitFailure
	}
	md, err := renderer.SummaryMarkdown(sum)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering summary: %v\n", err)
		return subcommands.ExitFailure
	}
	if c.plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}
	printMarkdown(md)
	return subcommands.ExitSuccess
}
