package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/chart"
	"github.com/etnz/chart/renderer"
	"github.com/google/subcommands"
)

type sparkCmd struct {
	seriesFlags
	cols  int
	plain bool
}

func (*sparkCmd) Name() string     { return "spark" }
func (*sparkCmd) Synopsis() string { return "print a series as a terminal sparkline" }
func (*sparkCmd) Usage() string {
	return `chartctl spark [-cols <n>] [-plain] <series>

  Prints a one line block sparkline of the series followed by its latest
  value and its change over the timeframe. Estimated columns are faint.
`
}

func (c *sparkCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.SetFlags(f)
	f.IntVar(&c.cols, "cols", 40, "Maximum number of columns, 0 for one column per sample")
	f.BoolVar(&c.plain, "plain", false, "Print without colors")
}

func (c *sparkCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, _, err := c.load(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := printSpark(os.Stdout, s, c.cols, c.plain); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func printSpark(w io.Writer, s chart.Series, cols int, plain bool) error {
	r, ok := chart.NewReadout(s, chart.ScrubState{}, *currency)
	if !ok {
		return fmt.Errorf("cannot draw an empty series")
	}
	spark := renderer.SparkText(s, cols)
	if !plain {
		spark = renderer.Spark(s, cols, style(chart.Sparkline))
	}
	_, err := fmt.Fprintf(w, "%s %s %s\n", spark, r.Value, r.Performance.Percent().SignedString())
	return err
}
