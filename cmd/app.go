// Package cmd implements the CLI application to render and inspect charts.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/etnz/chart"
	"github.com/etnz/chart/renderer"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the application, in the order of the help.
var Commands = []subcommands.Command{
	&renderCmd{},
	&animateCmd{},
	&sparkCmd{},
	&scrubCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Every global flag defaults to its environment variable, see extension.go.

var (
	padding  = flag.Float64("padding", envFloat(EnvPadding, chart.DefaultPadding), "Inner padding of the chart, in pixels")
	tension  = flag.Float64("tension", envFloat(EnvTension, chart.DefaultTension), "Tension of the smooth curve")
	policy   = flag.String("policy", envString(EnvPolicy, chart.Nearest.String()), "Scrub value resolution: nearest or blend")
	currency = flag.String("currency", envString(EnvCurrency, ""), "Currency of the values, e.g. EUR. Empty formats plain numbers.")
	width    = flag.Float64("width", envFloat(EnvWidth, 320), "Width of the chart, in pixels")
	height   = flag.Float64("height", envFloat(EnvHeight, 160), "Height of the chart, in pixels")
	CacheDir = flag.String("cache", envString(EnvCache, ""), "Directory caching series downloaded from URLs for the day. Empty uses the temporary directory.")
	Verbose  = flag.Bool("v", envBool(EnvVerbose, false), "Verbose logs")
)

// options returns the chart options of the global flags.
func options(kind chart.Kind) (chart.Options, error) {
	p, err := chart.ParsePolicy(*policy)
	if err != nil {
		return chart.Options{}, err
	}
	opts := chart.DefaultOptions()
	opts.Kind = kind
	opts.Padding = *padding
	opts.Tension = *tension
	opts.Policy = p
	return opts, nil
}

// size returns the chart size of the global flags.
func size() chart.Size { return chart.Size{Width: *width, Height: *height} }

// style returns the renderer style, with a thinner line for sparklines.
func style(kind chart.Kind) renderer.Style {
	s := renderer.DefaultStyle()
	if kind == chart.Sparkline {
		s.Width = 1.5
		s.Marker = 2.5
	}
	return s
}

// vlogf logs only in verbose mode.
func vlogf(format string, args ...any) {
	if *Verbose {
		log.Printf(format, args...)
	}
}

// seriesFlags are the flags common to commands reading a series.
type seriesFlags struct {
	jsonpath  string
	timeframe string
	fill      bool
}

func (c *seriesFlags) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.jsonpath, "jsonpath", "", "jsonpath expression selecting the samples in a .json file, e.g. $.data")
	f.StringVar(&c.timeframe, "timeframe", chart.All.String(), "Trailing window to display: 1W, 1M, 3M, 6M, 1Y, YTD or ALL")
	f.BoolVar(&c.fill, "fill", false, "Fill missing days with interpolated samples")
}

// load decodes the series file, or http(s) URL, named by the only argument.
func (c *seriesFlags) load(ctx context.Context, f *flag.FlagSet) (chart.Series, chart.Timeframe, error) {
	if f.NArg() != 1 {
		return nil, chart.All, fmt.Errorf("want exactly one series file got %d arguments", f.NArg())
	}
	tf, err := chart.ParseTimeframe(c.timeframe)
	if err != nil {
		return nil, tf, err
	}
	filename := f.Arg(0)
	var s chart.Series
	if chart.IsURL(filename) {
		s, err = chart.DecodeURL(ctx, chart.DailyClient(*CacheDir), filename, c.jsonpath)
	} else {
		s, err = chart.DecodeFile(filename, c.jsonpath)
	}
	if err != nil {
		return nil, tf, err
	}
	vlogf("decode-series name=%q samples=%d", filename, len(s))
	if c.fill {
		s = chart.FillGaps(s.History())
		vlogf("fill-gaps name=%q samples=%d", filename, len(s))
	}
	s = s.Timeframe(tf)
	vlogf("select-timeframe timeframe=%s samples=%d", tf, len(s))
	return s, tf, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

func envFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("ignore-env name=%s value=%q error=%q", key, v, err)
		return def
	}
	return f
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("ignore-env name=%s value=%q error=%q", key, v, err)
		return def
	}
	return b
}
