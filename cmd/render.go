package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/chart"
	"github.com/etnz/chart/renderer"
	"github.com/google/subcommands"
)

type renderCmd struct {
	seriesFlags
	kind     string
	output   string
	progress float64
	scrub    float64
}

func (*renderCmd) Name() string     { return "render" }
func (*renderCmd) Synopsis() string { return "render a series as an SVG or PNG chart" }
func (*renderCmd) Usage() string {
	return `chartctl render [-kind interactive|sparkline] [-o <file>] [-progress <p>] [-scrub <x>] <series>

  Renders one frame of the chart of a series. The output format is chosen by
  the extension of -o, .svg or .png. Without -o the SVG is written to the
  standard output.

  The series is a .jsonl, .csv, or .json file with -jsonpath.
`
}

func (c *renderCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.SetFlags(f)
	f.StringVar(&c.kind, "kind", chart.Interactive.String(), "Chart kind: interactive or sparkline")
	f.StringVar(&c.output, "o", "", "Output file, .svg or .png")
	f.Float64Var(&c.progress, "progress", 1, "Reveal progress in [0,1]")
	f.Float64Var(&c.scrub, "scrub", -1, "Show the crosshair at this normalized position in [0,1], as if the chart was pressed there")
}

func (c *renderCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := chart.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	opts, err := options(kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, _, err := c.load(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	in := chart.Input{Series: s, Size: size(), Progress: c.progress}
	if c.scrub >= 0 {
		in.Scrub = pressAt(opts, s, in.Size, c.scrub)
	}
	frame := chart.New(opts).Render(in)
	vlogf("render-frame samples=%d progress=%v complete=%v", len(s), c.progress, frame.Complete)

	if err := writeFrame(c.output, frame, style(kind)); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing chart: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// pressAt returns the scrub state of a press held at the normalized position nx.
func pressAt(opts chart.Options, s chart.Series, sz chart.Size, nx float64) chart.ScrubState {
	sc := chart.NewScrubber(opts, s, sz)
	r := opts.Rect(sz)
	sc.Handle(chart.PointerEvent{Kind: chart.Down, Pos: chart.Pt(r.X(nx), r.Height/2)})
	if sc.Tick(opts.ActivationDelay) != chart.Started {
		vlogf("ignore-scrub samples=%d reason=%q", len(s), "cannot scrub fewer than 2 samples")
	}
	return sc.Scrub()
}

// writeFrame writes frame to filename, in the format of its extension. An
// empty filename writes SVG to the standard output.
func writeFrame(filename string, frame chart.Frame, st renderer.Style) error {
	if filename == "" || filename == "-" {
		return renderer.SVG(os.Stdout, frame, st)
	}
	var encode func(io.Writer, chart.Frame, renderer.Style) error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		encode = renderer.SVG
	case ".png":
		encode = renderer.PNG
	default:
		return fmt.Errorf("cannot write %q: unknown image format %q, want .svg or .png", filename, ext)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", filename, err)
	}
	if err := encode(f, frame, st); err != nil {
		f.Close()
		return fmt.Errorf("cannot write %q: %w", filename, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("cannot close %q: %w", filename, err)
	}
	vlogf("write-image name=%q", filename)
	return nil
}
