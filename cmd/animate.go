package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/chart"
	"github.com/etnz/chart/renderer"
	"github.com/google/subcommands"
)

type animateCmd struct {
	seriesFlags
	kind     string
	dir      string
	format   string
	fps      int
	duration time.Duration
	ease     string
}

func (*animateCmd) Name() string     { return "animate" }
func (*animateCmd) Synopsis() string { return "render the reveal animation of a series as a sequence of frames" }
func (*animateCmd) Usage() string {
	return `chartctl animate -o <dir> [-fps <n>] [-duration <d>] [-ease linear|cubic] [-format png|svg] <series>

  Renders every frame of the reveal animation, from an empty chart to the
  complete line, into <dir>/frame-000.png, <dir>/frame-001.png, ...
`
}

func (c *animateCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.SetFlags(f)
	f.StringVar(&c.kind, "kind", chart.Interactive.String(), "Chart kind: interactive or sparkline")
	f.StringVar(&c.dir, "o", "", "Output directory, created if needed")
	f.StringVar(&c.format, "format", "png", "Frame format: png or svg")
	f.IntVar(&c.fps, "fps", 30, "Frames per second")
	f.DurationVar(&c.duration, "duration", chart.DefaultRevealDuration, "Duration of the animation")
	f.StringVar(&c.ease, "ease", "cubic", "Easing of the animation: linear or cubic")
}

// timeline returns the animation timeline of the flags.
func (c *animateCmd) timeline() (chart.Timeline, error) {
	tl := chart.Timeline{Duration: c.duration}
	switch c.ease {
	case "linear":
	case "cubic":
		tl.Easing = chart.EaseOutCubic
	default:
		return tl, fmt.Errorf("unknown easing %q want linear or cubic", c.ease)
	}
	return tl, nil
}

func (c *animateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.dir == "" {
		fmt.Fprintln(os.Stderr, "Error: the output directory -o is required")
		return subcommands.ExitUsageError
	}
	if c.format != "png" && c.format != "svg" {
		fmt.Fprintf(os.Stderr, "Error: unknown frame format %q want png or svg\n", c.format)
		return subcommands.ExitUsageError
	}
	kind, err := chart.ParseKind(c.kind)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	tl, err := c.timeline()
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

	if err := os.MkdirAll(c.dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output directory: %v\n", err)
		return subcommands.ExitFailure
	}
	n, err := animate(c.dir, c.format, chart.New(opts), s, size(), tl, c.fps, style(kind))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing frames: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote %d frames to %s\n", n, c.dir)
	return subcommands.ExitSuccess
}

// animate writes one image per frame of tl into dir, and returns the number
// of frames written.
func animate(dir, format string, c chart.Chart, s chart.Series, sz chart.Size, tl chart.Timeline, fps int, st renderer.Style) (int, error) {
	n := 0
	for progress := range tl.Frames(fps) {
		frame := c.Render(chart.Input{Series: s, Size: sz, Progress: progress})
		filename := filepath.Join(dir, fmt.Sprintf("frame-%03d.%s", n, format))
		if err := writeFrame(filename, frame, st); err != nil {
			return n, err
		}
		vlogf("write-frame name=%q progress=%.3f", filename, progress)
		n++
	}
	return n, nil
}
