package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/etnz/chart"
	"github.com/google/subcommands"
)

type scrubCmd struct {
	seriesFlags
	events string
}

func (*scrubCmd) Name() string     { return "scrub" }
func (*scrubCmd) Synopsis() string { return "replay a pointer gesture over a chart and print the scrub signals" }
func (*scrubCmd) Usage() string {
	return `chartctl scrub -events <file.jsonl> <series>

  Replays a recorded gesture over the chart of a series and prints, for each
  event, the signal emitted and the value displayed.

  The gesture is a JSONL file of events, times in milliseconds:

    {"kind":"down","at":0,"x":120,"y":40}
    {"kind":"tick","at":160}
    {"kind":"move","at":200,"x":180,"y":42}
    {"kind":"resize","at":250,"width":400,"height":200}
    {"kind":"up","at":300}
`
}

func (c *scrubCmd) SetFlags(f *flag.FlagSet) {
	c.seriesFlags.SetFlags(f)
	f.StringVar(&c.events, "events", "", "JSONL file of pointer events, - for the standard input")
}

func (c *scrubCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.events == "" {
		fmt.Fprintln(os.Stderr, "Error: the events file -events is required")
		return subcommands.ExitUsageError
	}
	opts, err := options(chart.Interactive)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	s, _, err := c.load(ctx, f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading series: %v\n", err)
		return subcommands.ExitFailure
	}

	var r io.Reader = os.Stdin
	if c.events != "-" {
		file, err := os.Open(c.events)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening events: %v\n", err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}
	events, err := decodeEvents(r, c.events)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	replay(os.Stdout, chart.NewScrubber(opts, s, size()), s, events, *currency)
	return subcommands.ExitSuccess
}

// event is a recorded gesture event. Besides pointer events it can be a
// "tick", the passing of time without pointer event, or a "resize" of the
// chart.
type event struct {
	Kind   string  `json:"kind"`
	At     float64 `json:"at"` // milliseconds
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (e event) at() time.Duration { return time.Duration(e.At * float64(time.Millisecond)) }

var pointerKinds = map[string]chart.PointerKind{
	"down":   chart.Down,
	"move":   chart.Move,
	"up":     chart.Up,
	"cancel": chart.Cancel,
}

// decodeEvents decodes a JSONL gesture. filename is for error message only.
func decodeEvents(r io.Reader, filename string) ([]event, error) {
	var events []event
	scanner := bufio.NewScanner(r)
	i := 0
	for scanner.Scan() {
		i++
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var e event
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("parse error %s:%v: not a correct event: %w", filename, i, err)
		}
		switch e.Kind {
		case "down", "move", "up", "cancel", "tick", "resize":
		default:
			return nil, fmt.Errorf("parse error %s:%v: unknown event kind %q", filename, i, e.Kind)
		}
		events = append(events, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", filename, err)
	}
	return events, nil
}

// replay feeds events to sc and prints one line per event: the event, the
// signal and the displayed value.
func replay(w io.Writer, sc *chart.Scrubber, s chart.Series, events []event, cur string) {
	for _, e := range events {
		var sig chart.Signal
		switch e.Kind {
		case "tick":
			sig = sc.Tick(e.at())
		case "resize":
			sig = sc.Reset(s, chart.Size{Width: e.Width, Height: e.Height})
		default:
			sig = sc.Handle(chart.PointerEvent{Kind: pointerKinds[e.Kind], At: e.at(), Pos: chart.Pt(e.X, e.Y)})
		}

		fmt.Fprintf(w, "%vms %s %s %s", e.At, e.Kind, sig, sc.State())
		if r, ok := chart.NewReadout(s, sc.Scrub(), cur); ok {
			fmt.Fprintf(w, " %s %s", r.On, r.Value)
			if r.Estimated {
				fmt.Fprint(w, " (estimated)")
			}
		}
		fmt.Fprintln(w)
	}
}
