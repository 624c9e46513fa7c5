package renderer

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/etnz/chart"
	"golang.org/x/net/html"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	gradientID   = "fill-gradient"
)

type createOptions struct {
	inside *html.Node
	style  map[string]string
	attr   []html.Attribute
}

func createSVG(tag string, o createOptions) *html.Node {
	e := &html.Node{
		Type:      html.ElementNode,
		Data:      tag,
		Namespace: "svg",
	}
	if o.inside != nil {
		o.inside.AppendChild(e)
	}
	if len(o.attr) > 0 {
		e.Attr = append(e.Attr, o.attr...)
	}
	if len(o.style) > 0 {
		e.Attr = append(e.Attr, style(o.style))
	}
	return e
}

// style returns a style attribute with sorted keys, so that the output is
// stable.
func style(m map[string]string) html.Attribute {
	ls := make([]string, 0, len(m))
	for k := range m {
		ls = append(ls, k)
	}
	sort.Strings(ls)
	var s strings.Builder
	for _, k := range ls {
		s.WriteString(k)
		s.WriteByte(':')
		s.WriteString(m[k])
		s.WriteByte(';')
	}
	return html.Attribute{Key: "style", Val: s.String()}
}

func num(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func opacity(v float64) string { return num(clampOpacity(v)) }

// SVG writes f as a standalone SVG document.
func SVG(w io.Writer, f chart.Frame, s Style) error {
	if err := html.Render(w, SVGNode(f, s)); err != nil {
		return fmt.Errorf("cannot render svg: %w", err)
	}
	return nil
}

// SVGNode returns the svg element drawing f, to be embedded in a larger
// document.
func SVGNode(f chart.Frame, s Style) *html.Node {
	root := createSVG("svg", createOptions{
		attr: []html.Attribute{
			{Key: "xmlns", Val: svgNamespace},
			{Key: "width", Val: num(f.Rect.Width)},
			{Key: "height", Val: num(f.Rect.Height)},
			{Key: "viewBox", Val: fmt.Sprintf("0 0 %s %s", num(f.Rect.Width), num(f.Rect.Height))},
		},
	})
	if s.Background != "" {
		createSVG("rect", createOptions{
			inside: root,
			attr: []html.Attribute{
				{Key: "class", Val: "background"},
				{Key: "width", Val: "100%"},
				{Key: "height", Val: "100%"},
				{Key: "fill", Val: s.Background},
			},
		})
	}

	if f.Marker != nil {
		makeDot(root, "marker", *f.Marker, s.Marker, s.Line)
		return root
	}
	if f.Stroke.Empty() {
		return root
	}

	if !f.Fill.Empty() && s.Fill != "" {
		defs := createSVG("defs", createOptions{inside: root})
		makeGradient(defs, s.Fill, s.FillOpacity)
		makePath(root, f.Fill.String(), pathOpts{className: "fill", fill: "url(#" + gradientID + ")"})
	}
	makePath(root, f.Stroke.String(), pathOpts{className: "line", stroke: s.Line, strokeWidth: s.Width})
	if !f.Gaps.Empty() {
		makePath(root, f.Gaps.String(), pathOpts{
			className:   "gap",
			stroke:      s.GapColor,
			strokeWidth: s.Width + 1,
			dash:        s.GapDash,
			opacity:     s.GapOpacity,
		})
	}
	if f.End != nil {
		makeDot(root, "end", *f.End, s.Marker, s.Line)
	}
	if c := f.Crosshair; c != nil {
		createSVG("line", createOptions{
			inside: root,
			attr: []html.Attribute{
				{Key: "class", Val: "crosshair"},
				{Key: "x1", Val: num(c.X)},
				{Key: "x2", Val: num(c.X)},
				{Key: "y1", Val: "0"},
				{Key: "y2", Val: num(f.Rect.Height)},
			},
			style: map[string]string{
				"stroke":       s.Crosshair,
				"stroke-width": "1",
			},
		})
		makeDot(root, "crosshair-marker", c.At, s.Marker, s.Line)
	}
	return root
}

// makeGradient adds to defs the vertical gradient used to fill the area
// under the line.
func makeGradient(defs *html.Node, color string, top float64) {
	grad := createSVG("linearGradient", createOptions{
		inside: defs,
		attr: []html.Attribute{
			{Key: "id", Val: gradientID},
			{Key: "x1", Val: "0"},
			{Key: "x2", Val: "0"},
			{Key: "y1", Val: "0"},
			{Key: "y2", Val: "1"},
		},
	})
	for _, stop := range []struct {
		offset  string
		opacity float64
	}{
		{"0%", top},
		{"100%", 0},
	} {
		createSVG("stop", createOptions{
			inside: grad,
			style:  map[string]string{"stop-color": color},
			attr: []html.Attribute{
				{Key: "offset", Val: stop.offset},
				{Key: "stop-opacity", Val: opacity(stop.opacity)},
			},
		})
	}
}

type pathOpts struct {
	className, stroke, fill string
	strokeWidth             float64
	dash                    []float64
	opacity                 float64 // 0 is opaque
}

func makePath(parent *html.Node, d string, o pathOpts) *html.Node {
	if o.stroke == "" {
		o.stroke = "none"
	}
	if o.fill == "" {
		o.fill = "none"
	}
	st := map[string]string{
		"stroke": o.stroke,
		"fill":   o.fill,
	}
	if o.stroke != "none" {
		st["stroke-width"] = num(o.strokeWidth)
		st["stroke-linecap"] = "round"
		st["stroke-linejoin"] = "round"
	}
	if len(o.dash) > 0 {
		dash := make([]string, len(o.dash))
		for i, v := range o.dash {
			dash[i] = num(v)
		}
		st["stroke-dasharray"] = strings.Join(dash, " ")
		st["stroke-linecap"] = "butt"
	}
	if o.opacity > 0 {
		st["stroke-opacity"] = opacity(o.opacity)
	}
	return createSVG("path", createOptions{
		inside: parent,
		attr: []html.Attribute{
			{Key: "class", Val: o.className},
			{Key: "d", Val: d},
		},
		style: st,
	})
}

func makeDot(parent *html.Node, className string, at chart.Point, radius float64, fill string) *html.Node {
	return createSVG("circle", createOptions{
		inside: parent,
		attr: []html.Attribute{
			{Key: "class", Val: className},
			{Key: "cx", Val: num(at.X)},
			{Key: "cy", Val: num(at.Y)},
			{Key: "r", Val: num(radius)},
			{Key: "fill", Val: fill},
		},
	})
}
