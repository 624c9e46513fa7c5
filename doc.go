// Package chart computes the geometry of animated balance and performance
// line charts. It is a pure engine: given an immutable series of dated
// samples, a drawing rectangle and a reveal progress, it returns the paths a
// rendering surface strokes and fills. It never draws, never blocks and keeps
// no state between calls, except for the Scrubber which turns a pointer event
// stream into a scrub position.
//
// The engine supports two variants:
//   - Sparkline: a compact axis-free chart built from straight segments.
//   - Interactive: a smooth chart built from Catmull-Rom derived cubic
//     segments, inspected by pressing and dragging ("scrubbing").
//
// The main building blocks are:
//   - Bounds: the [min,max] value range and vertical normalization.
//   - Strategy: Linear and Smooth curve builders turning canvas points into a Path.
//   - Path.Reveal: the progressively drawn part of a path for a progress in [0,1].
//   - Gaps: segments bordering interpolated samples, drawn as a distinct overlay.
//   - Scrubber: the Idle/Armed/Active state machine resolving a scrubbed sample.
//   - Chart.Render: the pure function tying them together into a Frame.
//
// Degenerate inputs never fail: an empty series renders nothing, a single
// sample renders a centered marker and a flat series renders on the midline.
package chart
