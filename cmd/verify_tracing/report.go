package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	svg "github.com/ajstarks/svgo"
	"github.com/gotranspile/gotrace"

	"github.com/decker502/squidarcade/pkg/trace"
)

// outlineMask returns the outline pixels of t as black on white, the layout
// gotrace expects.
func outlineMask(t *trace.Tracker) *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, t.Width(), t.Height()))
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			c := color.Gray{Y: 255}
			if t.IsOutline(x, y) {
				c.Y = 0
			}
			mask.SetGray(x, y, c)
		}
	}
	return mask
}

// writeOutlineSVG vectorises the outline pixels of t.
func writeOutlineSVG(path string, t *trace.Tracker) error {
	mask := outlineMask(t)
	bm := gotrace.BitmapFromGray(mask, nil)
	paths, err := gotrace.Trace(bm, nil)
	if err != nil {
		return fmt.Errorf("failed to trace outline: %w", err)
	}

	var buf bytes.Buffer
	sz := mask.Bounds().Size()
	if err := gotrace.Render("svg", nil, &buf, paths, sz.X, sz.Y); err != nil {
		return fmt.Errorf("failed to render outline: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

// span is a horizontal run of pixels on one row.
type span struct{ x, y, w int }

// spans collects the horizontal runs of pixels accepted by pred.
func spans(w, h int, pred func(x, y int) bool) []span {
	var out []span
	for y := 0; y < h; y++ {
		start := -1
		for x := 0; x <= w; x++ {
			in := x < w && pred(x, y)
			switch {
			case in && start < 0:
				start = x
			case !in && start >= 0:
				out = append(out, span{start, y, x - start})
				start = -1
			}
		}
	}
	return out
}

// writeCoverageSVG draws the outline in grey and the scratched pixels in red.
func writeCoverageSVG(w io.Writer, t *trace.Tracker, r report) {
	width, height := t.Width(), t.Height()
	canvas := svg.New(w)
	canvas.Start(width, height+24)
	canvas.Title("tracing coverage")
	canvas.Rect(0, 0, width, height, "fill:white")

	canvas.Gstyle("fill:rgb(180,180,180)")
	for _, s := range spans(width, height, t.IsOutline) {
		canvas.Rect(s.x, s.y, s.w, 1)
	}
	canvas.Gend()

	canvas.Gstyle("fill:rgb(230,41,55)")
	for _, s := range spans(width, height, t.IsScratched) {
		canvas.Rect(s.x, s.y, s.w, 1)
	}
	canvas.Gend()

	canvas.Text(4, height+18, fmt.Sprintf("%s: %.1f%% traced, %d cracks", r.Outcome, 100*r.Progress, r.Cracks), "font-family:sans-serif;font-size:14px")
	canvas.End()
}
