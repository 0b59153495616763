package shapes

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/vector"
)

// Default palette. The honey fill is well above the default darkness
// threshold (110) and the burnt outline well below it.
var (
	HoneyColor    = color.NRGBA{R: 232, G: 178, B: 92, A: 255}
	OutlineColor  = color.NRGBA{R: 92, G: 52, B: 18, A: 255}
	BoundaryColor = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	InnerColor    = color.NRGBA{R: 250, G: 236, B: 140, A: 255}
)

// Style controls how a cookie is rasterised.
type Style struct {
	// Size is the width and height of the output image in pixels.
	Size int
	// Thickness is the outline stroke width in pixels.
	Thickness float64
	Fill      color.NRGBA
	Outline   color.NRGBA
}

// DefaultStyle returns the Dalgona cookie style for the given size.
func DefaultStyle(size int) Style {
	return Style{
		Size:      size,
		Thickness: math.Max(3, float64(size)/60),
		Fill:      HoneyColor,
		Outline:   OutlineColor,
	}
}

// Cookie renders a honey disc with the outline of k pressed into it.
// Pixels outside the disc are fully transparent.
func Cookie(k Kind, style Style) *image.NRGBA {
	size := max(style.Size, 8)
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	tf := newTransform(size)

	disc := regularPolygon(96, 0.95, 0)
	c := newCanvas(img)
	c.fillPolygon(tf.apply(disc.points))
	c.draw(style.Fill)

	c.strokePaths(tf, outline(k), style.Thickness)
	c.draw(style.Outline)

	return img
}

// Boundary renders the two layers of the boundary game: a thick dark outline of
// k on a transparent background, and a bright filled copy shrunk inside it.
// Both images have the same size and are meant to be drawn at the same origin.
func Boundary(k Kind, size int, thickness float64) (boundary, inner *image.NRGBA) {
	size = max(size, 8)
	tf := newTransform(size)
	paths := outline(k)

	boundary = image.NewNRGBA(image.Rect(0, 0, size, size))
	c := newCanvas(boundary)
	c.strokePaths(tf, paths, thickness)
	c.draw(BoundaryColor)

	inner = image.NewNRGBA(image.Rect(0, 0, size, size))
	shrunk := transform{scale: tf.scale * 0.8, offset: tf.offset}
	c = newCanvas(inner)
	for _, p := range paths {
		if p.closed {
			c.fillPolygon(shrunk.apply(p.points))
		}
	}
	c.draw(InnerColor)

	return boundary, inner
}

// transform maps unit space onto pixel space.
type transform struct {
	scale  float64
	offset float64
}

func newTransform(size int) transform {
	half := float64(size) / 2
	return transform{scale: half, offset: half}
}

func (t transform) apply(pts []point) []point {
	out := make([]point, len(pts))
	for i, p := range pts {
		out[i] = point{p.X*t.scale + t.offset, p.Y*t.scale + t.offset}
	}
	return out
}

// canvas accumulates polygons in a rasterizer and composites them in one pass.
// Every polygon is emitted with the same winding so overlapping pieces add up
// instead of cancelling.
type canvas struct {
	dst *image.NRGBA
	z   *vector.Rasterizer
}

func newCanvas(dst *image.NRGBA) *canvas {
	b := dst.Bounds()
	return &canvas{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

func (c *canvas) fillPolygon(pts []point) {
	if len(pts) < 3 {
		return
	}
	if signedArea(pts) < 0 {
		rev := make([]point, len(pts))
		for i, p := range pts {
			rev[len(pts)-1-i] = p
		}
		pts = rev
	}
	c.z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		c.z.LineTo(float32(p.X), float32(p.Y))
	}
	c.z.ClosePath()
}

// strokePaths outlines every path with quads per segment and round joints.
func (c *canvas) strokePaths(tf transform, paths []path, thickness float64) {
	hw := math.Max(thickness, 1) / 2
	for _, p := range paths {
		pts := tf.apply(p.points)
		n := len(pts)
		segments := n - 1
		if p.closed {
			segments = n
		}
		for i := 0; i < segments; i++ {
			a, b := pts[i], pts[(i+1)%n]
			c.fillPolygon(segmentQuad(a, b, hw))
		}
		for _, v := range pts {
			c.fillPolygon(disc(v, hw))
		}
	}
}

// draw composites the accumulated coverage in col and resets the rasterizer.
func (c *canvas) draw(col color.NRGBA) {
	c.z.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col), image.Point{})
	b := c.dst.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
}

func segmentQuad(a, b point, hw float64) []point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return nil
	}
	nx, ny := -dy/l*hw, dx/l*hw
	return []point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	}
}

func disc(center point, r float64) []point {
	const n = 12
	pts := make([]point, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / n
		pts[i] = point{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)}
	}
	return pts
}

func signedArea(pts []point) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].X*pts[j].Y - pts[j].X*pts[i].Y
	}
	return area / 2
}
