package trace

import (
	"image"
	"image/color"
)

// Pixmap is an owned, read-only copy of a reference image in straight
// (non-premultiplied) RGBA. All accessors are bounds-checked: reads outside the
// image return the zero color instead of touching foreign memory.
//
// A Pixmap is created once per tracing session and released when the session
// ends. After Release the pixmap reports zero dimensions.
type Pixmap struct {
	width  int
	height int
	pix    []color.NRGBA
}

// NewPixmap copies img into a new Pixmap.
//
// Returns ErrEmptyImage if img is nil or has zero width or height.
func NewPixmap(img image.Image) (*Pixmap, error) {
	if img == nil {
		return nil, ErrEmptyImage
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyImage
	}

	pm := &Pixmap{
		width:  w,
		height: h,
		pix:    make([]color.NRGBA, w*h),
	}

	// Fast path for the formats produced by the PNG decoder and pkg/shapes.
	switch src := img.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := 0; x < w; x++ {
				i := x * 4
				pm.pix[y*w+x] = color.NRGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]}
			}
		}
		return pm, nil
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			pm.pix[y*w+x] = c
		}
	}
	return pm, nil
}

// Width returns the pixmap width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the pixmap height in pixels.
func (p *Pixmap) Height() int { return p.height }

// InBounds reports whether (x, y) addresses a pixel of the pixmap.
func (p *Pixmap) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < p.width && y < p.height
}

// At returns the pixel at (x, y), or the zero (fully transparent) color when
// the position is out of bounds.
func (p *Pixmap) At(x, y int) color.NRGBA {
	if !p.InBounds(x, y) {
		return color.NRGBA{}
	}
	return p.pix[y*p.width+x]
}

// Release drops the pixel buffer.
func (p *Pixmap) Release() {
	p.pix = nil
	p.width = 0
	p.height = 0
}
