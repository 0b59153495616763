package trace

import (
	"image"
	"image/color"
	"testing"
)

func TestMaskSetIsMonotonic(t *testing.T) {
	m := NewMask(3, 2)

	if !m.Set(2, 1) {
		t.Fatal("Set(2, 1) on a fresh mask returned false")
	}
	if m.Set(2, 1) {
		t.Error("Set(2, 1) twice reported a new bit")
	}
	if m.Count() != 1 {
		t.Errorf("Count() = %d, want 1", m.Count())
	}
	if !m.Get(2, 1) {
		t.Error("Get(2, 1) = false after Set")
	}
}

func TestMaskOutOfBounds(t *testing.T) {
	m := NewMask(3, 2)

	for _, p := range []image.Point{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		if m.Set(p.X, p.Y) {
			t.Errorf("Set(%d, %d) out of bounds returned true", p.X, p.Y)
		}
		if m.Get(p.X, p.Y) {
			t.Errorf("Get(%d, %d) out of bounds returned true", p.X, p.Y)
		}
	}
	if m.Count() != 0 {
		t.Errorf("Count() = %d, want 0", m.Count())
	}
}

func TestMaskEachAndRelease(t *testing.T) {
	m := NewMask(4, 4)
	m.Set(1, 0)
	m.Set(3, 2)

	var got []image.Point
	m.Each(func(x, y int) { got = append(got, image.Pt(x, y)) })
	if len(got) != 2 || got[0] != image.Pt(1, 0) || got[1] != image.Pt(3, 2) {
		t.Errorf("Each() visited %v, want [(1,0) (3,2)]", got)
	}

	m.Release()
	if m.Width() != 0 || m.Height() != 0 {
		t.Errorf("size after Release() = %dx%d", m.Width(), m.Height())
	}
	if m.Get(1, 0) {
		t.Error("Get() after Release() returned true")
	}
	if m.Count() != 2 {
		t.Errorf("Count() after Release() = %d, want 2", m.Count())
	}
}

func TestNewMaskNonPositiveSize(t *testing.T) {
	m := NewMask(0, 5)
	if m.InBounds(0, 0) {
		t.Error("empty mask reports (0,0) in bounds")
	}
}

func TestPixmapCopiesSubImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	src.SetNRGBA(2, 3, color.NRGBA{R: 9, G: 8, B: 7, A: 255})
	sub := src.SubImage(image.Rect(1, 1, 4, 4))

	pm, err := NewPixmap(sub)
	if err != nil {
		t.Fatalf("NewPixmap() error: %v", err)
	}
	if pm.Width() != 3 || pm.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", pm.Width(), pm.Height())
	}
	if got := pm.At(1, 2); got != (color.NRGBA{R: 9, G: 8, B: 7, A: 255}) {
		t.Errorf("At(1, 2) = %v, want the pixel at (2,3) of the source", got)
	}
	if got := pm.At(5, 5); got != (color.NRGBA{}) {
		t.Errorf("At(5, 5) = %v, want zero color", got)
	}

	// The copy must not alias the source.
	src.SetNRGBA(2, 3, color.NRGBA{})
	if pm.At(1, 2).A != 255 {
		t.Error("Pixmap aliases the source image")
	}
}

func TestPixmapConvertsPremultipliedRGBA(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 50, G: 50, B: 50, A: 128})

	pm, err := NewPixmap(src)
	if err != nil {
		t.Fatalf("NewPixmap() error: %v", err)
	}
	got := pm.At(0, 0)
	if got.A != 128 {
		t.Errorf("alpha = %d, want 128", got.A)
	}
	// Straight alpha: 50/128*255 ≈ 99.
	if got.R < 98 || got.R > 100 {
		t.Errorf("red = %d, want about 99 after un-premultiplying", got.R)
	}
}

func TestClassifier(t *testing.T) {
	cl := Classifier{Threshold: 110}

	tests := []struct {
		name        string
		c           color.NRGBA
		wantVisible bool
		wantOutline bool
	}{
		{"black", color.NRGBA{A: 255}, true, true},
		{"white", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, true, false},
		{"transparent black", color.NRGBA{}, false, false},
		{"pure blue is dark", color.NRGBA{B: 255, A: 255}, true, true},
		{"pure green is bright", color.NRGBA{G: 255, A: 255}, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cl.IsVisible(tt.c); got != tt.wantVisible {
				t.Errorf("IsVisible() = %v, want %v", got, tt.wantVisible)
			}
			if got := cl.IsOutline(tt.c); got != tt.wantOutline {
				t.Errorf("IsOutline() = %v, want %v", got, tt.wantOutline)
			}
		})
	}
}
