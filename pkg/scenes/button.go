package scenes

import (
	"image/color"

	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// button is a clickable rectangle with a centred label.
type button struct {
	X, Y, W, H float64
	Label      string
	Color      color.Color
	Disabled   bool

	hovered bool
}

// contains reports whether the logical point lies inside the button.
func (b *button) contains(x, y int) bool {
	return utils.PointInRect(float64(x), float64(y), b.X, b.Y, b.W, b.H)
}

// update refreshes the hover state and reports a click or tap on the button.
//
// Parameters:
//   - px, py: current pointer position
//   - clicked, cx, cy: result of utils.IsJustTouchedOrClicked for this frame
func (b *button) update(px, py int, clicked bool, cx, cy int) bool {
	if b.Disabled {
		b.hovered = false
		return false
	}
	b.hovered = b.contains(px, py)
	return clicked && b.contains(cx, cy)
}

func (b *button) draw(screen *ebiten.Image) {
	fill := b.Color
	if fill == nil {
		fill = colorDarkPurple
	}
	switch {
	case b.Disabled:
		fill = colorGray
	case b.hovered:
		fill = colorGold
	}
	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), fill, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 3, colorBlack, false)

	face := utils.Face(22)
	_, lh := text.Measure(b.Label, face, 0)
	labelColor := color.Color(colorWhite)
	if b.hovered {
		labelColor = colorBlack
	}
	utils.DrawText(screen, b.Label, face, b.X+b.W/2, b.Y+(b.H-lh)/2, labelColor, text.AlignCenter)
}

// pointer bundles the per-frame pointer input shared by every button.
type pointer struct {
	X, Y           int
	Clicked        bool
	ClickX, ClickY int
}

func readPointer() pointer {
	var p pointer
	_, p.X, p.Y = utils.GetPointerState()
	p.Clicked, p.ClickX, p.ClickY = utils.IsJustTouchedOrClicked()
	return p
}

func (p pointer) hit(b *button) bool {
	return b.update(p.X, p.Y, p.Clicked, p.ClickX, p.ClickY)
}
