package scenes

import (
	"image/color"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	screenW = float64(config.GameWindowWidth)
	screenH = float64(config.GameWindowHeight)

	gridStep = 40
)

// Arcade palette.
var (
	colorBackground = color.RGBA{237, 27, 118, 255}
	colorGrid       = color.NRGBA{255, 105, 180, 80}
	colorWhite      = color.RGBA{255, 255, 255, 255}
	colorBlack      = color.RGBA{0, 0, 0, 255}
	colorGold       = color.RGBA{255, 203, 0, 255}
	colorGreen      = color.RGBA{0, 228, 48, 255}
	colorRed        = color.RGBA{230, 41, 55, 255}
	colorGray       = color.RGBA{130, 130, 130, 255}
	colorLightGray  = color.RGBA{200, 200, 200, 255}
	colorDarkPurple = color.RGBA{112, 31, 126, 255}
	colorBrown      = color.RGBA{127, 106, 79, 255}
	colorSkyBlue    = color.RGBA{102, 191, 255, 255}
	colorScratch    = color.NRGBA{80, 80, 80, 230}
	colorShade      = color.NRGBA{0, 0, 0, 150}
)

// titleCase formats identifiers such as shape names for display.
var titleCase = cases.Title(language.English)

// drawBackground fills the screen with the arcade pink and its grid.
func drawBackground(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	for x := gridStep; x < config.GameWindowWidth; x += gridStep {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(screenH), 1, colorGrid, false)
	}
	for y := gridStep; y < config.GameWindowHeight; y += gridStep {
		vector.StrokeLine(screen, 0, float32(y), float32(screenW), float32(y), 1, colorGrid, false)
	}
}

// drawTitle draws centred outlined text at y.
func drawTitle(screen *ebiten.Image, s string, y, size float64, clr color.Color) {
	utils.DrawOutlinedText(screen, s, utils.BoldFace(size), screenW/2, y, clr, colorBlack, text.AlignCenter)
}

// drawLabel draws plain text.
func drawLabel(screen *ebiten.Image, s string, x, y, size float64, clr color.Color, align text.Align) {
	utils.DrawText(screen, s, utils.Face(size), x, y, clr, align)
}

// holdVerb describes how the player presses on the outline.
func holdVerb() string {
	if utils.IsMobile() {
		return "Keep your finger"
	}
	return "Hold the mouse button"
}

// drawHint draws a key hint line at the bottom of the screen.
func drawHint(screen *ebiten.Image, s string) {
	drawLabel(screen, s, screenW/2, screenH-36, 18, colorWhite, text.AlignCenter)
}

// drawProgressBar draws a frame with a filled portion.
// fraction is clamped to [0, 1].
func drawProgressBar(screen *ebiten.Image, x, y, w, h, fraction float64, fill color.Color) {
	fraction = clamp01(fraction)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), colorLightGray, false)
	if fraction > 0 {
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*fraction), float32(h), fill, false)
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 2, colorBlack, false)
}

// drawHUDProgress draws the standard progress bar above the bottom edge.
func drawHUDProgress(screen *ebiten.Image, fraction float64, fill color.Color) {
	w := screenW - 2*config.ProgressBarMargin
	y := screenH - config.ProgressBarBottom
	drawProgressBar(screen, config.ProgressBarMargin, y, w, config.ProgressBarHeight, fraction, fill)
}

// drawBanner shades the screen and shows a result message.
func drawBanner(screen *ebiten.Image, title string, clr color.Color, detail string) {
	vector.DrawFilledRect(screen, 0, float32(screenH/2-90), float32(screenW), 180, colorShade, false)
	drawTitle(screen, title, screenH/2-70, 56, clr)
	if detail != "" {
		drawLabel(screen, detail, screenW/2, screenH/2+10, 22, colorWhite, text.AlignCenter)
	}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
