package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/minigames/bridge"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorGlass  = color.NRGBA{190, 235, 255, 170}
	colorBroken = color.NRGBA{120, 20, 30, 200}
)

// BridgeScene is the glass bridge: the player crosses row by row, choosing
// the left or right panel each time.
type BridgeScene struct {
	svc  *game.Services
	game *bridge.Game

	panelW, panelH float64
	pitch          float64
	gapX           float64
	top            float64
}

// NewBridgeScene creates the scene and rolls the bridge.
func NewBridgeScene(svc *game.Services) (*BridgeScene, error) {
	g, err := bridge.New(svc.Config.Bridge.Rows, svc.Rand)
	if err != nil {
		return nil, err
	}

	s := &BridgeScene{
		svc:    svc,
		game:   g,
		panelW: screenW * config.BridgePanelWidthRatio,
		panelH: screenH * config.BridgePanelHeightRatio,
		gapX:   screenW * config.BridgeGapRatio,
		top:    screenH * config.BridgeTopRatio,
	}
	gapY := screenH * config.BridgeGapRatio
	s.pitch = min(s.panelH+gapY, (screenH-200-s.top)/float64(g.Rows()))
	s.panelH = max(s.pitch-gapY, 8)
	return s, nil
}

// panelRect returns the screen rectangle of a panel. Row 0 is at the bottom.
func (s *BridgeScene) panelRect(row int, side bridge.Side) (x, y, w, h float64) {
	y = s.top + float64(s.game.Rows()-1-row)*s.pitch
	x = screenW/2 + s.gapX/2
	if side == bridge.Left {
		x = screenW/2 - s.gapX/2 - s.panelW
	}
	return x, y, s.panelW, s.panelH
}

// Update handles side selection and jumps.
func (s *BridgeScene) Update(deltaTime float64) {
	if backToMenu(s.svc, ebiten.KeyB) {
		return
	}
	if s.game.Over() {
		if utils.AnyKeyJustPressed(ebiten.KeyR) {
			s.game.Reset()
		}
		return
	}

	if utils.AnyKeyJustPressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		s.game.Select(bridge.Left)
	}
	if utils.AnyKeyJustPressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		s.game.Select(bridge.Right)
	}
	jump := utils.AnyKeyJustPressed(ebiten.KeySpace, ebiten.KeyEnter)

	if clicked, cx, cy := utils.IsJustTouchedOrClicked(); clicked {
		for _, side := range []bridge.Side{bridge.Left, bridge.Right} {
			x, y, w, h := s.panelRect(s.game.Row(), side)
			if utils.PointInRect(float64(cx), float64(cy), x, y, w, h) {
				s.game.Select(side)
				jump = true
			}
		}
	}

	if jump {
		s.step()
	}
}

func (s *BridgeScene) step() {
	switch s.game.Step() {
	case bridge.StepBroke:
		log.Printf("[BridgeScene] Panel broke at row %d", s.game.Row()+1)
		s.svc.Audio.PlaySound(game.SoundGlass)
	case bridge.StepCrossed:
		log.Printf("[BridgeScene] Bridge crossed")
		s.svc.Audio.PlaySound(game.SoundWin)
	case bridge.StepSafe:
		s.svc.Audio.PlaySound(game.SoundScratch)
	}
}

// Draw renders the bridge, the player and the progress bar.
func (s *BridgeScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "GLASS BRIDGE", 40, 56, colorWhite)

	bw := float32(2*s.panelW + s.gapX + 40)
	bx := float32(screenW/2) - bw/2
	finishY := float32(s.top - s.pitch)
	startY := float32(s.top + float64(s.game.Rows())*s.pitch)
	vector.DrawFilledRect(screen, bx, finishY, bw, float32(s.panelH), colorGreen, false)
	vector.DrawFilledRect(screen, bx, startY, bw, float32(s.panelH), colorBrown, false)

	for row := 0; row < s.game.Rows(); row++ {
		for _, side := range []bridge.Side{bridge.Left, bridge.Right} {
			s.drawPanel(screen, row, side)
		}
	}
	s.drawPlayer(screen)

	drawHUDProgress(screen, s.game.Progress(), colorGreen)
	drawLabel(screen, fmt.Sprintf("Row %d / %d", min(s.game.Row()+1, s.game.Rows()), s.game.Rows()), screenW/2, screenH-config.ProgressBarBottom-34, 22, colorWhite, text.AlignCenter)

	switch {
	case s.game.Won():
		drawBanner(screen, "YOU CROSSED THE BRIDGE!", colorGreen, "R: play again   B: menu")
	case s.game.Over():
		drawBanner(screen, "THE GLASS BROKE", colorRed, "R: play again   B: menu")
	default:
		drawHint(screen, "Left/Right: choose a panel   Space: jump (or click a panel)   Esc: menu")
	}
}

func (s *BridgeScene) drawPanel(screen *ebiten.Image, row int, side bridge.Side) {
	x, y, w, h := s.panelRect(row, side)
	var fill color.Color = colorGlass
	switch {
	case s.game.Stepped(row, side) && s.game.Panel(row, side) == bridge.Break:
		fill = colorBroken
	case s.game.Stepped(row, side):
		fill = colorGreen
	case s.game.Over() && s.game.Panel(row, side) == bridge.Break:
		fill = colorGray
	}
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, false)

	border, width := color.Color(colorWhite), float32(2)
	if !s.game.Over() && row == s.game.Row() && side == s.game.Side() {
		border, width = colorGold, 5
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), width, border, false)
}

func (s *BridgeScene) drawPlayer(screen *ebiten.Image) {
	var cx, cy float64
	row := s.game.Row()
	switch {
	case s.game.Won():
		cx, cy = screenW/2, s.top-s.pitch+s.panelH/2
	case s.game.Over():
		x, y, w, h := s.panelRect(row, s.game.Side())
		cx, cy = x+w/2, y+h/2
	default:
		cx, cy = screenW/2, s.top+float64(s.game.Rows())*s.pitch+s.panelH/2
		if row > 0 {
			side := bridge.Right
			if s.game.Stepped(row-1, bridge.Left) {
				side = bridge.Left
			}
			x, y, w, h := s.panelRect(row-1, side)
			cx, cy = x+w/2, y+h/2
		}
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(min(s.panelH/2, 18)), colorDarkPurple, true)
}
