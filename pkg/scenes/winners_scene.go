package scenes

import (
	"fmt"

	"github.com/decker502/squidarcade/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// WinnersScene shows the Red Light, Green Light finishers and the latest
// tracing result.
type WinnersScene struct {
	svc *game.Services
}

// NewWinnersScene creates the winners board.
func NewWinnersScene(svc *game.Services) *WinnersScene {
	return &WinnersScene{svc: svc}
}

// Update returns to the menu on M or Esc, clears the board on C and quits on Q.
func (w *WinnersScene) Update(deltaTime float64) {
	if backToMenu(w.svc, ebiten.KeyM) {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		w.svc.Results.Clear()
		return
	}
	goOnKey(w.svc, game.StateQuit, ebiten.KeyQ)
}

// Draw renders the board.
func (w *WinnersScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "WINNERS", 40, 64, colorGold)

	finishers := w.svc.Results.Finishers()
	y := 150.0
	drawLabel(screen, "Red Light, Green Light", screenW/2, y, 28, colorWhite, text.AlignCenter)
	y += 50
	if len(finishers) == 0 {
		drawLabel(screen, "No finishers yet", screenW/2, y, 24, colorLightGray, text.AlignCenter)
		y += 40
	}
	for i, f := range finishers {
		vector.DrawFilledCircle(screen, float32(screenW/2-180), float32(y+14), 12, f.Color, true)
		drawLabel(screen, fmt.Sprintf("%d. Player %s", i+1, f.Name), screenW/2-150, y, 26, colorWhite, text.AlignStart)
		drawLabel(screen, fmt.Sprintf("%.2fs", f.Time.Seconds()), screenW/2+200, y, 26, colorWhite, text.AlignEnd)
		y += 40
	}

	if line, ok := w.tracingLine(); ok {
		y += 30
		drawLabel(screen, "Last tracing", screenW/2, y, 28, colorWhite, text.AlignCenter)
		drawLabel(screen, line, screenW/2, y+44, 24, colorWhite, text.AlignCenter)
	}

	drawHint(screen, "M: menu   C: clear   Q: quit")
}

func (w *WinnersScene) tracingLine() (string, bool) {
	r, ok := w.svc.Results.LastTracing()
	if !ok {
		return "", false
	}
	verdict := "FAILED"
	if r.Success {
		verdict = "SURVIVED"
	}
	name := "Dalgona"
	if r.Game == game.StateBoundary {
		name = "Boundary"
	}
	return fmt.Sprintf("%s (%s): %s with %.0f%% traced and %d cracks", name, titleCase.String(r.Shape), verdict, 100*r.Progress, r.Cracks), true
}
