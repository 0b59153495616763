package scenes

import (
	"fmt"
	"strings"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// ControlsScene lists the keys of every minigame.
type ControlsScene struct {
	svc   *game.Services
	lines []controlLine
}

type controlLine struct {
	text  string
	head  bool
}

// NewControlsScene creates the help screen from the configured keys.
func NewControlsScene(svc *game.Services) *ControlsScene {
	return &ControlsScene{svc: svc, lines: buildControlLines(svc.Config)}
}

func buildControlLines(cfg *config.ArcadeConfig) []controlLine {
	var lines []controlLine
	head := func(s string) { lines = append(lines, controlLine{text: s, head: true}) }
	line := func(s string) { lines = append(lines, controlLine{text: s}) }

	head("Red Light, Green Light")
	players := make([]string, 0, len(cfg.RedLight.Players))
	for _, p := range cfg.RedLight.Players {
		players = append(players, fmt.Sprintf("%s: %s", p.Name, p.Key))
	}
	line("Hold to move during green light: " + strings.Join(players, "   "))

	head("Tug of War")
	line(fmt.Sprintf("Tap %s (left team) and %s (right team) as fast as you can", cfg.TugOfWar.Player1Key, cfg.TugOfWar.Player2Key))

	head("Dalgona Candy / Boundary Tracing")
	line("Hold the left mouse button (or touch) and trace the outline")

	head("Glass Bridge")
	line("Left/Right: choose a panel   Space or Enter: jump")

	head("Marbles")
	line("O/E: guess odd or even   D: double   1-5: marbles (or click the buttons)")

	head("Everywhere")
	line("Esc: back to menu   F11: fullscreen")
	return lines
}

// Update returns to the menu on B or Esc and quits on Q.
func (c *ControlsScene) Update(deltaTime float64) {
	if backToMenu(c.svc, ebiten.KeyB) {
		return
	}
	goOnKey(c.svc, game.StateQuit, ebiten.KeyQ)
}

// Draw renders the control list.
func (c *ControlsScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "CONTROLS", 40, 52, colorWhite)

	y := 130.0
	for _, l := range c.lines {
		if l.head {
			y += 10
			drawLabel(screen, l.text, 160, y, 26, colorGold, text.AlignStart)
			y += 34
			continue
		}
		drawLabel(screen, l.text, 180, y, 20, colorWhite, text.AlignStart)
		y += 30
	}
	drawHint(screen, "B: back to menu   Q: quit")
}
