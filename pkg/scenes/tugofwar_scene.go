package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/minigames/tugofwar"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	ropeY       = 360.0
	ropeHeight  = 14.0
	arenaTop    = 280.0
	arenaHeight = 160.0
)

// TugOfWarScene is a two player key mashing duel.
type TugOfWarScene struct {
	svc        *game.Services
	game       *tugofwar.Game
	key1, key2 ebiten.Key
	arenaX     float64
}

// NewTugOfWarScene creates the scene with the configured keys.
func NewTugOfWarScene(svc *game.Services) *TugOfWarScene {
	cfg := svc.Config.TugOfWar
	return &TugOfWarScene{
		svc:    svc,
		game:   tugofwar.New(cfg),
		key1:   utils.MustParseKey(cfg.Player1Key, ebiten.KeyA),
		key2:   utils.MustParseKey(cfg.Player2Key, ebiten.KeyL),
		arenaX: (screenW - cfg.ArenaWidth) / 2,
	}
}

// Update counts key presses and checks for a winner.
func (s *TugOfWarScene) Update(deltaTime float64) {
	if backToMenu(s.svc, ebiten.KeyB) {
		return
	}
	if s.game.Over() {
		if utils.AnyKeyJustPressed(ebiten.KeyR) {
			s.game.Reset()
		}
		return
	}

	w := s.game.Update(deltaTime, inpututil.IsKeyJustPressed(s.key1), inpututil.IsKeyJustPressed(s.key2))
	if w != tugofwar.NoWinner {
		log.Printf("[TugOfWarScene] %s wins", w)
		s.svc.Audio.PlaySound(game.SoundWin)
	}
}

// Draw renders the arena, the rope and the pull meters.
func (s *TugOfWarScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "TUG OF WAR", 40, 56, colorWhite)

	cfg := s.svc.Config.TugOfWar
	ax := float32(s.arenaX)
	aw := float32(cfg.ArenaWidth)
	vector.DrawFilledRect(screen, ax, arenaTop, aw/2, arenaHeight, colorSkyBlue, false)
	vector.DrawFilledRect(screen, ax+aw/2, arenaTop, aw/2, arenaHeight, colorGold, false)
	vector.StrokeRect(screen, ax, arenaTop, aw, arenaHeight, 3, colorBlack, false)
	vector.StrokeLine(screen, ax+aw/2, arenaTop-20, ax+aw/2, arenaTop+arenaHeight+20, 4, colorWhite, false)

	ropeCenter := s.arenaX + s.game.RopeX()
	left := ropeCenter - cfg.RopeWidth/2
	vector.DrawFilledRect(screen, float32(left), ropeY-ropeHeight/2, float32(cfg.RopeWidth), ropeHeight, colorBrown, false)
	vector.DrawFilledRect(screen, float32(ropeCenter)-4, ropeY-24, 8, 48, colorRed, false)
	vector.DrawFilledCircle(screen, float32(left)-18, ropeY, 18, colorDarkPurple, true)
	vector.DrawFilledCircle(screen, float32(left+cfg.RopeWidth)+18, ropeY, 18, colorDarkPurple, true)

	p1, p2 := s.game.Pulls()
	s.drawTeam(screen, fmt.Sprintf("Player 1 [%s]", cfg.Player1Key), p1, 120, text.AlignStart)
	s.drawTeam(screen, fmt.Sprintf("Player 2 [%s]", cfg.Player2Key), p2, screenW-120, text.AlignEnd)

	if w := s.game.Winner(); w != tugofwar.NoWinner {
		drawBanner(screen, fmt.Sprintf("%s WINS!", w), colorGold, "R: play again   B: menu")
		return
	}
	drawHint(screen, "Mash your key to pull the rope to your side   B or Esc: menu")
}

func (s *TugOfWarScene) drawTeam(screen *ebiten.Image, label string, pulls int, x float64, align text.Align) {
	drawLabel(screen, label, x, 160, 26, colorWhite, align)
	drawLabel(screen, fmt.Sprintf("pulls: %d", pulls), x, 200, 22, colorWhite, align)
}
