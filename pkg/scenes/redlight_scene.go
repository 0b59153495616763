package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"time"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/minigames/redlight"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	playerRadius = 20
	// redLightOutro is how long the final field stays visible before the
	// winners screen.
	redLightOutro = 1.5

	dollX = screenW - 70
	dollY = screenH / 2
)

var defaultPlayerKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyE, ebiten.KeyS}

// RedLightScene runs Red Light, Green Light for up to four local players.
type RedLightScene struct {
	svc  *game.Services
	game *redlight.Game

	keys   []ebiten.Key
	colors []color.NRGBA

	glow  float64
	outro float64
}

// NewRedLightScene creates the scene.
//
// The green light lasts as long as the poem sound unless the configuration
// sets an explicit duration.
func NewRedLightScene(svc *game.Services) *RedLightScene {
	cfg := svc.Config.RedLight
	green := cfg.GreenDuration
	if green <= 0 {
		if d, ok := svc.Audio.SoundDuration(game.SoundPoem); ok {
			green = d.Seconds()
		}
	}

	s := &RedLightScene{
		svc:  svc,
		game: redlight.New(cfg, green),
	}
	for i, p := range cfg.Players {
		s.keys = append(s.keys, utils.MustParseKey(p.Key, defaultPlayerKeys[i%len(defaultPlayerKeys)]))
		c, err := config.ParseHexColor(p.Color)
		if err != nil {
			c = color.NRGBA{255, 255, 255, 255}
		}
		s.colors = append(s.colors, c)
	}
	log.Printf("[RedLightScene] %d players, green light %.2fs", len(cfg.Players), s.game.GreenDuration())
	return s
}

// OnEnter starts the poem for the first green light.
func (s *RedLightScene) OnEnter() {
	s.svc.Audio.PlaySound(game.SoundPoem)
}

// OnExit stops the poem.
func (s *RedLightScene) OnExit() {
	s.svc.Audio.StopSound(game.SoundPoem)
}

// Update moves the players whose keys are held and reacts to the frame's events.
func (s *RedLightScene) Update(deltaTime float64) {
	if backToMenu(s.svc) {
		return
	}
	s.glow += deltaTime

	if s.game.Over() {
		s.outro -= deltaTime
		if s.outro <= 0 || utils.AnyKeyJustPressed(ebiten.KeyEnter) {
			s.svc.Results.SetFinishers(finishersFrom(s.game.Standings(), s.colorsByName()))
			s.svc.Go(game.StateWinners)
		}
		return
	}

	moving := make([]bool, len(s.keys))
	for i, k := range s.keys {
		moving[i] = ebiten.IsKeyPressed(k)
	}

	ev := s.game.Update(deltaTime, moving)
	if ev.GreenStarted {
		s.svc.Audio.PlaySound(game.SoundPoem)
	}
	if ev.Eliminated > 0 {
		s.svc.Audio.PlaySound(game.SoundHit)
	}
	if ev.Finished > 0 {
		s.svc.Audio.PlaySound(game.SoundWin)
	}
	if ev.Ended {
		log.Printf("[RedLightScene] Game over, %d finishers", len(s.game.Standings()))
		s.svc.Audio.StopSound(game.SoundPoem)
		s.outro = redLightOutro
	}
}

func (s *RedLightScene) colorsByName() map[string]color.NRGBA {
	out := make(map[string]color.NRGBA, len(s.colors))
	for i, p := range s.svc.Config.RedLight.Players {
		out[p.Name] = s.colors[i]
	}
	return out
}

// finishersFrom converts the standings into winners board entries.
func finishersFrom(standings []redlight.Player, colors map[string]color.NRGBA) []game.Finisher {
	out := make([]game.Finisher, 0, len(standings))
	for _, p := range standings {
		out = append(out, game.Finisher{
			Name:  p.Name,
			Time:  time.Duration(p.FinishTime * float64(time.Second)),
			Color: colors[p.Name],
		})
	}
	return out
}

// Draw renders the field, the doll and the players.
func (s *RedLightScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)

	finishX := float32(s.svc.Config.RedLight.FinishX)
	vector.StrokeLine(screen, finishX, 90, finishX, float32(screenH-90), 6, colorGold, false)
	drawLabel(screen, "FINISH", float64(finishX), 60, 20, colorGold, text.AlignCenter)

	s.drawDoll(screen)

	pulse := 0.5 + 0.5*math.Sin(s.glow*6)
	for i, p := range s.game.Players() {
		s.drawPlayer(screen, p, s.colors[i], pulse)
	}

	phaseColor := colorGreen
	if s.game.Phase() == redlight.PhaseRed {
		phaseColor = colorRed
	}
	drawTitle(screen, s.game.Phase().String(), 20, 44, phaseColor)
	drawLabel(screen, fmt.Sprintf("Time: %.1f", s.game.TimeLeft()), 30, 30, 26, colorWhite, text.AlignStart)

	if s.game.Over() {
		drawBanner(screen, "GAME OVER", colorGold, fmt.Sprintf("%d player(s) crossed the line", len(s.game.Standings())))
	}
	drawHint(screen, "Hold your key to move on green, freeze on red   Esc: menu")
}

func (s *RedLightScene) drawPlayer(screen *ebiten.Image, p redlight.Player, c color.NRGBA, pulse float64) {
	x, y := float32(p.X), float32(p.Y)
	if !p.Alive {
		vector.DrawFilledCircle(screen, x, y, playerRadius, colorGray, true)
		vector.StrokeLine(screen, x-12, y-12, x+12, y+12, 4, colorBlack, true)
		vector.StrokeLine(screen, x-12, y+12, x+12, y-12, 4, colorBlack, true)
		drawLabel(screen, p.Name, p.X, p.Y+playerRadius+4, 18, colorBlack, text.AlignCenter)
		return
	}

	glow := c
	glow.A = uint8(60 + 80*pulse)
	vector.DrawFilledCircle(screen, x, y, playerRadius+8+float32(4*pulse), glow, true)
	vector.DrawFilledCircle(screen, x, y, playerRadius, c, true)
	if p.Finished {
		vector.StrokeCircle(screen, x, y, playerRadius+3, 3, colorGold, true)
	}
	drawLabel(screen, p.Name, p.X, p.Y+playerRadius+4, 18, colorWhite, text.AlignCenter)
}

// drawDoll draws the doll facing away on green and facing the field on red.
func (s *RedLightScene) drawDoll(screen *ebiten.Image) {
	x, y := float32(dollX), float32(dollY)
	vector.DrawFilledRect(screen, x-32, y, 64, 110, color.RGBA{255, 140, 0, 255}, false)
	vector.DrawFilledRect(screen, x-32, y, 64, 26, colorGold, false)
	vector.DrawFilledCircle(screen, x, y-30, 34, color.RGBA{255, 224, 189, 255}, true)

	if s.game.Phase() == redlight.PhaseGreen {
		vector.DrawFilledCircle(screen, x, y-36, 34, colorBlack, true)
		return
	}
	vector.DrawFilledCircle(screen, x, y-58, 22, colorBlack, true)
	vector.DrawFilledCircle(screen, x-12, y-30, 5, colorRed, true)
	vector.DrawFilledCircle(screen, x+12, y-30, 5, colorRed, true)
}
