package scenes

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/minigames/marbles"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	marbleRadius  = 11
	marblesPerRow = 10
	narrationW    = 900
)

var (
	colorPlayerMarble = color.RGBA{0, 121, 241, 255}
	colorAIMarble     = color.RGBA{230, 41, 55, 255}
)

// MarblesScene plays odd-or-even marbles against the computer.
type MarblesScene struct {
	svc  *game.Services
	game *marbles.Game

	oddBtn, evenBtn, doubleBtn, againBtn *button
	amountBtns                           []*button
	announced                            bool
}

// NewMarblesScene creates the scene and starts a match.
func NewMarblesScene(svc *game.Services) *MarblesScene {
	s := &MarblesScene{
		svc:       svc,
		game:      marbles.New(svc.Config.Marbles, svc.Rand),
		oddBtn:    &button{X: screenW/2 - 330, Y: 470, W: 200, H: 60, Label: "ODD [O]"},
		evenBtn:   &button{X: screenW/2 - 100, Y: 470, W: 200, H: 60, Label: "EVEN [E]"},
		doubleBtn: &button{X: screenW/2 + 130, Y: 470, W: 200, H: 60, Label: "DOUBLE [D]", Color: colorRed},
		againBtn:  &button{X: screenW/2 - 120, Y: 470, W: 240, H: 60, Label: "PLAY AGAIN [R]"},
	}
	s.layoutAmounts()
	return s
}

// layoutAmounts creates one button per allowed bet.
func (s *MarblesScene) layoutAmounts() {
	opts := s.game.Options()
	const w, gap = 80.0, 20.0
	startX := screenW/2 - (float64(len(opts))*w+float64(len(opts)-1)*gap)/2
	s.amountBtns = s.amountBtns[:0]
	for i, n := range opts {
		s.amountBtns = append(s.amountBtns, &button{
			X: startX + float64(i)*(w+gap), Y: 470, W: w, H: 60,
			Label: fmt.Sprintf("%d", n),
		})
	}
}

// Update routes input to the current phase and advances the timers.
func (s *MarblesScene) Update(deltaTime float64) {
	if backToMenu(s.svc, ebiten.KeyB) {
		return
	}

	p := readPointer()
	switch s.game.Phase() {
	case marbles.PhaseGuess:
		s.doubleBtn.Disabled = s.game.DoubleUsed()
		switch {
		case p.hit(s.oddBtn) || utils.AnyKeyJustPressed(ebiten.KeyO):
			s.check(s.game.Guess(true))
		case p.hit(s.evenBtn) || utils.AnyKeyJustPressed(ebiten.KeyE):
			s.check(s.game.Guess(false))
		case p.hit(s.doubleBtn) || utils.AnyKeyJustPressed(ebiten.KeyD):
			s.check(s.game.UseDouble())
		}

	case marbles.PhaseBet, marbles.PhasePut:
		if n, ok := s.pickedAmount(p); ok {
			if s.game.Phase() == marbles.PhaseBet {
				s.check(s.game.Bet(n))
			} else {
				s.check(s.game.Put(n))
			}
		}

	case marbles.PhaseOver:
		if p.hit(s.againBtn) || utils.AnyKeyJustPressed(ebiten.KeyR) {
			s.game.Reset()
			s.announced = false
		}
	}

	s.game.Update(deltaTime)
	if len(s.amountBtns) != len(s.game.Options()) {
		s.layoutAmounts()
	}
	s.announceResult()
}

// pickedAmount returns the bet chosen by click or digit key this frame.
func (s *MarblesScene) pickedAmount(p pointer) (int, bool) {
	for i, b := range s.amountBtns {
		if p.hit(b) || digitJustPressed(i+1) {
			return i + 1, true
		}
	}
	return 0, false
}

func (s *MarblesScene) check(err error) {
	switch {
	case err == nil:
	case errors.Is(err, marbles.ErrDoubleUsed):
		log.Printf("[MarblesScene] Double already used this match")
	default:
		log.Printf("[MarblesScene] Warning: %v", err)
	}
}

func (s *MarblesScene) announceResult() {
	if s.game.Phase() != marbles.PhaseOver || s.announced {
		return
	}
	s.announced = true
	if s.game.PlayerWon() {
		log.Printf("[MarblesScene] Player won the match")
		s.svc.Audio.PlaySound(game.SoundWin)
	} else {
		log.Printf("[MarblesScene] AI won the match")
		s.svc.Audio.PlaySound(game.SoundHit)
	}
}

// marblesNarration describes the current state of the match.
func marblesNarration(g *marbles.Game) string {
	last, ok := g.LastTurn()
	switch g.Phase() {
	case marbles.PhaseGuess:
		return "Your turn! Guess if AI's marbles are Odd or Even."
	case marbles.PhaseBet:
		msg := fmt.Sprintf("You guessed %s. How many marbles do you bet?", parity(g.GuessedOdd()))
		if g.DoubleActive() {
			msg += " Your stake will be doubled!"
		}
		return msg
	case marbles.PhaseAIPut:
		return fmt.Sprintf("You bet %d marbles. AI is putting marbles forward...", g.Stake())
	case marbles.PhasePut:
		return turnNarration(last) + " Now choose how many marbles to put forward."
	case marbles.PhaseResult:
		return turnNarration(last)
	case marbles.PhaseOver:
		msg := ""
		if ok {
			msg = turnNarration(last) + " "
		}
		if g.PlayerWon() {
			return msg + "You took all of AI's marbles!"
		}
		return msg + "You lost all your marbles."
	}
	return ""
}

func turnNarration(t marbles.Turn) string {
	if t.PlayerGuessing {
		if t.Correct {
			return fmt.Sprintf("AI put %d marbles. You guessed right! You win %d marbles.", t.Put, t.Transfer)
		}
		return fmt.Sprintf("AI put %d marbles. Wrong guess! You lose %d marbles.", t.Put, t.Transfer)
	}
	msg := fmt.Sprintf("You put %d marbles. AI guesses %s.", t.Put, parity(t.GuessOdd))
	if t.Correct {
		return msg + fmt.Sprintf(" AI guessed right! It wins %d marbles.", t.Transfer)
	}
	return msg + fmt.Sprintf(" AI guessed wrong! You win %d marbles.", t.Transfer)
}

func parity(odd bool) string {
	if odd {
		return "Odd"
	}
	return "Even"
}

// Draw renders both marble piles, the narration and the phase buttons.
func (s *MarblesScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "MARBLES", 30, 56, colorWhite)

	s.drawPile(screen, "Your Marbles", s.game.PlayerMarbles(), 120, colorPlayerMarble)
	s.drawPile(screen, "AI Marbles", s.game.AIMarbles(), screenW/2+100, colorAIMarble)

	face := utils.Face(24)
	y := 330.0
	for _, line := range utils.WrapText(marblesNarration(s.game), face, narrationW) {
		utils.DrawText(screen, line, face, screenW/2, y, colorWhite, text.AlignCenter)
		y += 32
	}

	switch s.game.Phase() {
	case marbles.PhaseGuess:
		s.oddBtn.draw(screen)
		s.evenBtn.draw(screen)
		s.doubleBtn.draw(screen)
	case marbles.PhaseBet, marbles.PhasePut:
		label := "Choose your bet:"
		if s.game.Phase() == marbles.PhasePut {
			label = "Choose how many marbles to put forward:"
		}
		drawLabel(screen, label, screenW/2, 430, 22, colorGold, text.AlignCenter)
		for _, b := range s.amountBtns {
			b.draw(screen)
		}
	case marbles.PhaseOver:
		s.againBtn.draw(screen)
	}

	hint := "B or Esc: menu"
	if !s.game.DoubleUsed() {
		hint = "Double once per match to stake twice the marbles   " + hint
	}
	drawHint(screen, hint)
}

func (s *MarblesScene) drawPile(screen *ebiten.Image, label string, n int, x float64, clr color.Color) {
	drawLabel(screen, fmt.Sprintf("%s: %d", label, n), x, 120, 26, colorWhite, text.AlignStart)
	for i := 0; i < n; i++ {
		cx := x + marbleRadius + float64(i%marblesPerRow)*(2*marbleRadius+6)
		cy := 180 + float64(i/marblesPerRow)*(2*marbleRadius+6)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), marbleRadius, clr, true)
		vector.StrokeCircle(screen, float32(cx), float32(cy), marbleRadius, 2, colorBlack, true)
	}
}
