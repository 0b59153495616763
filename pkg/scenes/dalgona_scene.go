package scenes

import (
	"fmt"
	"image"
	"log"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/shapes"
	"github.com/decker502/squidarcade/pkg/trace"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// resultDisplay is how long a tracing result stays on screen before the
// winners board.
const resultDisplay = 4.0

type dalgonaPhase int

const (
	dalgonaPick dalgonaPhase = iota
	dalgonaReveal
	dalgonaTrace
	dalgonaResult
)

// DalgonaScene lets the player pick a mystery box, reveals a random cookie
// shape and runs a tracing session on it.
type DalgonaScene struct {
	svc   *game.Services
	cfg   config.DalgonaConfig
	kinds []shapes.Kind

	phase   dalgonaPhase
	boxes   []*button
	kind    shapes.Kind
	session *tracingSession
	timer   float64
}

// NewDalgonaScene creates the scene.
//
// Returns an error if the configured shape list cannot be parsed.
func NewDalgonaScene(svc *game.Services) (*DalgonaScene, error) {
	cfg := svc.Config.Dalgona
	kinds, err := cfg.ShapeKinds()
	if err != nil {
		return nil, err
	}
	if len(kinds) == 0 {
		kinds = shapes.Kinds()
	}

	s := &DalgonaScene{svc: svc, cfg: cfg, kinds: kinds}
	startX := config.BoxRowStartX(cfg.Boxes)
	for i := 0; i < cfg.Boxes; i++ {
		s.boxes = append(s.boxes, &button{
			X:     startX + float64(i)*(config.BoxSize+config.BoxGap),
			Y:     config.BoxY,
			W:     config.BoxSize,
			H:     config.BoxSize,
			Label: fmt.Sprintf("? %d", i+1),
			Color: colorDarkPurple,
		})
	}
	return s, nil
}

// OnExit releases the tracker.
func (s *DalgonaScene) OnExit() {
	s.releaseSession()
}

func (s *DalgonaScene) releaseSession() {
	if s.session != nil {
		s.session.release()
	}
}

// Update advances the current phase.
func (s *DalgonaScene) Update(deltaTime float64) {
	if backToMenu(s.svc) {
		return
	}

	switch s.phase {
	case dalgonaPick:
		s.updatePick()
	case dalgonaReveal:
		s.timer -= deltaTime
		if s.timer <= 0 {
			s.phase = dalgonaTrace
		}
	case dalgonaTrace:
		s.updateTrace(deltaTime)
	case dalgonaResult:
		s.updateResult(deltaTime)
	}
}

func (s *DalgonaScene) updatePick() {
	if goOnKey(s.svc, game.StateMenu, ebiten.KeyB) {
		return
	}
	p := readPointer()
	for i, b := range s.boxes {
		if p.hit(b) || digitJustPressed(i+1) {
			s.pick(i)
			return
		}
	}
}

// pick draws a random shape for the chosen box and prepares its session.
func (s *DalgonaScene) pick(box int) {
	s.kind = s.kinds[s.svc.Rand.Intn(len(s.kinds))]
	log.Printf("[DalgonaScene] Box %d -> %s", box+1, s.kind)

	img, err := s.cookieImage(s.kind)
	if err != nil {
		log.Printf("[DalgonaScene] Error: failed to load %s cookie: %v", s.kind, err)
		s.svc.Go(game.StateMenu)
		return
	}

	b := img.Bounds()
	frac := s.cfg.DisplayFraction
	scale := utils.FitScale(b.Dx(), b.Dy(), screenW*frac, screenH*frac)
	session, err := newTracingSession(img, s.cfg.Tracing, scale)
	if err != nil {
		log.Printf("[DalgonaScene] Error: %v", err)
		s.svc.Go(game.StateMenu)
		return
	}
	if session.tracker.UsedFallback() {
		log.Printf("[DalgonaScene] Warning: %s cookie has no outline below threshold %d, tracing visible pixels", s.kind, s.cfg.Tracing.Threshold)
	}

	s.releaseSession()
	s.session = session
	s.phase = dalgonaReveal
	s.timer = s.cfg.RevealDuration
}

// cookieImage loads the configured image for k, or renders one.
func (s *DalgonaScene) cookieImage(k shapes.Kind) (image.Image, error) {
	if id := s.cfg.Images[k.String()]; id != "" {
		return s.svc.Resources.LoadPixelsByID(id)
	}
	return shapes.Cookie(k, shapes.DefaultStyle(s.cfg.ImageSize)), nil
}

func (s *DalgonaScene) updateTrace(deltaTime float64) {
	switch s.session.update(deltaTime) {
	case trace.EventTrace:
		s.svc.Audio.PlaySoundIfIdle(game.SoundScratch)
	case trace.EventCrack:
		s.svc.Audio.PlaySound(game.SoundCrack)
	}
	if s.session.outcome == trace.OutcomePending {
		return
	}

	success := s.session.outcome == trace.OutcomeSuccess
	log.Printf("[DalgonaScene] %s: %s (progress %.0f%%, cracks %d)", s.kind, s.session.outcome, 100*s.session.progress(), s.session.cracks())
	s.svc.Results.RecordTracing(game.TracingResult{
		Game:     game.StateDalgona,
		Shape:    s.kind.String(),
		Success:  success,
		Progress: s.session.progress(),
		Cracks:   s.session.cracks(),
	})
	s.session.release()
	if success {
		s.svc.Audio.PlaySound(game.SoundWin)
	} else {
		s.svc.Audio.PlaySound(game.SoundHit)
	}
	s.phase = dalgonaResult
	s.timer = resultDisplay
}

func (s *DalgonaScene) updateResult(deltaTime float64) {
	if goOnKey(s.svc, game.StateMenu, ebiten.KeyB) {
		return
	}
	if utils.AnyKeyJustPressed(ebiten.KeyR) {
		s.phase = dalgonaPick
		return
	}
	s.timer -= deltaTime
	if s.timer <= 0 || utils.AnyKeyJustPressed(ebiten.KeyEnter) {
		s.svc.Go(game.StateWinners)
	}
}

// Draw renders the current phase.
func (s *DalgonaScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)

	switch s.phase {
	case dalgonaPick:
		drawTitle(screen, "DALGONA CANDY", 60, 56, colorWhite)
		drawLabel(screen, "Pick a mystery box", screenW/2, 180, 28, colorWhite, text.AlignCenter)
		for _, b := range s.boxes {
			b.draw(screen)
		}
		drawHint(screen, fmt.Sprintf("Click a box or press 1-%d   B: menu", len(s.boxes)))

	case dalgonaReveal:
		t := 1 - s.timer/max(s.cfg.RevealDuration, 1e-6)
		s.session.drawImageZoom(screen, utils.EaseOutLerp(0.3, 1, t))
		drawTitle(screen, "Your Cookie Shape: "+titleCase.String(s.kind.String()), 40, 44, colorGold)

	case dalgonaTrace, dalgonaResult:
		s.drawTracing(screen)
	}
}

func (s *DalgonaScene) drawTracing(screen *ebiten.Image) {
	s.session.drawImage(screen)
	if s.svc.Settings.GetSettings().ScratchOverlay {
		s.session.drawOverlay(screen)
	}

	drawTitle(screen, "Trace the "+titleCase.String(s.kind.String()), 20, 40, colorWhite)
	rules := s.session.rules
	status := fmt.Sprintf("Progress: %.0f%% (goal %.0f%%)", 100*s.session.progress(), 100*rules.Goal)
	if rules.MaxCracks > 0 {
		status += fmt.Sprintf("   Cracks: %d / %d", s.session.cracks(), rules.MaxCracks)
	}
	drawLabel(screen, status, screenW/2, screenH-config.ProgressBarBottom-34, 22, colorWhite, text.AlignCenter)
	drawHUDProgress(screen, s.session.goalFraction(), colorGreen)

	if s.phase != dalgonaResult {
		drawHint(screen, holdVerb()+" on the outline and follow it   Esc: menu")
		return
	}
	if s.session.outcome == trace.OutcomeSuccess {
		drawBanner(screen, "YOU SURVIVED!", colorGreen, "Enter: winners   R: try again   B: menu")
	} else {
		drawBanner(screen, "THE COOKIE CRACKED", colorRed, "Enter: winners   R: try again   B: menu")
	}
}
