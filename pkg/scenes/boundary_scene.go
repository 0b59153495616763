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

// BoundaryScene is the boundary variant of tracing: the player follows a thick
// black track around a shape and every moment spent off the track cracks.
type BoundaryScene struct {
	svc  *game.Services
	cfg  config.BoundaryConfig
	kind shapes.Kind

	boundary *image.NRGBA
	inner    *image.NRGBA
	innerTex *ebiten.Image
	scale    float64

	session  *tracingSession
	finished bool
}

// NewBoundaryScene renders the configured shape and starts a session.
func NewBoundaryScene(svc *game.Services) (*BoundaryScene, error) {
	cfg := svc.Config.Boundary
	kind, err := shapes.ParseKind(cfg.Shape)
	if err != nil {
		return nil, err
	}

	s := &BoundaryScene{svc: svc, cfg: cfg, kind: kind}
	s.boundary, s.inner = shapes.Boundary(kind, cfg.Size, cfg.Thickness)
	b := s.boundary.Bounds()
	s.scale = min(1, utils.FitScale(b.Dx(), b.Dy(), screenW*0.8, screenH*0.8))

	if err := s.restart(); err != nil {
		return nil, err
	}
	return s, nil
}

// restart begins a fresh session on the same shape.
func (s *BoundaryScene) restart() error {
	session, err := newTracingSession(s.boundary, s.cfg.Tracing, s.scale)
	if err != nil {
		return fmt.Errorf("failed to start boundary session: %w", err)
	}
	if s.session != nil {
		s.session.release()
	}
	s.session = session
	s.finished = false
	return nil
}

// OnExit releases the tracker.
func (s *BoundaryScene) OnExit() {
	s.session.release()
}

// Update feeds the pointer to the session and handles the result keys.
func (s *BoundaryScene) Update(deltaTime float64) {
	if backToMenu(s.svc, ebiten.KeyB) {
		return
	}
	if s.finished {
		s.updateResult()
		return
	}

	switch s.session.update(deltaTime) {
	case trace.EventTrace:
		s.svc.Audio.PlaySoundIfIdle(game.SoundScratch)
	case trace.EventCrack:
		s.svc.Audio.PlaySound(game.SoundCrack)
	}
	if s.session.outcome != trace.OutcomePending {
		s.finish()
	}
}

func (s *BoundaryScene) finish() {
	success := s.session.outcome == trace.OutcomeSuccess
	log.Printf("[BoundaryScene] %s: %s (progress %.0f%%, cracks %d)", s.kind, s.session.outcome, 100*s.session.progress(), s.session.cracks())
	s.svc.Results.RecordTracing(game.TracingResult{
		Game:     game.StateBoundary,
		Shape:    s.kind.String(),
		Success:  success,
		Progress: s.session.progress(),
		Cracks:   s.session.cracks(),
	})
	s.session.release()
	s.finished = true
	if success {
		s.svc.Audio.PlaySound(game.SoundWin)
	} else {
		s.svc.Audio.PlaySound(game.SoundGlass)
	}
}

func (s *BoundaryScene) updateResult() {
	if utils.AnyKeyJustPressed(ebiten.KeyR) {
		if err := s.restart(); err != nil {
			log.Printf("[BoundaryScene] Error: %v", err)
		}
		return
	}
	goOnKey(s.svc, game.StateWinners, ebiten.KeyEnter)
}

// Draw renders the inner shape, the track, the overlay and the HUD.
func (s *BoundaryScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)

	if s.innerTex == nil {
		s.innerTex = ebiten.NewImageFromImage(s.inner)
	}
	op := &ebiten.DrawImageOptions{GeoM: s.session.geoM()}
	screen.DrawImage(s.innerTex, op)
	s.session.drawImage(screen)
	if s.svc.Settings.GetSettings().ScratchOverlay {
		s.session.drawOverlay(screen)
	}

	drawTitle(screen, "STAY ON THE LINE", 20, 40, colorWhite)
	rules := s.session.rules
	status := fmt.Sprintf("Progress: %.0f%% (goal %.0f%%)", 100*s.session.progress(), 100*rules.Goal)
	if rules.MaxCracks > 0 {
		status += fmt.Sprintf("   Cracks: %d / %d", s.session.cracks(), rules.MaxCracks)
	}
	drawLabel(screen, status, screenW/2, screenH-config.ProgressBarBottom-34, 22, colorWhite, text.AlignCenter)
	drawHUDProgress(screen, s.session.goalFraction(), colorSkyBlue)

	if !s.finished {
		drawHint(screen, "Start anywhere on the black track. "+holdVerb()+" on it and don't leave it   Esc: menu")
		return
	}
	if s.session.outcome == trace.OutcomeSuccess {
		drawBanner(screen, "YOU MADE IT!", colorGreen, "Enter: winners   R: restart   B: menu")
	} else {
		drawBanner(screen, "YOU LEFT THE LINE", colorRed, "Enter: winners   R: restart   B: menu")
	}
}
