package scenes

import (
	"fmt"
	"image"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/trace"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// tracingSession places a trace.Tracker on screen.
// It maps pointer positions into image pixels, evaluates the win/lose rules
// after every frame and renders the reference image with the scratch overlay.
type tracingSession struct {
	tracker *trace.Tracker
	rules   trace.Rules
	outcome trace.Outcome

	source        image.Image
	width, height int

	originX, originY float64
	scale            float64

	// Textures are created on first draw so that the session logic works
	// without a graphics context.
	texture      *ebiten.Image
	overlay      *ebiten.Image
	overlayPix   []byte
	overlayCount int
}

// newTracingSession creates a tracker for img and centres the image on
// screen at the given scale.
//
// Parameters:
//   - img: reference image whose dark pixels form the outline
//   - preset: tracker parameters and win/lose rules
//   - scale: display scale, <= 0 is treated as 1
//
// Returns an error if the preset is invalid or the image is empty.
func newTracingSession(img image.Image, preset config.TracingPreset, scale float64) (*tracingSession, error) {
	cfg, err := preset.TraceConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid tracing preset: %w", err)
	}
	tracker, err := trace.NewTracker(img, cfg)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = 1
	}

	s := &tracingSession{
		tracker:      tracker,
		rules:        preset.Rules(),
		source:       img,
		width:        tracker.Width(),
		height:       tracker.Height(),
		scale:        scale,
		overlayCount: -1,
	}
	s.originX, s.originY = utils.CenteredOrigin(s.width, s.height, scale, screenW, screenH)
	return s, nil
}

// update reads the pointer and advances the session by one frame.
func (s *tracingSession) update(dt float64) trace.Event {
	held, x, y := utils.GetPointerState()
	return s.step(held, x, y, dt)
}

// step advances the session with explicit pointer input in screen coordinates.
// Once an outcome is decided the tracker no longer receives input.
func (s *tracingSession) step(held bool, screenX, screenY int, dt float64) trace.Event {
	if s.outcome != trace.OutcomePending || s.tracker.Released() {
		return trace.EventNone
	}
	x, y := utils.ScreenToImage(float64(screenX), float64(screenY), s.originX, s.originY, s.scale)
	ev := s.tracker.Update(trace.Input{X: x, Y: y, Held: held, DT: dt})
	s.outcome = s.rules.Evaluate(s.tracker)
	return ev
}

func (s *tracingSession) progress() float64 { return s.tracker.Progress() }

func (s *tracingSession) cracks() int { return s.tracker.Cracks() }

// goalFraction returns progress relative to the goal, used by the HUD bar.
func (s *tracingSession) goalFraction() float64 {
	if s.rules.Goal <= 0 {
		return 1
	}
	return clamp01(s.tracker.Progress() / s.rules.Goal)
}

func (s *tracingSession) release() {
	s.tracker.Release()
}

func (s *tracingSession) geoM() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(s.scale, s.scale)
	m.Translate(s.originX, s.originY)
	return m
}

// drawImage renders the reference image.
func (s *tracingSession) drawImage(screen *ebiten.Image) {
	s.drawImageZoom(screen, 1)
}

// drawImageZoom renders the reference image scaled by zoom around its centre.
func (s *tracingSession) drawImageZoom(screen *ebiten.Image, zoom float64) {
	if s.texture == nil {
		s.texture = ebiten.NewImageFromImage(s.source)
	}
	w, h := float64(s.width), float64(s.height)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s.scale*zoom, s.scale*zoom)
	op.GeoM.Translate(s.originX+w*s.scale/2, s.originY+h*s.scale/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(s.texture, op)
}

// drawOverlay marks every scratched pixel. The overlay texture is rebuilt only
// when the scratched count has changed, and keeps its last contents after the
// tracker is released.
func (s *tracingSession) drawOverlay(screen *ebiten.Image) {
	if s.width == 0 || s.height == 0 {
		return
	}
	if s.overlay == nil {
		s.overlay = ebiten.NewImage(s.width, s.height)
		s.overlayPix = make([]byte, 4*s.width*s.height)
	}
	if !s.tracker.Released() && s.tracker.Scratched() != s.overlayCount {
		s.rebuildOverlay()
	}
	screen.DrawImage(s.overlay, &ebiten.DrawImageOptions{GeoM: s.geoM()})
}

func (s *tracingSession) rebuildOverlay() {
	clear(s.overlayPix)
	// WritePixels expects premultiplied alpha.
	a := uint32(colorScratch.A)
	r := byte(uint32(colorScratch.R) * a / 255)
	g := byte(uint32(colorScratch.G) * a / 255)
	b := byte(uint32(colorScratch.B) * a / 255)
	s.tracker.EachScratched(func(x, y int) {
		i := 4 * (y*s.width + x)
		s.overlayPix[i] = r
		s.overlayPix[i+1] = g
		s.overlayPix[i+2] = b
		s.overlayPix[i+3] = byte(a)
	})
	s.overlay.WritePixels(s.overlayPix)
	s.overlayCount = s.tracker.Scratched()
}
