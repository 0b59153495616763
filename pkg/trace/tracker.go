// Package trace implements the outline-tracing progress tracker used by the
// Dalgona and boundary minigames.
//
// A Tracker owns a copy of a reference image and a scratched mask. Every frame
// the caller feeds it the pointer position in image coordinates and whether
// the trace button is held; the tracker credits outline pixels near the
// pointer, accumulates a progress fraction and counts rate-limited cracks when
// the pointer strays from the outline. Win/lose decisions belong to the caller
// (see Rules).
//
// The tracker is single-threaded: Update and the queries must be called from
// the goroutine that runs the game loop.
package trace

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrEmptyImage is returned when a reference image is missing or has no pixels.
var ErrEmptyImage = errors.New("reference image is empty")

// OffImagePolicy selects what happens when the button is held while the
// pointer is outside the reference image.
type OffImagePolicy int

const (
	// OffImageIgnore skips evaluation for off-image frames.
	OffImageIgnore OffImagePolicy = iota
	// OffImageCrack counts a crack on every off-image frame, ignoring the cooldown.
	OffImageCrack
)

// String returns the policy name used in configuration files.
func (p OffImagePolicy) String() string {
	switch p {
	case OffImageIgnore:
		return "ignore"
	case OffImageCrack:
		return "crack"
	default:
		return fmt.Sprintf("OffImagePolicy(%d)", int(p))
	}
}

// ParseOffImagePolicy converts a configuration name into a policy.
// An empty name selects OffImageIgnore.
func ParseOffImagePolicy(name string) (OffImagePolicy, error) {
	switch name {
	case "", "ignore":
		return OffImageIgnore, nil
	case "crack":
		return OffImageCrack, nil
	default:
		return OffImageIgnore, fmt.Errorf("unknown off-image policy %q", name)
	}
}

// Event is the side effect produced by a single Update call.
type Event int

const (
	// EventNone means nothing noteworthy happened this frame.
	EventNone Event = iota
	// EventTrace means the pointer was within tolerance of the outline.
	EventTrace
	// EventCrack means a crack was counted this frame.
	EventCrack
)

func (e Event) String() string {
	switch e {
	case EventNone:
		return "none"
	case EventTrace:
		return "trace"
	case EventCrack:
		return "crack"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// Config holds the tuning parameters of a tracing session.
type Config struct {
	// Threshold is the darkness threshold (0–255). Out-of-range values are clamped.
	Threshold int
	// InsideRadius and OutsideRadius are the tolerances in image pixels.
	// The tracker scans a square neighbourhood of max(InsideRadius, OutsideRadius).
	InsideRadius  int
	OutsideRadius int
	// Cooldown is the minimum time in seconds between two counted cracks.
	Cooldown float64
	// OffImage selects the policy for held frames outside the image.
	OffImage OffImagePolicy
}

// Radius returns the effective neighbourhood radius.
func (c Config) Radius() int {
	r := max(c.InsideRadius, c.OutsideRadius)
	if r < 0 {
		return 0
	}
	return r
}

// Input is the per-frame pointer state in image coordinates.
type Input struct {
	X, Y int
	Held bool
	// DT is the time elapsed since the previous Update, in seconds.
	DT float64
}

// Tracker tracks one tracing session.
type Tracker struct {
	cfg        Config
	classifier Classifier
	radius     int

	pixels    *Pixmap
	scratched *Mask

	total    int
	fallback bool
	cracks   int
	cooldown float64
	progress float64
	released bool
}

// NewTracker copies img and precomputes the outline pixel count.
//
// When no pixel passes the outline test, every visible pixel is treated as
// outline for the rest of the session so that the denominator is never zero.
func NewTracker(img image.Image, cfg Config) (*Tracker, error) {
	pixels, err := NewPixmap(img)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracker: %w", err)
	}

	cfg.Threshold = ClampThreshold(cfg.Threshold)
	t := &Tracker{
		cfg:        cfg,
		classifier: Classifier{Threshold: cfg.Threshold},
		radius:     cfg.Radius(),
		pixels:     pixels,
		scratched:  NewMask(pixels.Width(), pixels.Height()),
	}

	t.total = t.countPixels(t.classifier.IsOutline)
	if t.total == 0 {
		t.fallback = true
		t.total = t.countPixels(t.classifier.IsVisible)
	}

	return t, nil
}

func (t *Tracker) countPixels(pred func(c color.NRGBA) bool) int {
	n := 0
	for y := 0; y < t.pixels.Height(); y++ {
		for x := 0; x < t.pixels.Width(); x++ {
			if pred(t.pixels.At(x, y)) {
				n++
			}
		}
	}
	return n
}

// isTarget applies the effective outline predicate of this session.
func (t *Tracker) isTarget(x, y int) bool {
	c := t.pixels.At(x, y)
	if t.fallback {
		return t.classifier.IsVisible(c)
	}
	return t.classifier.IsOutline(c)
}

// Update advances the session by one frame.
func (t *Tracker) Update(in Input) Event {
	if t.released {
		return EventNone
	}

	t.cooldown -= in.DT

	if !in.Held {
		return EventNone
	}

	if !t.pixels.InBounds(in.X, in.Y) {
		if t.cfg.OffImage == OffImageCrack {
			t.cracks++
			return EventCrack
		}
		return EventNone
	}

	hit := false
	if t.classifier.IsVisible(t.pixels.At(in.X, in.Y)) {
		hit = t.scratchAround(in.X, in.Y)
	}
	t.updateProgress()

	if hit {
		return EventTrace
	}

	if t.cooldown <= 0 {
		t.cracks++
		t.cooldown = t.cfg.Cooldown
		return EventCrack
	}
	return EventNone
}

// scratchAround marks every target pixel in the clipped neighbourhood of (cx, cy)
// and reports whether any target pixel was found.
func (t *Tracker) scratchAround(cx, cy int) bool {
	x0, x1 := max(cx-t.radius, 0), min(cx+t.radius, t.pixels.Width()-1)
	y0, y1 := max(cy-t.radius, 0), min(cy+t.radius, t.pixels.Height()-1)

	found := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !t.isTarget(x, y) {
				continue
			}
			t.scratched.Set(x, y)
			found = true
		}
	}
	return found
}

func (t *Tracker) updateProgress() {
	if t.total <= 0 {
		t.progress = 0
		return
	}
	p := float64(t.scratched.Count()) / float64(t.total)
	if p > 1 {
		p = 1
	}
	t.progress = p
}

// Progress returns the traced fraction of the outline in [0, 1].
func (t *Tracker) Progress() float64 { return t.progress }

// Cracks returns the number of cracks counted so far.
func (t *Tracker) Cracks() int { return t.cracks }

// Total returns the denominator of Progress.
func (t *Tracker) Total() int { return t.total }

// Scratched returns the number of credited outline pixels.
func (t *Tracker) Scratched() int { return t.scratched.Count() }

// UsedFallback reports whether the session counts visible pixels because the
// image had no pixel darker than the threshold.
func (t *Tracker) UsedFallback() bool { return t.fallback }

// Config returns the effective configuration (threshold already clamped).
func (t *Tracker) Config() Config { return t.cfg }

// Width returns the reference image width, or 0 after Release.
func (t *Tracker) Width() int { return t.pixels.Width() }

// Height returns the reference image height, or 0 after Release.
func (t *Tracker) Height() int { return t.pixels.Height() }

// InBounds reports whether (x, y) is a pixel of the reference image.
func (t *Tracker) InBounds(x, y int) bool { return t.pixels.InBounds(x, y) }

// IsOutline reports whether (x, y) counts toward Total.
func (t *Tracker) IsOutline(x, y int) bool {
	if !t.pixels.InBounds(x, y) {
		return false
	}
	return t.isTarget(x, y)
}

// IsScratched reports whether (x, y) has been credited.
func (t *Tracker) IsScratched(x, y int) bool { return t.scratched.Get(x, y) }

// EachScratched calls fn for every credited pixel. Used by renderers to draw
// the scratch overlay.
func (t *Tracker) EachScratched(fn func(x, y int)) { t.scratched.Each(fn) }

// Release frees the pixel buffer and mask. It is safe to call more than once;
// Progress and Cracks keep their final values.
func (t *Tracker) Release() {
	if t.released {
		return
	}
	t.released = true
	t.pixels.Release()
	t.scratched.Release()
}

// Released reports whether Release has been called.
func (t *Tracker) Released() bool { return t.released }
