// Package main runs a tracing session headlessly against a generated shape and
// reports how the tracker scores it. It is used to tune the tracing presets in
// data/arcade.yaml without playing the game.
//
// Usage:
//
//	go run ./cmd/verify_tracing [flags]
//
// Flags:
//
//	--game <dalgona|boundary>  Preset to use (default: dalgona)
//	--shape <kind>             circle, triangle, umbrella or star (default: star)
//	--config <path>            Arcade configuration (default: data/arcade.yaml)
//	--jitter <px>              Random pointer offset per frame, simulates a shaky hand
//	--seed <n>                 Random seed for --jitter
//	--dump <file.png>          Write the image with the scratched pixels marked
//	--coverage <file.svg>      Write outline and scratched pixels as an SVG report
//	--outline <file.svg>       Write the outline pixels vectorised with gotrace
//	--verbose                  Enable verbose logging
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/shapes"
	"github.com/decker502/squidarcade/pkg/trace"
)

const frame = 1.0 / 60

var (
	gameFlag     = flag.String("game", "dalgona", "Tracing preset: dalgona or boundary")
	shapeFlag    = flag.String("shape", "star", "Shape kind")
	configFlag   = flag.String("config", "data/arcade.yaml", "Arcade configuration file")
	jitterFlag   = flag.Int("jitter", 0, "Random pointer offset in pixels")
	seedFlag     = flag.Int64("seed", 1, "Random seed")
	dumpFlag     = flag.String("dump", "", "Write the traced image to this PNG file")
	coverageFlag = flag.String("coverage", "", "Write an SVG coverage report to this file")
	outlineFlag  = flag.String("outline", "", "Write the vectorised outline to this SVG file")
	verboseFlag  = flag.Bool("verbose", false, "Enable verbose logging")
)

// report summarises one simulated session.
type report struct {
	Frames   int
	Outcome  trace.Outcome
	Progress float64
	Cracks   int
	Total    int
	Fallback bool
}

func main() {
	flag.Parse()
	if !*verboseFlag {
		log.SetOutput(io.Discard)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadArcadeConfig(*configFlag)
	if err != nil {
		log.Printf("Warning: %v, using defaults", err)
		cfg = config.DefaultArcadeConfig()
	}
	kind, err := shapes.ParseKind(*shapeFlag)
	if err != nil {
		return err
	}

	img, preset, err := sessionInput(cfg, *gameFlag, kind)
	if err != nil {
		return err
	}
	traceCfg, err := preset.TraceConfig()
	if err != nil {
		return err
	}
	tracker, err := trace.NewTracker(img, traceCfg)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(*seedFlag))
	r := simulate(tracker, preset.Rules(), *jitterFlag, rng)

	fmt.Printf("game=%s shape=%s size=%dx%d\n", *gameFlag, kind, tracker.Width(), tracker.Height())
	fmt.Printf("outline pixels: %d (fallback: %v)\n", r.Total, r.Fallback)
	fmt.Printf("outcome: %s after %d frames, progress %.1f%%, cracks %d\n", r.Outcome, r.Frames, 100*r.Progress, r.Cracks)

	if *dumpFlag != "" {
		if err := dump(*dumpFlag, img, tracker); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *dumpFlag)
	}
	if *coverageFlag != "" {
		f, err := os.Create(*coverageFlag)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", *coverageFlag, err)
		}
		writeCoverageSVG(f, tracker, r)
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *coverageFlag)
	}
	if *outlineFlag != "" {
		if err := writeOutlineSVG(*outlineFlag, tracker); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", *outlineFlag)
	}
	tracker.Release()
	return nil
}

// sessionInput builds the reference image and preset of a game.
func sessionInput(cfg *config.ArcadeConfig, gameName string, kind shapes.Kind) (image.Image, config.TracingPreset, error) {
	switch gameName {
	case "dalgona":
		return shapes.Cookie(kind, shapes.DefaultStyle(cfg.Dalgona.ImageSize)), cfg.Dalgona.Tracing, nil
	case "boundary":
		boundary, _ := shapes.Boundary(kind, cfg.Boundary.Size, cfg.Boundary.Thickness)
		return boundary, cfg.Boundary.Tracing, nil
	}
	return nil, config.TracingPreset{}, fmt.Errorf("unknown game %q (want dalgona or boundary)", gameName)
}

// simulate visits every outline pixel in raster order with the pointer held,
// optionally offset by up to jitter pixels, until the rules decide.
func simulate(t *trace.Tracker, rules trace.Rules, jitter int, rng *rand.Rand) report {
	r := report{Total: t.Total(), Fallback: t.UsedFallback()}

	var targets []image.Point
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			if t.IsOutline(x, y) {
				targets = append(targets, image.Pt(x, y))
			}
		}
	}

	for _, p := range targets {
		if t.IsScratched(p.X, p.Y) {
			continue
		}
		if jitter > 0 {
			p.X += rng.Intn(2*jitter+1) - jitter
			p.Y += rng.Intn(2*jitter+1) - jitter
		}
		ev := t.Update(trace.Input{X: p.X, Y: p.Y, Held: true, DT: frame})
		r.Frames++
		log.Printf("[Simulate] frame %d at (%d, %d): %s", r.Frames, p.X, p.Y, ev)

		if r.Outcome = rules.Evaluate(t); r.Outcome != trace.OutcomePending {
			break
		}
	}
	r.Progress = t.Progress()
	r.Cracks = t.Cracks()
	return r
}

// dump writes img with every scratched pixel painted red.
func dump(path string, img image.Image, t *trace.Tracker) error {
	out := image.NewNRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	red := color.NRGBA{R: 230, G: 41, B: 55, A: 255}
	t.EachScratched(func(x, y int) {
		out.SetNRGBA(out.Rect.Min.X+x, out.Rect.Min.Y+y, red)
	})

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}
