package main

import (
	"bytes"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/shapes"
	"github.com/decker502/squidarcade/pkg/trace"
)

func TestSimulatePerfectTrace(t *testing.T) {
	cfg := config.DefaultArcadeConfig()
	for _, game := range []string{"dalgona", "boundary"} {
		for _, kind := range shapes.Kinds() {
			t.Run(game+"/"+kind.String(), func(t *testing.T) {
				img, preset, err := sessionInput(cfg, game, kind)
				if err != nil {
					t.Fatal(err)
				}
				tc, err := preset.TraceConfig()
				if err != nil {
					t.Fatal(err)
				}
				tracker, err := trace.NewTracker(img, tc)
				if err != nil {
					t.Fatal(err)
				}
				defer tracker.Release()

				r := simulate(tracker, preset.Rules(), 0, rand.New(rand.NewSource(1)))
				if r.Outcome != trace.OutcomeSuccess {
					t.Errorf("outcome = %s (progress %.2f, cracks %d), want success", r.Outcome, r.Progress, r.Cracks)
				}
				if r.Cracks != 0 {
					t.Errorf("cracks = %d, want 0 when every step is on the outline", r.Cracks)
				}
			})
		}
	}
}

func TestSessionInputUnknownGame(t *testing.T) {
	if _, _, err := sessionInput(config.DefaultArcadeConfig(), "marbles", shapes.Star); err == nil {
		t.Error("expected error for a game without tracing")
	}
}

func TestSpans(t *testing.T) {
	// Row 0: xx.x  Row 1: ....
	set := map[[2]int]bool{{0, 0}: true, {1, 0}: true, {3, 0}: true}
	got := spans(4, 2, func(x, y int) bool { return set[[2]int{x, y}] })
	want := []span{{0, 0, 2}, {3, 0, 1}}
	if len(got) != len(want) {
		t.Fatalf("spans() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("spans()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func newStarTracker(t *testing.T) (*trace.Tracker, trace.Rules) {
	t.Helper()
	cfg := config.DefaultArcadeConfig()
	img, preset, err := sessionInput(cfg, "dalgona", shapes.Star)
	if err != nil {
		t.Fatal(err)
	}
	tc, err := preset.TraceConfig()
	if err != nil {
		t.Fatal(err)
	}
	tracker, err := trace.NewTracker(img, tc)
	if err != nil {
		t.Fatal(err)
	}
	return tracker, preset.Rules()
}

func TestWriteCoverageSVG(t *testing.T) {
	tracker, rules := newStarTracker(t)
	defer tracker.Release()
	r := simulate(tracker, rules, 0, rand.New(rand.NewSource(1)))

	var buf bytes.Buffer
	writeCoverageSVG(&buf, tracker, r)
	out := buf.String()
	for _, want := range []string{"<svg", "rgb(230,41,55)", "success", "</svg>"} {
		if !strings.Contains(out, want) {
			t.Errorf("coverage SVG missing %q", want)
		}
	}
}

func TestWriteOutlineSVG(t *testing.T) {
	tracker, _ := newStarTracker(t)
	defer tracker.Release()

	path := filepath.Join(t.TempDir(), "outline.svg")
	if err := writeOutlineSVG(path, tracker); err != nil {
		t.Fatalf("writeOutlineSVG() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "svg") {
		t.Errorf("outline file does not look like SVG: %.80q", data)
	}
}
