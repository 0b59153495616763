package scenes

import (
	"image/color"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/minigames/marbles"
	"github.com/decker502/squidarcade/pkg/minigames/redlight"
)

func TestFinishersFrom(t *testing.T) {
	blue := color.NRGBA{0, 121, 241, 255}
	standings := []redlight.Player{
		{Name: "456", FinishTime: 3.5, Finished: true, Alive: true},
		{Name: "067", FinishTime: 4.25, Finished: true, Alive: true},
	}

	got := finishersFrom(standings, map[string]color.NRGBA{"456": blue})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Name != "456" || got[0].Time != 3500*time.Millisecond || got[0].Color != blue {
		t.Errorf("first finisher = %+v", got[0])
	}
	if got[1].Time != 4250*time.Millisecond || got[1].Color != (color.NRGBA{}) {
		t.Errorf("second finisher = %+v", got[1])
	}
	if len(finishersFrom(nil, nil)) != 0 {
		t.Error("expected no finishers for empty standings")
	}
}

func newMarbles(seed int64) *marbles.Game {
	return marbles.New(config.DefaultArcadeConfig().Marbles, rand.New(rand.NewSource(seed)))
}

func TestMarblesNarrationPhases(t *testing.T) {
	g := newMarbles(1)
	if got := marblesNarration(g); !strings.Contains(got, "Guess if AI's marbles are Odd or Even") {
		t.Errorf("guess narration = %q", got)
	}

	if err := g.UseDouble(); err != nil {
		t.Fatal(err)
	}
	if err := g.Guess(true); err != nil {
		t.Fatal(err)
	}
	got := marblesNarration(g)
	if !strings.Contains(got, "You guessed Odd") || !strings.Contains(got, "doubled") {
		t.Errorf("bet narration = %q", got)
	}

	if err := g.Bet(2); err != nil {
		t.Fatal(err)
	}
	if got := marblesNarration(g); !strings.Contains(got, "You bet 4 marbles") {
		t.Errorf("AI put narration = %q", got)
	}

	g.Update(10)
	if g.Phase() == marbles.PhasePut {
		if got := marblesNarration(g); !strings.Contains(got, "AI put") || !strings.HasSuffix(got, "put forward.") {
			t.Errorf("put narration = %q", got)
		}
	}
}

func TestTurnNarration(t *testing.T) {
	tests := []struct {
		name string
		turn marbles.Turn
		want string
	}{
		{"player right", marbles.Turn{PlayerGuessing: true, Put: 3, Correct: true, Transfer: 2}, "AI put 3 marbles. You guessed right! You win 2 marbles."},
		{"player wrong", marbles.Turn{PlayerGuessing: true, Put: 4, Transfer: 2}, "AI put 4 marbles. Wrong guess! You lose 2 marbles."},
		{"ai right", marbles.Turn{Put: 5, GuessOdd: true, Correct: true, Transfer: 5}, "You put 5 marbles. AI guesses Odd. AI guessed right! It wins 5 marbles."},
		{"ai wrong", marbles.Turn{Put: 2, GuessOdd: true, Transfer: 2}, "You put 2 marbles. AI guesses Odd. AI guessed wrong! You win 2 marbles."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := turnNarration(tt.turn); got != tt.want {
				t.Errorf("turnNarration() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildControlLines(t *testing.T) {
	lines := buildControlLines(config.DefaultArcadeConfig())

	var heads int
	var all []string
	for _, l := range lines {
		if l.head {
			heads++
		}
		all = append(all, l.text)
	}
	if heads != 6 {
		t.Errorf("got %d section headers, want 6", heads)
	}
	joined := strings.Join(all, "\n")
	for _, want := range []string{"456: ArrowRight", "Tap A (left team) and L (right team)"} {
		if !strings.Contains(joined, want) {
			t.Errorf("control lines missing %q", want)
		}
	}
}

func TestClamp01(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{{-1, 0}, {0.25, 0.25}, {3, 1}} {
		if got := clamp01(tt.in); got != tt.want {
			t.Errorf("clamp01(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
