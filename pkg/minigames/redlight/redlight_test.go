package redlight

import (
	"testing"

	"github.com/decker502/squidarcade/pkg/config"
)

const dt = 1.0 / 60

func testConfig() config.RedLightConfig {
	return config.RedLightConfig{
		Duration:    30,
		RedDuration: 2,
		Speed:       240,
		StartX:      80,
		StartY:      200,
		GapY:        100,
		FinishX:     200,
		Players: []config.PlayerConfig{
			{Name: "456"}, {Name: "222"},
		},
	}
}

// run 推进 n 帧
func run(g *Game, n int, moving ...bool) Events {
	var total Events
	for i := 0; i < n; i++ {
		ev := g.Update(dt, moving)
		total.Eliminated += ev.Eliminated
		total.Finished += ev.Finished
		total.GreenStarted = total.GreenStarted || ev.GreenStarted
		total.Ended = total.Ended || ev.Ended
	}
	return total
}

func TestNewPlacesPlayers(t *testing.T) {
	g := New(testConfig(), 0)

	if g.GreenDuration() != DefaultGreenDuration {
		t.Errorf("GreenDuration() = %v, want default %v", g.GreenDuration(), DefaultGreenDuration)
	}
	players := g.Players()
	if len(players) != 2 {
		t.Fatalf("len(Players()) = %d, want 2", len(players))
	}
	if players[1].X != 80 || players[1].Y != 300 {
		t.Errorf("player 2 at (%v,%v), want (80,300)", players[1].X, players[1].Y)
	}
	if g.Phase() != PhaseGreen || g.TimeLeft() != 30 {
		t.Errorf("initial phase %v time %v", g.Phase(), g.TimeLeft())
	}
}

func TestGreenDurationSources(t *testing.T) {
	cfg := testConfig()
	cfg.GreenDuration = 3
	if got := New(cfg, 0).GreenDuration(); got != 3 {
		t.Errorf("configured green = %v, want 3", got)
	}
	if got := New(cfg, 4.2).GreenDuration(); got != 4.2 {
		t.Errorf("explicit green = %v, want 4.2", got)
	}
}

func TestPhaseCycle(t *testing.T) {
	g := New(testConfig(), 1)

	run(g, 61)
	if g.Phase() != PhaseRed {
		t.Fatalf("Phase() = %v after green elapsed, want red", g.Phase())
	}
	ev := run(g, 121)
	if g.Phase() != PhaseGreen || !ev.GreenStarted {
		t.Errorf("Phase() = %v GreenStarted=%v after red elapsed", g.Phase(), ev.GreenStarted)
	}
}

func TestMovingDuringRedEliminates(t *testing.T) {
	g := New(testConfig(), 1)
	run(g, 61)

	ev := g.Update(dt, []bool{true, false})
	if ev.Eliminated != 1 {
		t.Fatalf("Eliminated = %d, want 1", ev.Eliminated)
	}
	players := g.Players()
	if players[0].Alive || !players[1].Alive {
		t.Errorf("alive = %v/%v, want false/true", players[0].Alive, players[1].Alive)
	}

	x := players[0].X
	run(g, 200, true, false)
	if g.Players()[0].X != x {
		t.Error("eliminated player kept moving")
	}
}

func TestFinishAndStandings(t *testing.T) {
	g := New(testConfig(), 10)

	// 4px per frame: player 1 reaches x=200 after about 30 frames
	ev := run(g, 20, true, false)
	if ev.Finished != 0 {
		t.Fatal("finished too early")
	}
	ev = run(g, 12, true, true)
	if ev.Finished != 1 {
		t.Fatalf("Finished = %d, want 1", ev.Finished)
	}
	run(g, 30, false, true)

	if !g.Over() {
		t.Fatal("game should end once every player finished")
	}
	st := g.Standings()
	if len(st) != 2 || st[0].Name != "456" || st[1].Name != "222" {
		t.Fatalf("Standings() = %+v", st)
	}
	if st[0].FinishTime >= st[1].FinishTime {
		t.Errorf("finish times not ordered: %v, %v", st[0].FinishTime, st[1].FinishTime)
	}
}

func TestTimeUpEndsGame(t *testing.T) {
	cfg := testConfig()
	cfg.Duration = 1
	g := New(cfg, 10)

	ev := run(g, 61)
	if !ev.Ended || !g.Over() {
		t.Fatal("game should end when time is up")
	}
	if g.TimeLeft() != 0 {
		t.Errorf("TimeLeft() = %v, want 0", g.TimeLeft())
	}
	if len(g.Standings()) != 0 {
		t.Error("nobody finished, standings should be empty")
	}

	before := g.Players()
	g.Update(dt, []bool{true, true})
	if g.Players()[0].X != before[0].X {
		t.Error("Update after game over changed state")
	}
}

func TestReset(t *testing.T) {
	g := New(testConfig(), 1)
	run(g, 61)
	g.Update(dt, []bool{true, true})
	g.Reset()

	for _, p := range g.Players() {
		if !p.Alive || p.Finished || p.X != 80 || p.FinishTime != -1 {
			t.Errorf("player %s not reset: %+v", p.Name, p)
		}
	}
	if g.Phase() != PhaseGreen || g.Over() {
		t.Error("phase or over flag not reset")
	}
}
