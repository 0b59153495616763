package marbles

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/decker502/squidarcade/pkg/config"
)

func testConfig() config.MarblesConfig {
	return config.MarblesConfig{Start: 10, MaxBet: 5, AIDelay: 1.5, ResultDelay: 2}
}

func newGame(seed int64) *Game {
	return New(testConfig(), rand.New(rand.NewSource(seed)))
}

// finishPlayerTurn 让 AI 出弹珠完成结算
func finishPlayerTurn(t *testing.T, g *Game) Turn {
	t.Helper()
	if g.Update(1.0) {
		t.Fatal("AI should still be waiting after 1s")
	}
	if !g.Update(0.6) {
		t.Fatal("AI should have played after the delay")
	}
	turn, ok := g.LastTurn()
	if !ok || !turn.PlayerGuessing {
		t.Fatalf("LastTurn() = %+v, %v", turn, ok)
	}
	return turn
}

func TestPlayerTurnTransfersStake(t *testing.T) {
	g := newGame(1)
	if err := g.Guess(true); err != nil {
		t.Fatalf("Guess() error: %v", err)
	}
	if err := g.Bet(3); err != nil {
		t.Fatalf("Bet() error: %v", err)
	}
	if g.Phase() != PhaseAIPut || g.Stake() != 3 {
		t.Fatalf("phase %v stake %d after bet", g.Phase(), g.Stake())
	}

	turn := finishPlayerTurn(t, g)
	if turn.Put < 1 || turn.Put > 5 {
		t.Errorf("AI put %d, want 1..5", turn.Put)
	}
	if turn.Correct != (turn.Put%2 == 1) {
		t.Errorf("Correct = %v for odd guess and put %d", turn.Correct, turn.Put)
	}
	wantPlayer := 7
	if turn.Correct {
		wantPlayer = 13
	}
	if g.PlayerMarbles() != wantPlayer || g.PlayerMarbles()+g.AIMarbles() != 20 {
		t.Errorf("marbles = %d/%d, want player %d and total 20", g.PlayerMarbles(), g.AIMarbles(), wantPlayer)
	}
	if g.Phase() != PhasePut {
		t.Errorf("Phase() = %v, want PhasePut", g.Phase())
	}
}

func TestBetValidation(t *testing.T) {
	g := newGame(1)
	if err := g.Bet(1); !errors.Is(err, ErrWrongPhase) {
		t.Errorf("Bet before guess error = %v, want ErrWrongPhase", err)
	}
	g.Guess(false)
	for _, n := range []int{0, 6, -1} {
		if err := g.Bet(n); !errors.Is(err, ErrInvalidBet) {
			t.Errorf("Bet(%d) error = %v, want ErrInvalidBet", n, err)
		}
	}
	if got := g.Options(); len(got) != 5 || got[0] != 1 || got[4] != 5 {
		t.Errorf("Options() = %v, want 1..5", got)
	}
}

func TestDoubleBetOncePerMatch(t *testing.T) {
	g := newGame(2)
	if err := g.UseDouble(); err != nil {
		t.Fatalf("UseDouble() error: %v", err)
	}
	if err := g.UseDouble(); !errors.Is(err, ErrDoubleUsed) {
		t.Errorf("second UseDouble() error = %v, want ErrDoubleUsed", err)
	}
	g.Guess(true)
	g.Bet(4)
	if g.Stake() != 8 || g.DoubleActive() {
		t.Errorf("Stake() = %d DoubleActive=%v, want 8/false", g.Stake(), g.DoubleActive())
	}

	turn := finishPlayerTurn(t, g)
	if turn.Transfer != 8 {
		t.Errorf("Transfer = %d, want 8", turn.Transfer)
	}

	g.Reset()
	if g.DoubleUsed() {
		t.Error("Reset() should make the double bet available again")
	}
}

func TestTransferIsClamped(t *testing.T) {
	cfg := testConfig()
	cfg.Start = 3
	g := New(cfg, rand.New(rand.NewSource(3)))
	g.UseDouble()
	g.Guess(true)
	g.Bet(3)

	turn := finishPlayerTurn(t, g)
	if turn.Transfer != 3 {
		t.Errorf("Transfer = %d, want clamped to 3", turn.Transfer)
	}
	if g.PlayerMarbles() < 0 || g.AIMarbles() < 0 {
		t.Errorf("negative marbles: %d/%d", g.PlayerMarbles(), g.AIMarbles())
	}
	if g.Phase() != PhaseOver {
		t.Errorf("Phase() = %v, want PhaseOver", g.Phase())
	}
	if g.PlayerWon() != turn.Correct {
		t.Errorf("PlayerWon() = %v, correct = %v", g.PlayerWon(), turn.Correct)
	}
}

func TestAIGuessFollowsHistoryMajority(t *testing.T) {
	g := newGame(4)
	g.history = []int{1, 3, 2}
	if !g.aiGuessOdd() {
		t.Error("two odd puts out of three: AI should guess odd")
	}
	g.history = []int{2, 4, 1}
	if g.aiGuessOdd() {
		t.Error("two even puts out of three: AI should guess even")
	}
	g.history = []int{2, 1}
	if !g.aiGuessOdd() {
		t.Error("tie should guess odd")
	}
}

func TestAITurnUsesHistory(t *testing.T) {
	g := newGame(5)
	g.phase = PhasePut
	g.history = []int{2, 4}

	if err := g.Put(2); err != nil {
		t.Fatalf("Put() error: %v", err)
	}
	turn, _ := g.LastTurn()
	if turn.PlayerGuessing || turn.GuessOdd || !turn.Correct {
		t.Errorf("AI should guess even and be right: %+v", turn)
	}
	if g.PlayerMarbles() != 8 || g.AIMarbles() != 12 {
		t.Errorf("marbles = %d/%d, want 8/12", g.PlayerMarbles(), g.AIMarbles())
	}
	if len(g.history) != 3 {
		t.Errorf("history length = %d, want 3", len(g.history))
	}

	if g.Phase() != PhaseResult {
		t.Fatalf("Phase() = %v, want PhaseResult", g.Phase())
	}
	g.Update(1.0)
	if !g.Update(1.1) || g.Phase() != PhaseGuess {
		t.Errorf("result display should end after 2s, phase %v", g.Phase())
	}
}

func TestOptionsCappedByMarbles(t *testing.T) {
	g := newGame(6)
	g.player = 2
	g.phase = PhasePut
	if got := g.Options(); len(got) != 2 {
		t.Errorf("Options() = %v, want [1 2]", got)
	}
	if err := g.Put(3); !errors.Is(err, ErrInvalidBet) {
		t.Errorf("Put(3) error = %v, want ErrInvalidBet", err)
	}
}

func TestAIPutWithinRange(t *testing.T) {
	g := newGame(7)
	g.ai = 2
	for i := 0; i < 100; i++ {
		if n := g.aiPut(); n < 1 || n > 2 {
			t.Fatalf("aiPut() = %d, want 1..2", n)
		}
	}
}
