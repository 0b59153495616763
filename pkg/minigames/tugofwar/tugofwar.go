// Package tugofwar implements the two player tug of war minigame.
//
// Each player mashes a key. Key presses are counted per reset window and the
// rope moves every frame by the difference of the two counts times the pull
// force. Player 1 wins when the rope reaches the left edge, player 2 when it
// reaches the right edge.
package tugofwar

import "github.com/decker502/squidarcade/pkg/config"

// Winner of a round.
type Winner int

const (
	NoWinner Winner = iota
	Player1
	Player2
)

func (w Winner) String() string {
	switch w {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "none"
}

// Game is one tug of war round.
type Game struct {
	cfg config.TugOfWarConfig

	ropeX      float64
	pulls1     int
	pulls2     int
	resetTimer float64
	winner     Winner
}

// New creates a round with the rope centred in the arena.
func New(cfg config.TugOfWarConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset()
	return g
}

// Reset re-centres the rope and clears the pull counts.
func (g *Game) Reset() {
	g.ropeX = g.cfg.ArenaWidth / 2
	g.pulls1 = 0
	g.pulls2 = 0
	g.resetTimer = 0
	g.winner = NoWinner
}

// Update advances one frame. pull1/pull2 report a key press of each player
// during this frame. It returns the winner decided this frame, if any.
func (g *Game) Update(dt float64, pull1, pull2 bool) Winner {
	if g.winner != NoWinner {
		return NoWinner
	}

	g.resetTimer += dt
	if g.resetTimer >= g.cfg.ResetInterval {
		g.resetTimer = 0
		g.pulls1 = 0
		g.pulls2 = 0
	}

	if pull1 {
		g.pulls1++
	}
	if pull2 {
		g.pulls2++
	}

	g.ropeX += float64(g.pulls2-g.pulls1) * g.cfg.PullForce

	half := g.cfg.RopeWidth / 2
	switch {
	case g.ropeX < half:
		g.ropeX = half
		g.winner = Player1
	case g.ropeX > g.cfg.ArenaWidth-half:
		g.ropeX = g.cfg.ArenaWidth - half
		g.winner = Player2
	}
	return g.winner
}

// RopeX returns the rope centre in arena coordinates.
func (g *Game) RopeX() float64 { return g.ropeX }

// Pulls returns the pull counts of the current window.
func (g *Game) Pulls() (int, int) { return g.pulls1, g.pulls2 }

// Winner returns the winner, NoWinner while the round runs.
func (g *Game) Winner() Winner { return g.winner }

// Over reports whether the round has a winner.
func (g *Game) Over() bool { return g.winner != NoWinner }

// Balance maps the rope position to [-1, 1]; -1 is player 1's edge.
func (g *Game) Balance() float64 {
	half := g.cfg.RopeWidth / 2
	span := g.cfg.ArenaWidth/2 - half
	if span <= 0 {
		return 0
	}
	return (g.ropeX - g.cfg.ArenaWidth/2) / span
}
