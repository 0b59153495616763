// Package bridge implements the glass bridge minigame.
//
// The bridge has a number of rows with a left and a right glass panel each.
// Every panel is independently SAFE or BREAK, so a row may have two breaking
// panels. The player selects a side and steps; stepping on a breaking panel
// ends the game, crossing every row wins it.
package bridge

import (
	"errors"
	"math/rand"
)

// ErrNoRows is returned by New for a bridge without rows.
var ErrNoRows = errors.New("bridge needs at least one row")

// Side of a row.
type Side int

const (
	Left Side = iota
	Right
)

// Panel type.
type Panel int

const (
	Safe Panel = iota
	Break
)

// StepResult describes what happened on Step.
type StepResult int

const (
	// StepIgnored means the game is already over.
	StepIgnored StepResult = iota
	StepSafe
	StepBroke
	StepCrossed
)

// Game is one glass bridge round.
type Game struct {
	rng     *rand.Rand
	panels  [][2]Panel
	stepped [][2]bool

	row  int
	side Side
	over bool
	won  bool
}

// New creates a bridge with the given number of rows and rolls its panels.
func New(rows int, rng *rand.Rand) (*Game, error) {
	if rows <= 0 {
		return nil, ErrNoRows
	}
	g := &Game{
		rng:     rng,
		panels:  make([][2]Panel, rows),
		stepped: make([][2]bool, rows),
	}
	g.Reset()
	return g, nil
}

// Reset rerolls every panel and puts the player back at the first row.
func (g *Game) Reset() {
	for i := range g.panels {
		for j := 0; j < 2; j++ {
			if g.rng.Intn(2) == 0 {
				g.panels[i][j] = Safe
			} else {
				g.panels[i][j] = Break
			}
			g.stepped[i][j] = false
		}
	}
	g.row = 0
	g.side = Left
	g.over = false
	g.won = false
}

// Select chooses the side of the current row. Ignored once the game is over.
func (g *Game) Select(s Side) {
	if g.over || (s != Left && s != Right) {
		return
	}
	g.side = s
}

// Step steps onto the selected panel of the current row.
func (g *Game) Step() StepResult {
	if g.over {
		return StepIgnored
	}

	g.stepped[g.row][g.side] = true
	if g.panels[g.row][g.side] == Break {
		g.over = true
		return StepBroke
	}

	g.row++
	if g.row >= len(g.panels) {
		g.over = true
		g.won = true
		return StepCrossed
	}
	return StepSafe
}

// Rows returns the number of rows.
func (g *Game) Rows() int { return len(g.panels) }

// Row returns the index of the row the player stands before.
func (g *Game) Row() int { return g.row }

// Side returns the selected side.
func (g *Game) Side() Side { return g.side }

// Over reports whether the round has ended.
func (g *Game) Over() bool { return g.over }

// Won reports whether the player crossed the bridge.
func (g *Game) Won() bool { return g.won }

// Progress is the fraction of rows crossed.
func (g *Game) Progress() float64 {
	return float64(g.row) / float64(len(g.panels))
}

// Panel returns the panel type at row/side. Out of range rows report Safe.
func (g *Game) Panel(row int, s Side) Panel {
	if row < 0 || row >= len(g.panels) || s < Left || s > Right {
		return Safe
	}
	return g.panels[row][s]
}

// Stepped reports whether the player stepped on row/side.
func (g *Game) Stepped(row int, s Side) bool {
	if row < 0 || row >= len(g.panels) || s < Left || s > Right {
		return false
	}
	return g.stepped[row][s]
}
