package game

import (
	"fmt"
	"strings"
)

// StateID identifies a screen of the arcade.
type StateID int

const (
	StateMenu StateID = iota
	StateControls
	StateRedLight
	StateDalgona
	StateBoundary
	StateTugOfWar
	StateBridge
	StateMarbles
	StateWinners
	StateQuit
)

var stateNames = [...]string{
	StateMenu:     "menu",
	StateControls: "controls",
	StateRedLight: "redlight",
	StateDalgona:  "dalgona",
	StateBoundary: "boundary",
	StateTugOfWar: "tugofwar",
	StateBridge:   "bridge",
	StateMarbles:  "marbles",
	StateWinners:  "winners",
	StateQuit:     "quit",
}

func (s StateID) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("StateID(%d)", int(s))
}

// ParseStateID converts a state name (case-insensitive) into a StateID.
func ParseStateID(name string) (StateID, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stateNames {
		if n == name {
			return StateID(i), nil
		}
	}
	return StateMenu, fmt.Errorf("%w: %q", ErrUnknownState, name)
}

// States returns every state in declaration order.
func States() []StateID {
	out := make([]StateID, len(stateNames))
	for i := range stateNames {
		out[i] = StateID(i)
	}
	return out
}

// GameStates returns the playable minigames in menu order.
func GameStates() []StateID {
	return []StateID{StateRedLight, StateTugOfWar, StateDalgona, StateBridge, StateMarbles, StateBoundary}
}

// TransitionTable lists the allowed target states of every state.
type TransitionTable map[StateID][]StateID

// Allowed reports whether from -> to is in the table.
func (t TransitionTable) Allowed(from, to StateID) bool {
	for _, s := range t[from] {
		if s == to {
			return true
		}
	}
	return false
}

// DefaultTransitions returns the arcade screen graph:
//
//	menu     -> every game, controls, quit
//	game     -> menu, winners, quit
//	winners  -> menu, quit
//	controls -> menu, quit
func DefaultTransitions() TransitionTable {
	t := TransitionTable{
		StateMenu:     append(GameStates(), StateControls, StateQuit),
		StateControls: {StateMenu, StateQuit},
		StateWinners:  {StateMenu, StateQuit},
	}
	for _, g := range GameStates() {
		t[g] = []StateID{StateMenu, StateWinners, StateQuit}
	}
	return t
}
