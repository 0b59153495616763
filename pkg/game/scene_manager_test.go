package game

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene, Enterer and Exiter interfaces.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
	entered      int
	exited       int
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func (m *MockScene) OnEnter() { m.entered++ }
func (m *MockScene) OnExit()  { m.exited++ }

// plainScene implements only Scene.
type plainScene struct{}

func (plainScene) Update(float64)        {}
func (plainScene) Draw(*ebiten.Image) {}

// newTestManager registers a MockScene factory for every state except quit and
// records the created scenes.
func newTestManager() (*SceneManager, map[StateID][]*MockScene) {
	sm := NewSceneManager(nil)
	created := make(map[StateID][]*MockScene)
	for _, id := range States() {
		if id == StateQuit {
			continue
		}
		id := id
		sm.Register(id, func() (Scene, error) {
			s := &MockScene{}
			created[id] = append(created[id], s)
			return s, nil
		})
	}
	return sm, created
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager(nil)
	if sm.Current() != nil {
		t.Error("Expected no current scene initially")
	}
	if sm.Quit() {
		t.Error("Quit() = true before start")
	}
}

func TestSceneManagerStartAndTransition(t *testing.T) {
	sm, created := newTestManager()

	if err := sm.Start(StateMenu); err != nil {
		t.Fatalf("Start() error: %v", err)
	}
	menu := created[StateMenu][0]
	if menu.entered != 1 {
		t.Errorf("menu entered %d times, want 1", menu.entered)
	}

	if err := sm.Transition(StateDalgona); err != nil {
		t.Fatalf("Transition(dalgona) error: %v", err)
	}
	if menu.exited != 1 {
		t.Errorf("menu exited %d times, want 1", menu.exited)
	}
	if sm.State() != StateDalgona {
		t.Errorf("State() = %s, want dalgona", sm.State())
	}
	if sm.Current() != created[StateDalgona][0] {
		t.Error("Current() is not the dalgona scene")
	}
}

func TestSceneManagerRejectsTransitions(t *testing.T) {
	sm, created := newTestManager()
	sm.Start(StateMenu)

	err := sm.Transition(StateWinners)
	if !errors.Is(err, ErrTransitionNotAllowed) {
		t.Fatalf("menu -> winners error = %v, want ErrTransitionNotAllowed", err)
	}
	if sm.State() != StateMenu || created[StateMenu][0].exited != 0 {
		t.Error("rejected transition changed the active scene")
	}

	sm.Transition(StateBridge)
	if err := sm.Transition(StateMarbles); !errors.Is(err, ErrTransitionNotAllowed) {
		t.Errorf("bridge -> marbles error = %v, want ErrTransitionNotAllowed", err)
	}
}

func TestSceneManagerUnknownState(t *testing.T) {
	sm := NewSceneManager(nil)
	sm.Register(StateMenu, func() (Scene, error) { return plainScene{}, nil })
	sm.Start(StateMenu)

	if err := sm.Transition(StateMarbles); !errors.Is(err, ErrUnknownState) {
		t.Errorf("Transition to unregistered state error = %v, want ErrUnknownState", err)
	}
	if sm.State() != StateMenu {
		t.Errorf("State() = %s after failed transition, want menu", sm.State())
	}
}

func TestSceneManagerFactoryError(t *testing.T) {
	sm, created := newTestManager()
	boom := errors.New("boom")
	sm.Register(StateBoundary, func() (Scene, error) { return nil, boom })
	sm.Start(StateMenu)

	if err := sm.Transition(StateBoundary); !errors.Is(err, boom) {
		t.Fatalf("Transition() error = %v, want wrapped factory error", err)
	}
	if created[StateMenu][0].exited != 0 {
		t.Error("current scene exited although the new scene could not be created")
	}
}

func TestSceneManagerQuit(t *testing.T) {
	sm, created := newTestManager()
	sm.Start(StateMenu)

	if err := sm.Transition(StateQuit); err != nil {
		t.Fatalf("Transition(quit) error: %v", err)
	}
	if !sm.Quit() {
		t.Error("Quit() = false after quit transition")
	}
	if created[StateMenu][0].exited != 1 {
		t.Error("menu not exited on quit")
	}
	if sm.Current() != nil {
		t.Error("Current() should be nil after quit")
	}

	sm.Close()
	if created[StateMenu][0].exited != 1 {
		t.Error("Close() after quit exited the scene again")
	}
}

func TestSceneManagerCloseRunsExitOnce(t *testing.T) {
	sm, created := newTestManager()
	sm.Start(StateMenu)
	sm.Transition(StateDalgona)

	var exitedStates []StateID
	sm.OnExit(func(id StateID) { exitedStates = append(exitedStates, id) })

	sm.Close()
	sm.Close()

	if got := created[StateDalgona][0].exited; got != 1 {
		t.Errorf("dalgona exited %d times, want 1", got)
	}
	if len(exitedStates) != 1 || exitedStates[0] != StateDalgona {
		t.Errorf("exit callbacks = %v, want [dalgona]", exitedStates)
	}
	if err := sm.Transition(StateMenu); !errors.Is(err, ErrClosed) {
		t.Errorf("Transition after Close error = %v, want ErrClosed", err)
	}
}

func TestSceneManagerEnterCallbacks(t *testing.T) {
	sm, _ := newTestManager()
	var entered []StateID
	sm.OnEnter(func(id StateID) { entered = append(entered, id) })

	sm.Start(StateMenu)
	sm.Transition(StateRedLight)
	sm.Transition(StateWinners)
	sm.Transition(StateMenu)

	want := []StateID{StateMenu, StateRedLight, StateWinners, StateMenu}
	if len(entered) != len(want) {
		t.Fatalf("entered = %v, want %v", entered, want)
	}
	for i := range want {
		if entered[i] != want[i] {
			t.Errorf("entered[%d] = %s, want %s", i, entered[i], want[i])
		}
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm, created := newTestManager()

	// No scene yet: should not panic.
	sm.Update(0.016)
	sm.Draw(nil)

	sm.Start(StateMenu)
	sm.Update(0.016)
	sm.Draw(nil)

	menu := created[StateMenu][0]
	if !menu.updateCalled || menu.deltaTime != 0.016 {
		t.Errorf("Update not forwarded: called=%v dt=%v", menu.updateCalled, menu.deltaTime)
	}
	if !menu.drawCalled {
		t.Error("Draw not forwarded")
	}
}

func TestParseStateID(t *testing.T) {
	for _, id := range States() {
		got, err := ParseStateID(id.String())
		if err != nil || got != id {
			t.Errorf("ParseStateID(%q) = %v, %v", id.String(), got, err)
		}
	}
	if got, err := ParseStateID(" Dalgona "); err != nil || got != StateDalgona {
		t.Errorf("ParseStateID is not case-insensitive: %v, %v", got, err)
	}
	if _, err := ParseStateID("lobby"); !errors.Is(err, ErrUnknownState) {
		t.Errorf("ParseStateID(lobby) error = %v, want ErrUnknownState", err)
	}
}

func TestDefaultTransitions(t *testing.T) {
	table := DefaultTransitions()

	for _, g := range GameStates() {
		if !table.Allowed(StateMenu, g) {
			t.Errorf("menu -> %s should be allowed", g)
		}
		if !table.Allowed(g, StateMenu) || !table.Allowed(g, StateWinners) {
			t.Errorf("%s should return to menu and winners", g)
		}
	}
	if table.Allowed(StateWinners, StateDalgona) {
		t.Error("winners -> dalgona should not be allowed")
	}
	if !table.Allowed(StateControls, StateQuit) {
		t.Error("controls -> quit should be allowed")
	}
}
