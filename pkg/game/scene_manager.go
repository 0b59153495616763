package game

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	// ErrTransitionNotAllowed is returned when the transition table has no edge
	// from the current state to the requested one.
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	// ErrUnknownState is returned for states without a registered factory.
	ErrUnknownState = errors.New("unknown state")
	// ErrClosed is returned by Transition after Close.
	ErrClosed = errors.New("scene manager closed")
)

// SceneFactory 场景工厂函数类型
// 每次进入状态都会创建一个新的场景实例
type SceneFactory func() (Scene, error)

// SceneManager is the screen state machine of the arcade.
// It owns the active scene, validates transitions against a TransitionTable
// and runs the enter/exit hooks of the scenes it switches between.
type SceneManager struct {
	transitions TransitionTable
	factories   map[StateID]SceneFactory

	current Scene
	state   StateID
	started bool
	quit    bool
	closed  bool

	enterHooks []func(StateID)
	exitHooks  []func(StateID)
}

// NewSceneManager creates a scene manager using the given transition table.
// A nil table selects DefaultTransitions.
func NewSceneManager(transitions TransitionTable) *SceneManager {
	if transitions == nil {
		transitions = DefaultTransitions()
	}
	return &SceneManager{
		transitions: transitions,
		factories:   make(map[StateID]SceneFactory),
	}
}

// Register binds a scene factory to a state.
func (sm *SceneManager) Register(id StateID, factory SceneFactory) {
	sm.factories[id] = factory
}

// OnEnter registers a callback that runs after a state's scene has been entered.
func (sm *SceneManager) OnEnter(fn func(StateID)) {
	sm.enterHooks = append(sm.enterHooks, fn)
}

// OnExit registers a callback that runs after a state's scene has been exited.
func (sm *SceneManager) OnExit(fn func(StateID)) {
	sm.exitHooks = append(sm.exitHooks, fn)
}

// Start enters the initial state without consulting the transition table.
func (sm *SceneManager) Start(id StateID) error {
	if sm.started {
		return fmt.Errorf("scene manager already started in %s", sm.state)
	}
	if id == StateQuit {
		sm.started = true
		sm.state = StateQuit
		sm.quit = true
		return nil
	}

	scene, err := sm.create(id)
	if err != nil {
		return err
	}

	sm.started = true
	sm.enter(id, scene)
	return nil
}

// Transition switches to another state.
//
// The new scene is created before the current one is exited, so a failing
// factory leaves the current scene active. Transitioning to StateQuit exits
// the current scene and makes Quit report true.
func (sm *SceneManager) Transition(to StateID) error {
	if sm.closed {
		return ErrClosed
	}
	if !sm.started {
		return sm.Start(to)
	}
	if !sm.transitions.Allowed(sm.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrTransitionNotAllowed, sm.state, to)
	}

	if to == StateQuit {
		log.Printf("[SceneManager] %s -> quit", sm.state)
		sm.exitCurrent()
		sm.state = StateQuit
		sm.quit = true
		return nil
	}

	scene, err := sm.create(to)
	if err != nil {
		return err
	}

	log.Printf("[SceneManager] %s -> %s", sm.state, to)
	sm.exitCurrent()
	sm.enter(to, scene)
	return nil
}

func (sm *SceneManager) create(id StateID) (Scene, error) {
	factory, ok := sm.factories[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, id)
	}
	scene, err := factory()
	if err != nil {
		return nil, fmt.Errorf("failed to create %s scene: %w", id, err)
	}
	return scene, nil
}

func (sm *SceneManager) enter(id StateID, scene Scene) {
	sm.current = scene
	sm.state = id
	if e, ok := scene.(Enterer); ok {
		e.OnEnter()
	}
	for _, fn := range sm.enterHooks {
		fn(id)
	}
}

// exitCurrent runs the exit hook of the active scene once and clears it.
func (sm *SceneManager) exitCurrent() {
	if sm.current == nil {
		return
	}
	scene := sm.current
	sm.current = nil
	if e, ok := scene.(Exiter); ok {
		e.OnExit()
	}
	for _, fn := range sm.exitHooks {
		fn(sm.state)
	}
}

// Close exits the active scene. It is called when the window closes and is
// safe to call more than once.
func (sm *SceneManager) Close() {
	if sm.closed {
		return
	}
	sm.closed = true
	sm.exitCurrent()
	log.Printf("[SceneManager] closed in state %s", sm.state)
}

// Current returns the active scene, or nil before Start and after quit/Close.
func (sm *SceneManager) Current() Scene {
	return sm.current
}

// State returns the current state.
func (sm *SceneManager) State() StateID {
	return sm.state
}

// Quit reports whether the quit state has been reached.
func (sm *SceneManager) Quit() bool {
	return sm.quit
}

// Update updates the active scene.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw renders the active scene.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}

func logTransitionError(to StateID, err error) {
	log.Printf("[SceneManager] Warning: transition to %s failed: %v", to, err)
}
