package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// menuEntry binds a menu row to its shortcut keys and target state.
type menuEntry struct {
	keys   []ebiten.Key
	label  string
	target game.StateID
}

var menuEntries = []menuEntry{
	{[]ebiten.Key{ebiten.KeyDigit1, ebiten.KeyNumpad1}, "1. Red Light, Green Light", game.StateRedLight},
	{[]ebiten.Key{ebiten.KeyDigit2, ebiten.KeyNumpad2}, "2. Tug of War", game.StateTugOfWar},
	{[]ebiten.Key{ebiten.KeyDigit3, ebiten.KeyNumpad3}, "3. Dalgona Candy", game.StateDalgona},
	{[]ebiten.Key{ebiten.KeyDigit4, ebiten.KeyNumpad4}, "4. Glass Bridge", game.StateBridge},
	{[]ebiten.Key{ebiten.KeyDigit5, ebiten.KeyNumpad5}, "5. Marbles", game.StateMarbles},
	{[]ebiten.Key{ebiten.KeyDigit6, ebiten.KeyNumpad6}, "6. Controls", game.StateControls},
	{[]ebiten.Key{ebiten.KeyDigit7, ebiten.KeyNumpad7}, "7. Boundary Tracing", game.StateBoundary},
	{[]ebiten.Key{ebiten.KeyQ}, "Q. Quit", game.StateQuit},
}

const (
	menuButtonW   = 440
	menuButtonH   = 48
	menuButtonTop = 150
	menuButtonGap = 58
)

// MenuScene is the arcade's entry screen. Each minigame can be started with
// its number key or by clicking its row.
type MenuScene struct {
	svc     *game.Services
	buttons []*button
}

// NewMenuScene creates the main menu.
//
// Parameters:
//   - svc: shared services; Scenes is used to start the selected game.
func NewMenuScene(svc *game.Services) *MenuScene {
	m := &MenuScene{svc: svc}
	for i, e := range menuEntries {
		m.buttons = append(m.buttons, &button{
			X:     screenW/2 - menuButtonW/2,
			Y:     menuButtonTop + float64(i)*menuButtonGap,
			W:     menuButtonW,
			H:     menuButtonH,
			Label: e.label,
		})
	}
	return m
}

// Update handles the shortcut keys, menu clicks and settings toggles.
func (m *MenuScene) Update(deltaTime float64) {
	p := readPointer()
	for i, e := range menuEntries {
		clicked := p.hit(m.buttons[i])
		if clicked || utils.AnyKeyJustPressed(e.keys...) {
			log.Printf("[MenuScene] Selected %s", e.target)
			if m.svc.Go(e.target) {
				return
			}
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		enabled := m.svc.Audio.ToggleSound()
		log.Printf("[MenuScene] Sound enabled: %v", enabled)
		saveSettings(m.svc)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		on := m.svc.Settings.ToggleScratchOverlay()
		log.Printf("[MenuScene] Scratch overlay: %v", on)
		saveSettings(m.svc)
	}
}

// Draw renders the title, the menu rows and the settings line.
func (m *MenuScene) Draw(screen *ebiten.Image) {
	drawBackground(screen)
	drawTitle(screen, "SQUID GAME ARCADE", 50, 56, colorWhite)

	for _, b := range m.buttons {
		b.draw(screen)
	}

	s := m.svc.Settings.GetSettings()
	status := fmt.Sprintf("S: sound %s    O: scratch overlay %s    F11: fullscreen", onOff(s.SoundEnabled), onOff(s.ScratchOverlay))
	drawLabel(screen, status, screenW/2, 640, 20, colorWhite, text.AlignCenter)
	drawHint(screen, "Press 1-7 or click a game, Q to quit")
}

func onOff(v bool) string {
	if v {
		return "ON"
	}
	return "OFF"
}

// saveSettings persists the settings and only logs failures.
func saveSettings(svc *game.Services) {
	if err := svc.Settings.Save(); err != nil {
		log.Printf("[Settings] Warning: %v", err)
	}
}
