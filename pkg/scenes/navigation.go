package scenes

import (
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// goOnKey switches to target when Esc or one of keys was just pressed.
// It reports whether the transition happened, in which case the caller must
// return without touching its state.
func goOnKey(svc *game.Services, target game.StateID, keys ...ebiten.Key) bool {
	if !utils.AnyKeyJustPressed(keys...) {
		return false
	}
	return svc.Go(target)
}

// backToMenu returns to the menu on Esc or one of the extra keys.
func backToMenu(svc *game.Services, extra ...ebiten.Key) bool {
	return goOnKey(svc, game.StateMenu, append([]ebiten.Key{ebiten.KeyEscape}, extra...)...)
}

var (
	digitKeys  = []ebiten.Key{ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9}
	numpadKeys = []ebiten.Key{ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3, ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6, ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9}
)

// digitJustPressed reports whether digit n (1-9) was just pressed on the
// main row or the numpad.
func digitJustPressed(n int) bool {
	if n < 1 || n > len(digitKeys) {
		return false
	}
	return utils.AnyKeyJustPressed(digitKeys[n-1], numpadKeys[n-1])
}
