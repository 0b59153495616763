// Package scenes contains the screens of the arcade: the menu, the help
// screen, one scene per minigame and the winners board.
//
// Every scene is created by a factory registered with game.SceneManager and
// receives the shared *game.Services. A scene that switches state returns
// immediately after Services.Go succeeds.
package scenes

import (
	"github.com/decker502/squidarcade/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene        = (*MenuScene)(nil)
	_ Scene        = (*ControlsScene)(nil)
	_ Scene        = (*RedLightScene)(nil)
	_ Scene        = (*DalgonaScene)(nil)
	_ Scene        = (*BoundaryScene)(nil)
	_ Scene        = (*TugOfWarScene)(nil)
	_ Scene        = (*BridgeScene)(nil)
	_ Scene        = (*MarblesScene)(nil)
	_ Scene        = (*WinnersScene)(nil)
	_ game.Enterer = (*RedLightScene)(nil)
	_ game.Exiter  = (*RedLightScene)(nil)
	_ game.Exiter  = (*DalgonaScene)(nil)
	_ game.Exiter  = (*BoundaryScene)(nil)
)
