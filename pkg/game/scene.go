package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the arcade (menu, a minigame, winners).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Enterer 是一个可选接口，场景成为活动场景后调用 OnEnter
type Enterer interface {
	OnEnter()
}

// Exiter 是一个可选接口，场景离开时调用 OnExit
//
// 以下任何一种离开方式都会恰好调用一次：
//   - 切换到其他状态
//   - 切换到退出状态
//   - 游戏窗口关闭（SceneManager.Close）
type Exiter interface {
	OnExit()
}
