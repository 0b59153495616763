package game

import (
	"math/rand"

	"github.com/decker502/squidarcade/pkg/config"
)

// Services 是场景共享的依赖集合
// 由 app 包创建后传入每个场景工厂，替代全局单例
type Services struct {
	Config    *config.ArcadeConfig
	Resources *ResourceManager
	Audio     *AudioManager
	Settings  *SettingsManager
	Scenes    *SceneManager
	Results   *ResultsBoard
	Rand      *rand.Rand
}

// Go 切换到指定状态，失败时记录日志并返回 false
//
// 场景在调用 Go 成功后应立即返回，不再访问自身状态
func (s *Services) Go(to StateID) bool {
	if err := s.Scenes.Transition(to); err != nil {
		logTransitionError(to, err)
		return false
	}
	return true
}
