// Package app 提供街机应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/squidarcade/pkg/config"
	"github.com/decker502/squidarcade/pkg/game"
	"github.com/decker502/squidarcade/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	// DefaultConfigPath 街机配置文件路径
	DefaultConfigPath = "data/arcade.yaml"
	// ResourceConfigPath 资源配置文件路径
	ResourceConfigPath = "data/resources.yaml"

	initGroup = "init"

	sampleRate = 48000
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Start 启动时进入的状态名（如 "dalgona"），为空则进入菜单
	Start string
	// ConfigPath 街机配置文件路径，为空使用 DefaultConfigPath
	ConfigPath string
	// Seed 随机数种子，0 表示使用当前时间
	Seed int64
}

// App 是街机应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	services  *game.Services
	deltaTime float64
	verbose   bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化街机应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源
// （工具和测试可以不初始化，此时从磁盘读取）。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	arcadeConfig, err := config.LoadArcadeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("街机配置加载失败: %w", err)
	}
	log.Printf("[Config] Loaded %s", configPath)

	start := game.StateMenu
	if cfg.Start != "" {
		if start, err = game.ParseStateID(cfg.Start); err != nil {
			return nil, fmt.Errorf("无效的启动状态: %w", err)
		}
	}

	// 初始化音频上下文
	audioContext := audio.NewContext(sampleRate)

	// 创建资源管理器并预加载音效
	resourceManager := game.NewResourceManager(audioContext)
	if err := resourceManager.LoadResourceConfig(ResourceConfigPath); err != nil {
		return nil, fmt.Errorf("资源配置加载失败: %w", err)
	}

	// 设置（gdata 不可用时只保存在内存）
	settingsManager := game.NewSettingsManager(game.OpenSettingsStore(game.AppName))
	if err := settingsManager.Load(); err != nil {
		log.Printf("[App] Warning: %v (using defaults)", err)
	}

	// 预加载 init 组，缺失的音效只记录警告，播放时静默跳过
	if err := resourceManager.LoadResourceGroup(initGroup); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	audioManager := game.NewAudioManager(resourceManager, settingsManager)
	log.Printf("[App] AudioManager initialized")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := &game.Services{
		Config:    arcadeConfig,
		Resources: resourceManager,
		Audio:     audioManager,
		Settings:  settingsManager,
		Scenes:    game.NewSceneManager(nil),
		Results:   game.NewResultsBoard(),
		Rand:      rand.New(rand.NewSource(seed)),
	}
	registerScenes(svc)
	svc.Scenes.OnEnter(func(id game.StateID) {
		log.Printf("[App] Entered %s", id)
	})

	if err := svc.Scenes.Start(start); err != nil {
		return nil, fmt.Errorf("无法进入 %s: %w", start, err)
	}

	ebiten.SetTPS(arcadeConfig.Window.TPS)
	if settingsManager.GetSettings().Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		services:  svc,
		deltaTime: 1.0 / float64(arcadeConfig.Window.TPS),
		verbose:   cfg.Verbose,
	}, nil
}

// registerScenes 为每个状态注册场景工厂
func registerScenes(svc *game.Services) {
	sm := svc.Scenes
	sm.Register(game.StateMenu, func() (game.Scene, error) {
		return scenes.NewMenuScene(svc), nil
	})
	sm.Register(game.StateControls, func() (game.Scene, error) {
		return scenes.NewControlsScene(svc), nil
	})
	sm.Register(game.StateRedLight, func() (game.Scene, error) {
		return scenes.NewRedLightScene(svc), nil
	})
	sm.Register(game.StateTugOfWar, func() (game.Scene, error) {
		return scenes.NewTugOfWarScene(svc), nil
	})
	sm.Register(game.StateMarbles, func() (game.Scene, error) {
		return scenes.NewMarblesScene(svc), nil
	})
	sm.Register(game.StateWinners, func() (game.Scene, error) {
		return scenes.NewWinnersScene(svc), nil
	})
	sm.Register(game.StateDalgona, func() (game.Scene, error) {
		s, err := scenes.NewDalgonaScene(svc)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	sm.Register(game.StateBoundary, func() (game.Scene, error) {
		s, err := scenes.NewBoundaryScene(svc)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	sm.Register(game.StateBridge, func() (game.Scene, error) {
		s, err := scenes.NewBridgeScene(svc)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
}

// Update 更新游戏逻辑
// 每个 tick 调用一次
func (a *App) Update() error {
	if ebiten.IsWindowBeingClosed() {
		a.shutdown()
		return ebiten.Termination
	}

	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	a.services.Scenes.Update(a.deltaTime)
	if a.services.Scenes.Quit() {
		a.shutdown()
		return ebiten.Termination
	}
	return nil
}

func (a *App) toggleFullscreen() {
	fullscreen := !ebiten.IsFullscreen()
	ebiten.SetFullscreen(fullscreen)
	if !fullscreen {
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
	}
	a.services.Settings.SetFullscreen(fullscreen)
	if err := a.services.Settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// shutdown 离开当前场景并保存设置，可重复调用
func (a *App) shutdown() {
	a.services.Scenes.Close()
	a.services.Audio.StopAllSounds()
	if err := a.services.Settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.services.Scenes.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Title 返回窗口标题
func (a *App) Title() string {
	return a.services.Config.Window.Title
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}

// Run 设置窗口并运行游戏循环
// Update 返回 ebiten.Termination 时 RunGame 返回 nil
func (a *App) Run() error {
	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(a.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(a)
}
