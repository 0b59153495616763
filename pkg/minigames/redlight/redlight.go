// Package redlight 实现“红绿灯”小游戏的规则
//
// 绿灯时按住移动键前进，红灯时移动的玩家被淘汰。
// 越过终点线记录完成时间；时间耗尽或所有玩家都已淘汰/完成时游戏结束。
// 本包不依赖渲染和输入，场景每帧传入各玩家的按键状态。
package redlight

import (
	"sort"

	"github.com/decker502/squidarcade/pkg/config"
)

// DefaultGreenDuration 没有童谣音效且未配置绿灯时长时使用的绿灯时长（秒）
const DefaultGreenDuration = 4.0

// Phase 灯的阶段
type Phase int

const (
	PhaseGreen Phase = iota
	PhaseRed
)

func (p Phase) String() string {
	if p == PhaseRed {
		return "RED LIGHT"
	}
	return "GREEN LIGHT"
}

// Player 玩家状态
type Player struct {
	Name       string
	X, Y       float64
	Alive      bool
	Finished   bool
	FinishTime float64 // 完成用时（秒），未完成为 -1
}

// Events 单帧内发生的事件，用于触发音效
type Events struct {
	Eliminated   int  // 本帧被淘汰的玩家数
	Finished     int  // 本帧到达终点的玩家数
	GreenStarted bool // 本帧从红灯切换到绿灯
	Ended        bool // 本帧游戏结束
}

// Game 红绿灯对局
type Game struct {
	cfg   config.RedLightConfig
	green float64

	players    []Player
	timeLeft   float64
	phase      Phase
	phaseTimer float64
	over       bool
}

// New 创建一局红绿灯
//
// 参数：
//   - cfg: 红绿灯配置
//   - green: 绿灯时长（秒），<= 0 时使用 cfg.GreenDuration，再退回 DefaultGreenDuration
func New(cfg config.RedLightConfig, green float64) *Game {
	if green <= 0 {
		green = cfg.GreenDuration
	}
	if green <= 0 {
		green = DefaultGreenDuration
	}
	g := &Game{
		cfg:     cfg,
		green:   green,
		players: make([]Player, len(cfg.Players)),
	}
	g.Reset()
	return g
}

// Reset 将所有玩家放回起点并重置计时
func (g *Game) Reset() {
	for i, pc := range g.cfg.Players {
		g.players[i] = Player{
			Name:       pc.Name,
			X:          g.cfg.StartX,
			Y:          g.cfg.StartY + g.cfg.GapY*float64(i),
			Alive:      true,
			FinishTime: -1,
		}
	}
	g.timeLeft = g.cfg.Duration
	g.phase = PhaseGreen
	g.phaseTimer = 0
	g.over = false
}

// Update 推进一帧
//
// 参数：
//   - dt: 帧时长（秒）
//   - moving: 每个玩家本帧是否按住移动键，按玩家顺序；长度不足的部分视为未按
func (g *Game) Update(dt float64, moving []bool) Events {
	var ev Events
	if g.over {
		return ev
	}

	g.timeLeft -= dt
	g.phaseTimer += dt

	switch {
	case g.phase == PhaseGreen && g.phaseTimer >= g.green:
		g.phase = PhaseRed
		g.phaseTimer = 0
	case g.phase == PhaseRed && g.phaseTimer >= g.cfg.RedDuration:
		g.phase = PhaseGreen
		g.phaseTimer = 0
		ev.GreenStarted = true
	}

	for i := range g.players {
		p := &g.players[i]
		if !p.Alive || p.Finished {
			continue
		}

		if i < len(moving) && moving[i] {
			if g.phase == PhaseGreen {
				p.X += g.cfg.Speed * dt
			} else {
				p.Alive = false
				ev.Eliminated++
				continue
			}
		}

		if p.X >= g.cfg.FinishX {
			p.Finished = true
			p.FinishTime = g.cfg.Duration - g.timeLeft
			ev.Finished++
		}
	}

	if g.timeLeft <= 0 || g.allDone() {
		g.over = true
		ev.Ended = true
	}
	return ev
}

func (g *Game) allDone() bool {
	for _, p := range g.players {
		if p.Alive && !p.Finished {
			return false
		}
	}
	return true
}

// Phase 返回当前阶段
func (g *Game) Phase() Phase { return g.phase }

// TimeLeft 返回剩余时间（秒），不小于 0
func (g *Game) TimeLeft() float64 {
	if g.timeLeft < 0 {
		return 0
	}
	return g.timeLeft
}

// GreenDuration 返回绿灯时长（秒）
func (g *Game) GreenDuration() float64 { return g.green }

// Over 游戏是否结束
func (g *Game) Over() bool { return g.over }

// Players 返回玩家状态副本
func (g *Game) Players() []Player {
	out := make([]Player, len(g.players))
	copy(out, g.players)
	return out
}

// Standings 返回存活且完成的玩家，按完成时间升序
func (g *Game) Standings() []Player {
	var out []Player
	for _, p := range g.players {
		if p.Finished && p.Alive {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FinishTime < out[j].FinishTime
	})
	return out
}
