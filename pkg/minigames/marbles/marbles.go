// Package marbles 实现“弹珠”猜单双小游戏的规则
//
// 玩家回合：玩家猜 AI 手中弹珠的单双并下注，AI 随机出弹珠；
// AI 回合：玩家出 1..maxBet 颗弹珠，AI 根据玩家历史出数的单双多数猜测。
// 猜对的一方从对方处赢得赌注，任何一方弹珠归零时本局结束。
package marbles

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/decker502/squidarcade/pkg/config"
)

var (
	// ErrWrongPhase 当前阶段不允许该操作
	ErrWrongPhase = errors.New("action not allowed in current phase")
	// ErrInvalidBet 下注或出数超出允许范围
	ErrInvalidBet = errors.New("invalid bet")
	// ErrDoubleUsed 本局已使用过加倍
	ErrDoubleUsed = errors.New("double bet already used")
)

// Phase 对局阶段
type Phase int

const (
	// PhaseGuess 玩家回合：选择单/双或使用加倍
	PhaseGuess Phase = iota
	// PhaseBet 玩家回合：选择赌注
	PhaseBet
	// PhaseAIPut 等待 AI 出弹珠
	PhaseAIPut
	// PhasePut AI 回合：玩家选择出多少弹珠
	PhasePut
	// PhaseResult 展示 AI 猜测结果
	PhaseResult
	// PhaseOver 本局结束
	PhaseOver
)

// Turn 一次结算的记录，用于场景显示旁白
type Turn struct {
	// PlayerGuessing 为 true 表示玩家猜 AI，否则 AI 猜玩家
	PlayerGuessing bool
	Put            int  // 被猜一方出的弹珠数
	GuessOdd       bool // 猜测是否为单数
	Correct        bool // 猜测是否正确
	Transfer       int  // 实际转移的弹珠数
}

// Game 弹珠对局
type Game struct {
	cfg config.MarblesConfig
	rng *rand.Rand

	player int
	ai     int
	phase  Phase
	timer  float64

	guessOdd     bool
	stake        int
	doubleUsed   bool
	doubleActive bool
	history      []int // 玩家每次出的弹珠数

	last    Turn
	hasLast bool
}

// New 创建对局
func New(cfg config.MarblesConfig, rng *rand.Rand) *Game {
	g := &Game{cfg: cfg, rng: rng}
	g.Reset()
	return g
}

// Reset 重新开始一局
func (g *Game) Reset() {
	g.player = g.cfg.Start
	g.ai = g.cfg.Start
	g.phase = PhaseGuess
	g.timer = 0
	g.stake = 0
	g.doubleUsed = false
	g.doubleActive = false
	g.history = g.history[:0]
	g.last = Turn{}
	g.hasLast = false
}

// Guess 玩家猜 AI 弹珠的单双
func (g *Game) Guess(odd bool) error {
	if g.phase != PhaseGuess {
		return ErrWrongPhase
	}
	g.guessOdd = odd
	g.phase = PhaseBet
	return nil
}

// UseDouble 启用加倍，下一次下注的赌注翻倍，每局只能使用一次
func (g *Game) UseDouble() error {
	if g.phase != PhaseGuess {
		return ErrWrongPhase
	}
	if g.doubleUsed {
		return ErrDoubleUsed
	}
	g.doubleUsed = true
	g.doubleActive = true
	return nil
}

// Options 返回当前可选的下注/出数：1..min(maxBet, 玩家弹珠数)
func (g *Game) Options() []int {
	n := min(g.cfg.MaxBet, g.player)
	out := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, i)
	}
	return out
}

func (g *Game) validAmount(n int) bool {
	return n >= 1 && n <= min(g.cfg.MaxBet, g.player)
}

// Bet 玩家下注，之后等待 AI 出弹珠
func (g *Game) Bet(n int) error {
	if g.phase != PhaseBet {
		return ErrWrongPhase
	}
	if !g.validAmount(n) {
		return fmt.Errorf("%w: %d", ErrInvalidBet, n)
	}
	g.stake = n
	if g.doubleActive {
		g.stake *= 2
		g.doubleActive = false
	}
	g.phase = PhaseAIPut
	g.timer = g.cfg.AIDelay
	return nil
}

// Put AI 回合中玩家出弹珠，AI 立即猜测并结算
func (g *Game) Put(n int) error {
	if g.phase != PhasePut {
		return ErrWrongPhase
	}
	if !g.validAmount(n) {
		return fmt.Errorf("%w: %d", ErrInvalidBet, n)
	}

	guessOdd := g.aiGuessOdd()
	correct := guessOdd == isOdd(n)
	var moved int
	if correct {
		moved = g.transfer(&g.player, &g.ai, n)
	} else {
		moved = g.transfer(&g.ai, &g.player, n)
	}
	g.history = append(g.history, n)
	g.record(Turn{Put: n, GuessOdd: guessOdd, Correct: correct, Transfer: moved})

	if g.roundOver() {
		g.phase = PhaseOver
		return nil
	}
	g.phase = PhaseResult
	g.timer = g.cfg.ResultDelay
	return nil
}

// Update 推进计时
//
// 返回：
//   - bool: 本帧是否完成了一次结算（AI 出弹珠或结果展示结束）
func (g *Game) Update(dt float64) bool {
	switch g.phase {
	case PhaseAIPut:
		g.timer -= dt
		if g.timer > 0 {
			return false
		}
		g.resolvePlayerGuess()
		return true
	case PhaseResult:
		g.timer -= dt
		if g.timer > 0 {
			return false
		}
		g.phase = PhaseGuess
		return true
	}
	return false
}

func (g *Game) resolvePlayerGuess() {
	put := g.aiPut()
	correct := g.guessOdd == isOdd(put)
	var moved int
	if correct {
		moved = g.transfer(&g.ai, &g.player, g.stake)
	} else {
		moved = g.transfer(&g.player, &g.ai, g.stake)
	}
	g.record(Turn{PlayerGuessing: true, Put: put, GuessOdd: g.guessOdd, Correct: correct, Transfer: moved})
	g.stake = 0

	if g.roundOver() {
		g.phase = PhaseOver
		return
	}
	g.phase = PhasePut
}

// transfer 从 from 转移最多 n 颗弹珠到 to，返回实际数量
func (g *Game) transfer(from, to *int, n int) int {
	n = min(n, *from)
	*from -= n
	*to += n
	return n
}

func (g *Game) record(t Turn) {
	g.last = t
	g.hasLast = true
}

func (g *Game) roundOver() bool {
	return g.player <= 0 || g.ai <= 0
}

// aiPut AI 出 min(AI 弹珠数, 1..maxBet 随机)
func (g *Game) aiPut() int {
	return min(g.ai, g.rng.Intn(g.cfg.MaxBet)+1)
}

// aiGuessOdd 玩家历史出数中单数不少于双数时猜单，没有历史时随机
func (g *Game) aiGuessOdd() bool {
	if len(g.history) == 0 {
		return g.rng.Intn(2) == 0
	}
	odd := 0
	for _, n := range g.history {
		if isOdd(n) {
			odd++
		}
	}
	return odd >= len(g.history)-odd
}

func isOdd(n int) bool { return n%2 != 0 }

// Phase 返回当前阶段
func (g *Game) Phase() Phase { return g.phase }

// PlayerMarbles 返回玩家弹珠数
func (g *Game) PlayerMarbles() int { return g.player }

// AIMarbles 返回 AI 弹珠数
func (g *Game) AIMarbles() int { return g.ai }

// Start 返回开局弹珠数
func (g *Game) Start() int { return g.cfg.Start }

// Stake 返回当前赌注（已含加倍）
func (g *Game) Stake() int { return g.stake }

// DoubleUsed 本局是否已使用加倍
func (g *Game) DoubleUsed() bool { return g.doubleUsed }

// DoubleActive 加倍是否等待应用到下一次下注
func (g *Game) DoubleActive() bool { return g.doubleActive }

// GuessedOdd 返回玩家本回合的猜测
func (g *Game) GuessedOdd() bool { return g.guessOdd }

// LastTurn 返回最近一次结算
func (g *Game) LastTurn() (Turn, bool) { return g.last, g.hasLast }

// PlayerWon 本局结束且 AI 弹珠归零
func (g *Game) PlayerWon() bool { return g.phase == PhaseOver && g.ai <= 0 }
