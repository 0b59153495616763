package game

import (
	"image/color"
	"sort"
	"time"
)

// Finisher 红绿灯中到达终点的玩家
type Finisher struct {
	Name  string
	Time  time.Duration
	Color color.NRGBA
}

// TracingResult 最近一次描边游戏（椪糖或边界描边）的结果
type TracingResult struct {
	Game     StateID
	Shape    string
	Success  bool
	Progress float64
	Cracks   int
}

// ResultsBoard 保存胜利者界面展示的数据
// 仅在内存中保存，程序退出后不保留
type ResultsBoard struct {
	finishers []Finisher
	tracing   *TracingResult
}

// NewResultsBoard 创建空的结果面板
func NewResultsBoard() *ResultsBoard {
	return &ResultsBoard{}
}

// SetFinishers 替换红绿灯的完成名单，并按完成时间排序
//
// 参数：
//   - finishers: 到达终点且存活的玩家
func (rb *ResultsBoard) SetFinishers(finishers []Finisher) {
	rb.finishers = append(rb.finishers[:0], finishers...)
	sort.SliceStable(rb.finishers, func(i, j int) bool {
		return rb.finishers[i].Time < rb.finishers[j].Time
	})
}

// Finishers 返回完成名单的副本
func (rb *ResultsBoard) Finishers() []Finisher {
	out := make([]Finisher, len(rb.finishers))
	copy(out, rb.finishers)
	return out
}

// RecordTracing 记录最近一次描边游戏结果
func (rb *ResultsBoard) RecordTracing(r TracingResult) {
	rb.tracing = &r
}

// LastTracing 返回最近一次描边结果
//
// 返回：
//   - TracingResult: 结果
//   - bool: 是否有记录
func (rb *ResultsBoard) LastTracing() (TracingResult, bool) {
	if rb.tracing == nil {
		return TracingResult{}, false
	}
	return *rb.tracing, true
}

// Clear 清空所有结果
func (rb *ResultsBoard) Clear() {
	rb.finishers = nil
	rb.tracing = nil
}
