package utils

import "math"

// 缓动函数用于控制动画的速度曲线
// 进度值 t ∈ [0, 1]，超出范围时先截断

// EaseOutCubic 三次方缓出
// 特点：开始快，结束慢（用于揭晓饼干时的放大动画）
// 公式：f(t) = 1 - (1-t)³
func EaseOutCubic(t float64) float64 {
	t = clampUnit(t)
	return 1 - math.Pow(1-t, 3)
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutLerp 按三次方缓出曲线在 a 和 b 之间插值
//
// 参数：
//   - a: 起始值
//   - b: 目标值
//   - t: 进度，超出 [0, 1] 时截断
//
// 返回：
//   - 插值结果
func EaseOutLerp(a, b, t float64) float64 {
	return Lerp(a, b, EaseOutCubic(t))
}

func clampUnit(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
