package utils

import (
	"math"
	"testing"
)

// TestEaseOutCubic 测试三次方缓出函数
func TestEaseOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"终点", 1.0, 1.0},
		{"中点", 0.5, 0.875},
		{"小于0截断", -0.5, 0.0},
		{"大于1截断", 2.0, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

// TestEaseOutCubicMonotonic 验证缓出曲线单调递增且前半段比线性快
func TestEaseOutCubicMonotonic(t *testing.T) {
	prev := -1.0
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		v := EaseOutCubic(x)
		if v < prev {
			t.Fatalf("EaseOutCubic 在 %.2f 处递减: %.4f < %.4f", x, v, prev)
		}
		if x > 0 && x < 1 && v <= x {
			t.Errorf("EaseOutCubic(%.2f) = %.4f, 应大于线性值", x, v)
		}
		prev = v
	}
}

// TestLerp 测试线性插值
func TestLerp(t *testing.T) {
	tests := []struct {
		name    string
		a, b, t float64
		want    float64
	}{
		{"起点", 10, 20, 0, 10},
		{"终点", 10, 20, 1, 20},
		{"中点", 10, 20, 0.5, 15},
		{"反向", 1, 0.3, 0.5, 0.65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Lerp(tt.a, tt.b, tt.t); math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Lerp(%v, %v, %v) = %v, 期望 %v", tt.a, tt.b, tt.t, got, tt.want)
			}
		})
	}
}

// TestEaseOutLerp 测试揭晓动画的缩放曲线
func TestEaseOutLerp(t *testing.T) {
	if got := EaseOutLerp(0.3, 1, 0); math.Abs(got-0.3) > 0.001 {
		t.Errorf("EaseOutLerp 起点 = %v, 期望 0.3", got)
	}
	if got := EaseOutLerp(0.3, 1, 1); math.Abs(got-1) > 0.001 {
		t.Errorf("EaseOutLerp 终点 = %v, 期望 1", got)
	}
	if got := EaseOutLerp(0.3, 1, 0.5); math.Abs(got-(0.3+0.7*0.875)) > 0.001 {
		t.Errorf("EaseOutLerp 中点 = %v", got)
	}
}
