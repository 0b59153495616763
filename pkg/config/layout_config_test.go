package config

import (
	"testing"
)

// TestBoxRowStartX 测试神秘盒子行的水平居中
func TestBoxRowStartX(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want float64
	}{
		{name: "4个盒子", n: 4, want: (GameWindowWidth - (4*BoxSize + 3*BoxGap)) / 2},
		{name: "1个盒子", n: 1, want: (GameWindowWidth - BoxSize) / 2},
		{name: "0个盒子", n: 0, want: GameWindowWidth / 2},
		{name: "负数", n: -3, want: GameWindowWidth / 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxRowStartX(tt.n); got != tt.want {
				t.Errorf("BoxRowStartX(%d) = %.2f, want %.2f", tt.n, got, tt.want)
			}
		})
	}
}

// TestBoxRowSymmetric 验证盒子行左右留白相等
func TestBoxRowSymmetric(t *testing.T) {
	for n := 1; n <= 6; n++ {
		left := BoxRowStartX(n)
		right := GameWindowWidth - (left + float64(n)*BoxSize + float64(n-1)*BoxGap)
		if diff := left - right; diff > 0.01 || diff < -0.01 {
			t.Errorf("n=%d: left margin %.2f != right margin %.2f", n, left, right)
		}
	}
}

// TestBridgeLayoutFits 验证玻璃桥布局比例不会超出屏幕
func TestBridgeLayoutFits(t *testing.T) {
	width := 2*BridgePanelWidthRatio + BridgeGapRatio
	if width >= 1 {
		t.Errorf("bridge width ratio %.3f does not fit the screen", width)
	}
	if BridgeTopRatio+BridgePanelHeightRatio >= 1 {
		t.Errorf("bridge top %.2f leaves no room for panels", BridgeTopRatio)
	}
}
