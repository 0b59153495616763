package config

// 布局配置常量
// 所有坐标都是逻辑屏幕坐标，Ebitengine 负责缩放到实际窗口

const (
	// GameWindowWidth 逻辑屏幕宽度
	GameWindowWidth = 1280
	// GameWindowHeight 逻辑屏幕高度
	GameWindowHeight = 720
)

// HUD 布局
const (
	// ProgressBarMargin 进度条距离屏幕左右边缘的距离
	ProgressBarMargin = 200.0
	// ProgressBarHeight 进度条高度
	ProgressBarHeight = 22.0
	// ProgressBarBottom 进度条顶部距离屏幕底部的距离
	ProgressBarBottom = 70.0
)

// 椪糖盒子布局
const (
	// BoxSize 神秘盒子边长
	BoxSize = 150.0
	// BoxGap 盒子之间的水平间距
	BoxGap = 50.0
	// BoxY 盒子顶部 Y 坐标
	BoxY = 280.0
)

// BoxRowStartX 计算 n 个盒子水平居中时第一个盒子的 X 坐标
//
// 参数：
//   - n: 盒子数量
//
// 返回：
//   - 第一个盒子左边缘的 X 坐标
func BoxRowStartX(n int) float64 {
	if n <= 0 {
		return GameWindowWidth / 2
	}
	total := float64(n)*BoxSize + float64(n-1)*BoxGap
	return (GameWindowWidth - total) / 2
}

// 玻璃桥布局（按屏幕比例计算）
const (
	BridgePanelWidthRatio  = 0.15
	BridgePanelHeightRatio = 0.07
	BridgeGapRatio         = 0.025
	BridgeTopRatio         = 0.30
)
