// Package utils 提供游戏开发中常用的工具函数
//
// coordinates.go 提供屏幕坐标与图像坐标之间的转换，用于描边小游戏的指针映射和布局。
//
// # 坐标系统概述
//
//   - **屏幕坐标**：相对于游戏窗口左上角，单位为逻辑像素
//   - **图像坐标**：相对于参考图片左上角，单位为图片像素
//
// 图片以 origin（左上角的屏幕坐标）和 scale（等比缩放）绘制到屏幕上。
//
// # 核心转换公式
//
//	imageX = floor((screenX - originX) / scale)
//	imageY = floor((screenY - originY) / scale)
//
// 使用 floor 而不是截断：图片左侧/上方的指针会得到负坐标，
// 不会被映射到第 0 列/行。
package utils

import "math"

// ScreenToImage 将屏幕坐标转换为图像像素坐标
//
// # 参数
//
//   - screenX, screenY: 指针的屏幕坐标
//   - originX, originY: 图片左上角的屏幕坐标
//   - scale: 图片绘制缩放比例（<= 0 时按 1 处理）
//
// # 返回值
//
//   - x, y: 图像像素坐标，可能越界，由调用者判断
func ScreenToImage(screenX, screenY, originX, originY, scale float64) (x, y int) {
	if scale <= 0 {
		scale = 1
	}
	x = int(math.Floor((screenX - originX) / scale))
	y = int(math.Floor((screenY - originY) / scale))
	return x, y
}

// FitScale 计算把 w×h 的图片等比放入 maxW×maxH 区域的缩放比例
// 图片尺寸无效时返回 1
func FitScale(w, h int, maxW, maxH float64) float64 {
	if w <= 0 || h <= 0 {
		return 1
	}
	s := math.Min(maxW/float64(w), maxH/float64(h))
	if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return 1
	}
	return s
}

// CenteredOrigin 返回缩放后的图片在屏幕上居中时左上角的坐标
func CenteredOrigin(w, h int, scale, screenW, screenH float64) (x, y float64) {
	return (screenW - float64(w)*scale) / 2, (screenH - float64(h)*scale) / 2
}

// PointInRect 判断点是否在矩形内（包含左/上边，不包含右/下边）
func PointInRect(px, py, x, y, w, h float64) bool {
	return px >= x && px < x+w && py >= y && py < y+h
}
