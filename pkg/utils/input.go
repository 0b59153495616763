// Package utils 提供通用工具函数
package utils

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// GetPointerState 获取指针的完整状态
// 返回：是否按住、X坐标、Y坐标
//
// 描边小游戏每帧调用一次：按住鼠标左键或任意触摸点都视为按住。
func GetPointerState() (pressed bool, x, y int) {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	pressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return pressed, x, y
}

// ParseKey 将键名（如 "ArrowRight"、"D"、"Space"）转换为 ebiten.Key
// 键名不区分大小写，接受 ebiten 的键名
func ParseKey(name string) (ebiten.Key, error) {
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", name, err)
	}
	return k, nil
}

// MustParseKey 与 ParseKey 相同，但解析失败时返回 fallback
func MustParseKey(name string, fallback ebiten.Key) ebiten.Key {
	k, err := ParseKey(name)
	if err != nil {
		return fallback
	}
	return k
}

// AnyKeyJustPressed 检查任意一个键是否在本帧刚刚按下
func AnyKeyJustPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
