package utils

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// WrapText 将文本按指定宽度自动换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 换行规则:
//   - 优先在空格处断行
//   - 如果单词太长超过最大宽度，强制断行
func WrapText(textStr string, font text.Face, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	if MeasureText(textStr, font) <= maxWidth {
		return []string{textStr}
	}

	var lines []string
	currentLine := ""

	for len(textStr) > 0 {
		r, size := utf8.DecodeRuneInString(textStr)
		char := string(r)
		testLine := currentLine + char

		if MeasureText(testLine, font) > maxWidth {
			if currentLine == "" {
				// 单个字符就超宽，强制添加
				lines = append(lines, char)
				textStr = textStr[size:]
				continue
			}

			// 回退到最后一个空格
			if idx := strings.LastIndex(currentLine, " "); idx > 0 {
				lines = append(lines, currentLine[:idx])
				currentLine = currentLine[idx+1:]
				continue
			}

			lines = append(lines, currentLine)
			currentLine = ""
			continue
		}

		currentLine = testLine
		textStr = textStr[size:]
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}
	return lines
}

// MeasureText 返回单行文本的宽度
func MeasureText(textStr string, font text.Face) float64 {
	if textStr == "" || font == nil {
		return 0
	}
	width, _ := text.Measure(textStr, font, 0)
	return width
}

// DrawText 在 (x, y) 绘制文本，(x, y) 为文本左上角
// align 为 text.AlignCenter 时 x 为文本中心
func DrawText(dst *ebiten.Image, s string, font text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, font, op)
}

// DrawOutlinedText 绘制带描边的文本
// 描边通过在周围 ±2 像素的偏移处重复绘制实现
func DrawOutlinedText(dst *ebiten.Image, s string, font text.Face, x, y float64, clr, outline color.Color, align text.Align) {
	for ox := -2; ox <= 2; ox += 2 {
		for oy := -2; oy <= 2; oy += 2 {
			if ox == 0 && oy == 0 {
				continue
			}
			DrawText(dst, s, font, x+float64(ox), y+float64(oy), outline, align)
		}
	}
	DrawText(dst, s, font, x, y, clr, align)
}
