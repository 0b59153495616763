package utils

import (
	"bytes"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// 字体缓存
// Go 字体随 golang.org/x/image 一起分发，不需要额外的字体文件
var (
	fontOnce    sync.Once
	regularSrc  *text.GoTextFaceSource
	boldSrc     *text.GoTextFaceSource
	fallback    text.Face
	faceCacheMu sync.Mutex
	faceCache   = make(map[faceKey]text.Face)
)

type faceKey struct {
	size float64
	bold bool
}

func loadFonts() {
	var err error
	regularSrc, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Printf("[Font] Warning: failed to load Go Regular: %v", err)
	}
	boldSrc, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Printf("[Font] Warning: failed to load Go Bold: %v", err)
	}
	fallback = text.NewGoXFace(basicfont.Face7x13)
}

// Face 返回指定字号的常规字体
// 字体源加载失败时退回 basicfont 的 7x13 点阵字体
func Face(size float64) text.Face {
	return face(size, false)
}

// BoldFace 返回指定字号的粗体
func BoldFace(size float64) text.Face {
	return face(size, true)
}

func face(size float64, bold bool) text.Face {
	fontOnce.Do(loadFonts)

	src := regularSrc
	if bold && boldSrc != nil {
		src = boldSrc
	}
	if src == nil {
		return fallback
	}

	key := faceKey{size: size, bold: bold}
	faceCacheMu.Lock()
	defer faceCacheMu.Unlock()
	if f, ok := faceCache[key]; ok {
		return f
	}
	f := &text.GoTextFace{Source: src, Size: size}
	faceCache[key] = f
	return f
}
