// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包按路径前缀（assets/ 或 data/）把请求路由到对应的文件系统。
//
// 未调用 Init() 时，Load 和 LoadExists 回退到磁盘读取，
// 方便工具和测试直接使用仓库里的文件。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotInitialized 在 Init() 之前访问嵌入资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

// Init 注册嵌入的文件系统
// 必须在 main() 开始时、任何资源加载之前调用
//
// 参数：
//   - assets: 根目录为仓库根、包含 assets/ 前缀的文件系统
//   - data: 根目录为仓库根、包含 data/ 前缀的文件系统
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// Reset 清除注册的文件系统（测试使用）
func Reset() {
	assetsFS = nil
	dataFS = nil
	initialized = false
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 把路径转为 embed.FS 使用的正斜杠形式并去掉 "./" 前缀
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// route 根据路径前缀选择文件系统
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", ErrNotInitialized
	}

	path = normalize(path)
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 打开嵌入文件
func Open(path string) (fs.File, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 读取嵌入文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在于嵌入文件系统中
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 在嵌入文件系统中匹配文件
func Glob(pattern string) ([]string, error) {
	fsys, name, err := route(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(fsys, name)
}

// ReadDir 读取嵌入目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(fsys, name)
}

// Stat 获取嵌入文件信息
func Stat(path string) (fs.FileInfo, error) {
	fsys, name, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.Stat(fsys, name)
}

// Load 读取资源文件：已初始化时从嵌入文件系统读取，否则从磁盘读取
//
// 参数：
//   - path: 以 assets/ 或 data/ 开头的相对路径；未初始化时也可以是任意磁盘路径
//
// 返回：
//   - []byte: 文件内容
//   - error: 读取失败时返回错误
func Load(path string) ([]byte, error) {
	if initialized {
		return ReadFile(path)
	}
	return os.ReadFile(path)
}

// LoadExists 检查 Load 能否找到资源
func LoadExists(path string) bool {
	if initialized {
		return Exists(path)
	}
	_, err := os.Stat(path)
	return err == nil
}
