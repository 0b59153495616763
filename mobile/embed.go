//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译，构建前需要把仓库根目录的
// assets/ 和 data/ 复制到 mobile/ 目录下。
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS

//go:embed data/arcade.yaml data/resources.yaml
var dataFS embed.FS
