//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 移动端不嵌入 data/ 目录，粒子场和预览窗口使用内置默认配置。
//
// 手动构建：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.graysable.site -o build/android/particlefield.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/ParticleField.xcframework -v ./mobile
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/graysable/site/pkg/app"
)

func init() {
	cfg := app.Config{
		Verbose: true, // Enable verbose logging for debugging
	}

	// 配置无效时 NewApp 使用默认值，不会失败
	fieldApp := app.NewApp(cfg)

	// 注册到 ebitenmobile
	mobile.SetGame(fieldApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
