//go:build !mobile

// stub.go - 桌面构建时的占位文件
//
// ebitenmobile 绑定只在 -tags mobile 下编译（见 mobile.go），
// 桌面端的粒子场预览由根目录的 main.go 启动。
// 保留此文件是为了让 `go build ./...` 和 `go vet ./...` 在桌面端也能覆盖本包。
package mobile

// Dummy 是 gomobile 绑定导出的占位符号，桌面端不做任何事
func Dummy() {}
