// Package embedded 提供嵌入资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// embed.FS 变量必须声明在项目根目录（embed.go）。
// 本包提供包装函数，让其他包可以访问嵌入的配置文件。
//
// 以 "data/" 开头的路径从嵌入文件系统读取（使用前必须调用 Init()），
// 其他路径视为磁盘上的覆盖文件（如 --config 指定的 YAML），直接从磁盘读取。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问嵌入资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化嵌入文件系统
// 必须在 main() 开始时、任何资源加载之前调用
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径分隔符并移除 "./" 前缀
func normalize(path string) string {
	path = filepath.ToSlash(path)
	return strings.TrimPrefix(path, "./")
}

// isEmbeddedPath 判断路径是否指向嵌入资源
func isEmbeddedPath(path string) bool {
	return strings.HasPrefix(path, "data/")
}

// ReadFile 读取文件内容
// "data/" 前缀从嵌入文件系统读取，其余路径从磁盘读取
func ReadFile(path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("empty resource path")
	}

	if !filepath.IsAbs(path) {
		if p := normalize(path); isEmbeddedPath(p) {
			if !initialized {
				return nil, ErrNotInitialized
			}
			return fs.ReadFile(dataFS, p)
		}
	}

	return os.ReadFile(path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	if path == "" {
		return false
	}
	if !filepath.IsAbs(path) {
		if p := normalize(path); isEmbeddedPath(p) {
			if !initialized {
				return false
			}
			_, err := fs.Stat(dataFS, p)
			return err == nil
		}
	}
	_, err := os.Stat(path)
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件
// 路径模式必须以 "data/" 开头
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}

	pattern = normalize(pattern)
	if !isEmbeddedPath(pattern) {
		return nil, fmt.Errorf("unknown resource path prefix: %s (must start with 'data/')", pattern)
	}
	return fs.Glob(dataFS, pattern)
}
