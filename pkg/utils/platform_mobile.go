//go:build mobile

package utils

// IsMobile 移动端构建总是返回 true
// 此时 ReadInputSnapshot 忽略鼠标光标，粒子场只响应触摸
func IsMobile() bool {
	return true
}
